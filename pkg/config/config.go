// Package config loads the suite settings: storefront url, credentials, checkout form values,
// browser options, wait timing, step budgets and notification channels.
//
// Values come from the embedded defaults, then the global config dir, then the local
// .swagcheck dir (or an explicit file), then SWAG_* environment variables, .env included.
// Colors for the progress log follow the same chain from colors.ini files.
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/journey"
	"github.com/AndresValenciaC/swagcheck/pkg/notify"
)

//go:embed defaults
var defaultsFS embed.FS

// file names inside the global and local config dirs.
const (
	ConfigFileName = "config.yml"
	ColorsFileName = "colors.ini"
	LocalDir       = ".swagcheck"

	embeddedConfig = "defaults/" + ConfigFileName
	embeddedColors = "defaults/" + ColorsFileName
	envPrefix      = "SWAG_"
)

var engines = []string{"chromium", "firefox", "webkit"}

// Config is the resolved configuration of one suite run.
type Config struct {
	Values
	Colors ColorConfig

	configDir  string
	localPath  string
	envApplied []string // env variables that overrode file values
}

// Options control where Load looks.
type Options struct {
	ConfigDir string // global dir, DefaultConfigDir when empty
	LocalPath string // config file, .swagcheck/config.yml when empty
	EnvFile   string // dotenv file, .env when empty; a missing file is fine
	Install   bool   // write commented defaults into ConfigDir when missing
}

// DefaultConfigDir returns ~/.config/swagcheck, or a relative .config/swagcheck if home is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "swagcheck")
	}
	return filepath.Join(home, ".config", "swagcheck")
}

// Load resolves the configuration and validates it.
func Load(opts Options) (*Config, error) {
	if opts.ConfigDir == "" {
		opts.ConfigDir = DefaultConfigDir()
	}
	if opts.LocalPath == "" {
		opts.LocalPath = filepath.Join(LocalDir, ConfigFileName)
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	if opts.Install {
		if err := newDefaultsInstaller(defaultsFS).Install(opts.ConfigDir); err != nil {
			return nil, fmt.Errorf("install defaults: %w", err)
		}
	}

	values, err := newValuesLoader(defaultsFS).Load(opts.LocalPath, filepath.Join(opts.ConfigDir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("load values: %w", err)
	}

	localColors := filepath.Join(filepath.Dir(opts.LocalPath), ColorsFileName)
	colors, err := newColorLoader(defaultsFS).Load(localColors, filepath.Join(opts.ConfigDir, ColorsFileName))
	if err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}

	// dotenv never overrides variables already set in the environment
	if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", opts.EnvFile, err)
	}

	cfg := &Config{Values: values, Colors: colors, configDir: opts.ConfigDir, localPath: opts.LocalPath}
	if cfg.envApplied, err = cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigDir returns the global config directory used by Load.
func (c *Config) ConfigDir() string { return c.configDir }

// LocalPath returns the local config file Load read, it may not exist.
func (c *Config) LocalPath() string { return c.localPath }

// EnvOverrides lists the SWAG_* variables that replaced file values.
func (c *Config) EnvOverrides() []string { return c.envApplied }

// applyEnv overrides values from SWAG_* variables, errors name the variable.
func (c *Config) applyEnv(lookup func(string) (string, bool)) ([]string, error) {
	var applied []string
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		if ok {
			applied = append(applied, envPrefix+name)
		}
		return strings.TrimSpace(v), ok
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"LOGIN_URL", &c.LoginURL},
		{"USERNAME", &c.Username},
		{"PASSWORD", &c.Password},
		{"FIRST_NAME", &c.FirstName},
		{"LAST_NAME", &c.LastName},
		{"ZIP_CODE", &c.ZipCode},
		{"ARTIFACTS_DIR", &c.ArtifactsDir},
	}
	for _, s := range strs {
		if v, ok := get(s.name); ok {
			*s.dst = v
		}
	}

	if v, ok := get("BROWSER"); ok {
		c.BrowserEngine = strings.ToLower(v)
	}
	if v, ok := get("HEADLESS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %sHEADLESS: %w", envPrefix, err)
		}
		c.Headless, c.HeadlessSet = b, true
	}
	if v, ok := get("RANDOM_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %sRANDOM_SEED: %w", envPrefix, err)
		}
		c.RandomSeed, c.RandomSeedSet = seed, true
	}
	for _, it := range []struct {
		name string
		dst  *int
	}{
		{"SLOW_MO_MS", &c.SlowMoMs},
		{"WAIT_TIMEOUT_MS", &c.WaitTimeoutMs},
	} {
		v, ok := get(it.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s%s: must be a non-negative integer, got %q", envPrefix, it.name, v)
		}
		*it.dst = n
	}
	return applied, nil
}

// Validate checks the values a run can't do without.
func (c *Config) Validate() error {
	u, err := url.Parse(c.LoginURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid login_url: %q is not an absolute http(s) url", c.LoginURL)
	}
	if c.Username == "" {
		return errors.New("invalid username: must not be empty")
	}
	if c.Password == "" {
		return errors.New("invalid password: must not be empty")
	}
	if !slices.Contains(engines, c.BrowserEngine) {
		return fmt.Errorf("invalid browser.engine: %q, expected one of %s", c.BrowserEngine, strings.Join(engines, ", "))
	}
	for step := range c.BudgetStepsMs {
		if !slices.Contains(journey.Steps, journey.Step(step)) {
			return fmt.Errorf("invalid budgets.steps_ms: unknown step %q", step)
		}
	}
	return nil
}

// Launch returns the browser options.
func (c *Config) Launch() browser.LaunchOptions {
	return browser.LaunchOptions{
		Engine:         c.BrowserEngine,
		Headless:       c.Headless,
		SlowMo:         ms(c.SlowMoMs),
		Install:        c.InstallBrowsers,
		DefaultTimeout: c.WaitTimeout(),
		Viewport:       browser.Viewport{Width: c.ViewportWidth, Height: c.ViewportHeight},
	}
}

// WaitTimeout is the default budget of a single wait.
func (c *Config) WaitTimeout() time.Duration { return ms(c.WaitTimeoutMs) }

// PollInterval is the delay between two checks of a wait.
func (c *Config) PollInterval() time.Duration { return ms(c.PollIntervalMs) }

// Journey returns the values typed into the storefront.
func (c *Config) Journey() journey.Params {
	return journey.Params{
		Username:  c.Username,
		Password:  c.Password,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		ZipCode:   c.ZipCode,
	}
}

// Budgets starts from the stock budgets and applies the configured ones.
func (c *Config) Budgets() journey.Budgets {
	b := journey.DefaultBudgets()
	if c.BudgetTotalMs > 0 {
		b.Total = ms(c.BudgetTotalMs)
	}
	for step, v := range c.BudgetStepsMs {
		b.Steps[journey.Step(step)] = ms(v)
	}
	return b
}

// NotifyParams returns the notification settings.
func (c *Config) NotifyParams() notify.Params {
	n := c.Values.Notify
	return notify.Params{
		Channels:      n.Channels,
		OnError:       n.OnError,
		OnComplete:    n.OnComplete,
		TimeoutMs:     n.TimeoutMs,
		TelegramToken: n.TelegramToken,
		TelegramChat:  n.TelegramChat,
		SlackToken:    n.SlackToken,
		SlackChannel:  n.SlackChannel,
		SMTPHost:      n.SMTPHost,
		SMTPPort:      n.SMTPPort,
		SMTPUsername:  n.SMTPUsername,
		SMTPPassword:  n.SMTPPassword,
		SMTPStartTLS:  n.SMTPStartTLS,
		EmailFrom:     n.EmailFrom,
		EmailTo:       n.EmailTo,
		WebhookURLs:   n.WebhookURLs,
		CustomScript:  n.CustomScript,
	}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
