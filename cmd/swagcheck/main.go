// Package main provides swagcheck - a timed end-to-end purchase check of the Swag Labs storefront.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/config"
	"github.com/AndresValenciaC/swagcheck/pkg/journey"
	"github.com/AndresValenciaC/swagcheck/pkg/notify"
	"github.com/AndresValenciaC/swagcheck/pkg/pages"
	"github.com/AndresValenciaC/swagcheck/pkg/pick"
	"github.com/AndresValenciaC/swagcheck/pkg/progress"
	"github.com/AndresValenciaC/swagcheck/pkg/report"
)

// opts holds all command-line options.
type opts struct {
	Config    string  `short:"c" long:"config" description:"local config file (default .swagcheck/config.yml)"`
	ConfigDir string  `long:"config-dir" env:"SWAG_CONFIG_DIR" description:"global config directory (default ~/.config/swagcheck)"`
	EnvFile   string  `long:"env-file" default:".env" description:"dotenv file with SWAG_* overrides"`
	Init      bool    `long:"init" description:"write commented default config files into the config dir and exit"`
	Browser   string  `short:"b" long:"browser" choice:"chromium" choice:"firefox" choice:"webkit" description:"browser engine"`
	Headed    bool    `long:"headed" description:"show the browser window"`
	Seed      *uint64 `short:"s" long:"seed" description:"product selection seed, 0 picks one from the clock"`
	Artifacts string  `short:"a" long:"artifacts" description:"artifacts root directory"`
	Install   bool    `long:"install" description:"download the browser build before the run"`
	NoColor   bool    `long:"no-color" description:"disable color output"`
	Version   bool    `short:"v" long:"version" description:"print version and exit"`
}

var revision = "unknown"

// errBudget is returned when the journey completed but some step took too long.
var errBudget = errors.New("performance budget exceeded")

func main() {
	fmt.Printf("swagcheck %s\n", revision)

	var o opts
	parser := flags.NewParser(&o, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if o.Version {
		os.Exit(0)
	}

	restore := quietInterrupt()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, o)
	cancel()
	restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts) error {
	cfg, err := config.Load(config.Options{ConfigDir: o.ConfigDir, LocalPath: o.Config, EnvFile: o.EnvFile, Install: o.Init})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.Init {
		fmt.Printf("defaults written to %s\n", cfg.ConfigDir())
		return nil
	}

	applyFlags(cfg, o)
	if err = cfg.Validate(); err != nil {
		return err
	}

	runID := report.NewRunID()
	artifacts, err := report.NewDir(cfg.ArtifactsDir, runID)
	if err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}
	picker := pick.New(cfg.RandomSeed)

	log, err := progress.NewLogger(progress.Config{
		Dir:     artifacts.Path(),
		RunID:   runID,
		URL:     cfg.LoginURL,
		Browser: cfg.BrowserEngine,
		Seed:    picker.Seed(),
		NoColor: o.NoColor,
		Colors:  progressColors(cfg.Colors),
	})
	if err != nil {
		return fmt.Errorf("create progress logger: %w", err)
	}
	defer log.Close()

	notifier, err := notify.New(cfg.NotifyParams(), log)
	if err != nil {
		return fmt.Errorf("create notifier: %w", err)
	}

	printStartupInfo(log, cfg, runID, picker.Seed(), artifacts.Path())

	budgets := cfg.Budgets()
	res, runErr := purchase(ctx, cfg, picker, log, artifacts)
	violations := res.Timings.Over(budgets)
	outcome := report.Outcome{Result: res, Budgets: budgets, Violations: violations, Err: runErr}

	finish(log, outcome)

	summary := report.Summary(report.Run{
		ID: runID, URL: cfg.LoginURL, Browser: cfg.BrowserEngine, Seed: picker.Seed(), Started: log.Started(),
	}, outcome)
	if _, saveErr := artifacts.Save("summary", "md", []byte(summary)); saveErr != nil {
		log.Warn("save summary: %v", saveErr)
	}
	if rendered, renderErr := report.Render(summary, o.NoColor); renderErr == nil {
		fmt.Print(rendered)
	} else {
		log.Warn("render summary: %v", renderErr)
	}

	result := notify.NewResult(res, violations, runErr)
	result.URL, result.Browser, result.Seed = cfg.LoginURL, cfg.BrowserEngine, picker.Seed()
	// the run may have been interrupted, the notification still goes out
	notifier.Send(context.WithoutCancel(ctx), result)

	log.Info("completed in %s", log.Elapsed())

	switch {
	case runErr != nil:
		return fmt.Errorf("journey: %w", runErr)
	case len(violations) > 0:
		return fmt.Errorf("%w: %d step(s) over budget", errBudget, len(violations))
	}
	return nil
}

// purchase starts the browser, opens a session and runs the journey in it.
func purchase(ctx context.Context, cfg *config.Config, picker *pick.Picker, log *progress.Logger,
	sink journey.Sink) (journey.Result, error) {
	launcher, err := browser.Launch(cfg.Launch())
	if err != nil {
		return journey.Result{}, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		if closeErr := launcher.Close(); closeErr != nil {
			log.Warn("close browser: %v", closeErr)
		}
	}()

	session, err := launcher.NewSession(ctx)
	if err != nil {
		return journey.Result{}, fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn("close session: %v", closeErr)
		}
	}()

	waiter := browser.NewWaiter(session, cfg.WaitTimeout(), cfg.PollInterval())
	site := pages.NewSite(session, waiter, cfg.LoginURL, picker)

	tracker := &journey.Tracker{}
	tracker.OnChange(func(old, cur journey.State) {
		log.Print("screen %s -> %s", old, cur)
	})

	return journey.Run(ctx, site, cfg.Journey(),
		journey.WithLogger(log), journey.WithSink(sink), journey.WithTracker(tracker))
}

// finish prints the timings and the verdict in the pass or fail color.
func finish(log *progress.Logger, o report.Outcome) {
	if o.Passed() {
		log.SetPhase(progress.PhasePass)
	} else {
		log.SetPhase(progress.PhaseFail)
	}

	if len(o.Result.Timings.Steps) > 0 {
		log.PrintAligned("timings:\n" + o.Result.Timings.Summary())
	}
	for _, v := range o.Violations {
		log.Error("over budget: %s", v)
	}
	if o.Err != nil {
		log.Error("%v", o.Err)
		return
	}
	if len(o.Result.Products) > 0 {
		log.Print("ordered: %s", strings.Join(o.Result.Products, ", "))
	}
}

// applyFlags overrides config values with the command line, it has the last word.
func applyFlags(cfg *config.Config, o opts) {
	if o.Browser != "" {
		cfg.BrowserEngine = strings.ToLower(o.Browser)
	}
	if o.Headed {
		cfg.Headless, cfg.HeadlessSet = false, true
	}
	if o.Seed != nil {
		cfg.RandomSeed, cfg.RandomSeedSet = *o.Seed, true
	}
	if o.Artifacts != "" {
		cfg.ArtifactsDir = o.Artifacts
	}
	if o.Install {
		cfg.InstallBrowsers, cfg.InstallBrowsersSet = true, true
	}
}

func progressColors(c config.ColorConfig) progress.Colors {
	return progress.Colors{
		Step:      c.Step,
		Pass:      c.Pass,
		Fail:      c.Fail,
		Warn:      c.Warn,
		Error:     c.Error,
		Timestamp: c.Timestamp,
		Info:      c.Info,
	}
}

func printStartupInfo(log *progress.Logger, cfg *config.Config, runID string, seed uint64, dir string) {
	mode := "headless"
	if !cfg.Headless {
		mode = "headed"
	}
	log.Info("run %s against %s", runID, cfg.LoginURL)
	log.Info("browser: %s (%s), seed: %d", cfg.BrowserEngine, mode, seed)
	log.Info("artifacts: %s", dir)
	if env := cfg.EnvOverrides(); len(env) > 0 {
		log.Info("env overrides: %s", strings.Join(env, ", "))
	}
}
