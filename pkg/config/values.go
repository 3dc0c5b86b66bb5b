package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Values holds the suite settings.
// Fields ending in *Set (e.g., HeadlessSet) track whether that field was explicitly
// set in a config file. This allows distinguishing explicit false/0 from "not set", so a
// local file can turn off something the global file turned on.
type Values struct {
	LoginURL  string
	Username  string
	Password  string
	FirstName string
	LastName  string
	ZipCode   string

	BrowserEngine      string
	Headless           bool
	HeadlessSet        bool // tracks if browser.headless was explicitly set
	SlowMoMs           int
	SlowMoMsSet        bool
	InstallBrowsers    bool
	InstallBrowsersSet bool
	ViewportWidth      int
	ViewportHeight     int

	WaitTimeoutMs  int
	PollIntervalMs int

	RandomSeed    uint64
	RandomSeedSet bool // seed 0 is meaningful (time based), so it must be tracked
	ArtifactsDir  string

	BudgetTotalMs int
	BudgetStepsMs map[string]int // step name -> budget, merged per key

	Notify NotifyValues
}

// NotifyValues mirrors the notify section of the config file.
type NotifyValues struct {
	Channels      []string
	OnError       bool
	OnErrorSet    bool
	OnComplete    bool
	OnCompleteSet bool
	TimeoutMs     int
	TelegramToken string
	TelegramChat  string
	SlackToken    string
	SlackChannel  string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPStartTLS  bool
	EmailFrom     string
	EmailTo       []string
	WebhookURLs   []string
	CustomScript  string
}

// rawValues is the yaml shape of a config file. Pointers tell "absent" from zero.
type rawValues struct {
	LoginURL   *string `yaml:"login_url"`
	Username   *string `yaml:"username"`
	Password   *string `yaml:"password"`
	FirstName  *string `yaml:"first_name"`
	LastName   *string `yaml:"last_name"`
	ZipCode    *string `yaml:"zip_code"`
	RandomSeed *uint64 `yaml:"random_seed"`
	Artifacts  *string `yaml:"artifacts_dir"`

	Browser struct {
		Engine   *string `yaml:"engine"`
		Headless *bool   `yaml:"headless"`
		SlowMoMs *int    `yaml:"slow_mo_ms"`
		Install  *bool   `yaml:"install"`
		Viewport struct {
			Width  *int `yaml:"width"`
			Height *int `yaml:"height"`
		} `yaml:"viewport"`
	} `yaml:"browser"`

	Wait struct {
		TimeoutMs      *int `yaml:"timeout_ms"`
		PollIntervalMs *int `yaml:"poll_interval_ms"`
	} `yaml:"wait"`

	Budgets struct {
		TotalMs *int           `yaml:"total_ms"`
		StepsMs map[string]int `yaml:"steps_ms"`
	} `yaml:"budgets"`

	Notify struct {
		Channels      []string `yaml:"channels"`
		OnError       *bool    `yaml:"on_error"`
		OnComplete    *bool    `yaml:"on_complete"`
		TimeoutMs     *int     `yaml:"timeout_ms"`
		TelegramToken *string  `yaml:"telegram_token"`
		TelegramChat  *string  `yaml:"telegram_chat"`
		SlackToken    *string  `yaml:"slack_token"`
		SlackChannel  *string  `yaml:"slack_channel"`
		SMTPHost      *string  `yaml:"smtp_host"`
		SMTPPort      *int     `yaml:"smtp_port"`
		SMTPUsername  *string  `yaml:"smtp_username"`
		SMTPPassword  *string  `yaml:"smtp_password"`
		SMTPStartTLS  *bool    `yaml:"smtp_starttls"`
		EmailFrom     *string  `yaml:"email_from"`
		EmailTo       []string `yaml:"email_to"`
		WebhookURLs   []string `yaml:"webhook_urls"`
		CustomScript  *string  `yaml:"custom_script"`
	} `yaml:"notify"`
}

// valuesLoader loads Values with embedded filesystem fallback.
type valuesLoader struct {
	embedFS embed.FS
}

func newValuesLoader(embedFS embed.FS) *valuesLoader {
	return &valuesLoader{embedFS: embedFS}
}

// Load loads values from config files with fallback chain: local → global → embedded.
// localConfigPath and globalConfigPath are full paths to config files (not directories).
//
//nolint:dupl // intentional structural similarity with colorLoader.Load
func (vl *valuesLoader) Load(localConfigPath, globalConfigPath string) (Values, error) {
	embedded, err := vl.parseValuesFromEmbedded()
	if err != nil {
		return Values{}, fmt.Errorf("parse embedded defaults: %w", err)
	}

	global, err := vl.parseValuesFromFile(globalConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse global config: %w", err)
	}

	local, err := vl.parseValuesFromFile(localConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse local config: %w", err)
	}

	// merge: embedded → global → local (local wins)
	result := embedded
	result.mergeFrom(&global)
	result.mergeFrom(&local)
	return result, nil
}

// parseValuesFromFile returns empty Values (not error) if the file doesn't exist
// or holds only comments, so a commented template falls back to the defaults.
func (vl *valuesLoader) parseValuesFromFile(path string) (Values, error) {
	if path == "" {
		return Values{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is constructed internally or given by the user
	if err != nil {
		if os.IsNotExist(err) {
			return Values{}, nil
		}
		return Values{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.TrimSpace(stripComments(string(data))) == "" {
		return Values{}, nil
	}
	return vl.parseValuesFromBytes(data)
}

func (vl *valuesLoader) parseValuesFromEmbedded() (Values, error) {
	data, err := vl.embedFS.ReadFile(embeddedConfig)
	if err != nil {
		return Values{}, fmt.Errorf("read embedded defaults: %w", err)
	}
	return vl.parseValuesFromBytes(data)
}

// parseValuesFromBytes decodes yaml into Values. Unknown keys are rejected so typos don't pass silently.
//
//nolint:gocyclo // flat field mapping, splitting would hurt readability
func (vl *valuesLoader) parseValuesFromBytes(data []byte) (Values, error) {
	var raw rawValues
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Values{}, fmt.Errorf("parse config: %w", err)
	}

	var v Values
	setString(&v.LoginURL, raw.LoginURL)
	setString(&v.Username, raw.Username)
	setString(&v.Password, raw.Password)
	setString(&v.FirstName, raw.FirstName)
	setString(&v.LastName, raw.LastName)
	setString(&v.ZipCode, raw.ZipCode)
	setString(&v.ArtifactsDir, raw.Artifacts)
	if raw.RandomSeed != nil {
		v.RandomSeed, v.RandomSeedSet = *raw.RandomSeed, true
	}

	b := raw.Browser
	if b.Engine != nil {
		v.BrowserEngine = strings.ToLower(strings.TrimSpace(*b.Engine))
	}
	if b.Headless != nil {
		v.Headless, v.HeadlessSet = *b.Headless, true
	}
	if b.Install != nil {
		v.InstallBrowsers, v.InstallBrowsersSet = *b.Install, true
	}

	ints := []struct {
		key      string
		src      *int
		dst      *int
		set      *bool
		positive bool
	}{
		{key: "browser.slow_mo_ms", src: b.SlowMoMs, dst: &v.SlowMoMs, set: &v.SlowMoMsSet},
		{key: "browser.viewport.width", src: b.Viewport.Width, dst: &v.ViewportWidth, positive: true},
		{key: "browser.viewport.height", src: b.Viewport.Height, dst: &v.ViewportHeight, positive: true},
		{key: "wait.timeout_ms", src: raw.Wait.TimeoutMs, dst: &v.WaitTimeoutMs, positive: true},
		{key: "wait.poll_interval_ms", src: raw.Wait.PollIntervalMs, dst: &v.PollIntervalMs, positive: true},
		{key: "budgets.total_ms", src: raw.Budgets.TotalMs, dst: &v.BudgetTotalMs},
		{key: "notify.timeout_ms", src: raw.Notify.TimeoutMs, dst: &v.Notify.TimeoutMs},
		{key: "notify.smtp_port", src: raw.Notify.SMTPPort, dst: &v.Notify.SMTPPort},
	}
	for _, it := range ints {
		if it.src == nil {
			continue
		}
		if *it.src < 0 || (it.positive && *it.src == 0) {
			return Values{}, fmt.Errorf("invalid %s: must be %s, got %d", it.key, bound(it.positive), *it.src)
		}
		*it.dst = *it.src
		if it.set != nil {
			*it.set = true
		}
	}

	for step, ms := range raw.Budgets.StepsMs {
		if ms < 0 {
			return Values{}, fmt.Errorf("invalid budgets.steps_ms.%s: must be non-negative, got %d", step, ms)
		}
		if v.BudgetStepsMs == nil {
			v.BudgetStepsMs = map[string]int{}
		}
		v.BudgetStepsMs[step] = ms
	}

	n := raw.Notify
	v.Notify.Channels = trimList(n.Channels)
	if n.OnError != nil {
		v.Notify.OnError, v.Notify.OnErrorSet = *n.OnError, true
	}
	if n.OnComplete != nil {
		v.Notify.OnComplete, v.Notify.OnCompleteSet = *n.OnComplete, true
	}
	setString(&v.Notify.TelegramToken, n.TelegramToken)
	setString(&v.Notify.TelegramChat, n.TelegramChat)
	setString(&v.Notify.SlackToken, n.SlackToken)
	setString(&v.Notify.SlackChannel, n.SlackChannel)
	setString(&v.Notify.SMTPHost, n.SMTPHost)
	setString(&v.Notify.SMTPUsername, n.SMTPUsername)
	setString(&v.Notify.SMTPPassword, n.SMTPPassword)
	if n.SMTPStartTLS != nil {
		v.Notify.SMTPStartTLS = *n.SMTPStartTLS
	}
	setString(&v.Notify.EmailFrom, n.EmailFrom)
	v.Notify.EmailTo = trimList(n.EmailTo)
	v.Notify.WebhookURLs = trimList(n.WebhookURLs)
	setString(&v.Notify.CustomScript, n.CustomScript)

	return v, nil
}

// mergeFrom merges non-empty values from src into dst.
//
//nolint:gocyclo // one branch per field
func (dst *Values) mergeFrom(src *Values) {
	mergeString(&dst.LoginURL, src.LoginURL)
	mergeString(&dst.Username, src.Username)
	mergeString(&dst.Password, src.Password)
	mergeString(&dst.FirstName, src.FirstName)
	mergeString(&dst.LastName, src.LastName)
	mergeString(&dst.ZipCode, src.ZipCode)
	mergeString(&dst.BrowserEngine, src.BrowserEngine)
	mergeString(&dst.ArtifactsDir, src.ArtifactsDir)

	if src.HeadlessSet {
		dst.Headless, dst.HeadlessSet = src.Headless, true
	}
	if src.SlowMoMsSet {
		dst.SlowMoMs, dst.SlowMoMsSet = src.SlowMoMs, true
	}
	if src.InstallBrowsersSet {
		dst.InstallBrowsers, dst.InstallBrowsersSet = src.InstallBrowsers, true
	}
	if src.RandomSeedSet {
		dst.RandomSeed, dst.RandomSeedSet = src.RandomSeed, true
	}
	if src.ViewportWidth > 0 {
		dst.ViewportWidth = src.ViewportWidth
	}
	if src.ViewportHeight > 0 {
		dst.ViewportHeight = src.ViewportHeight
	}
	if src.WaitTimeoutMs > 0 {
		dst.WaitTimeoutMs = src.WaitTimeoutMs
	}
	if src.PollIntervalMs > 0 {
		dst.PollIntervalMs = src.PollIntervalMs
	}
	if src.BudgetTotalMs > 0 {
		dst.BudgetTotalMs = src.BudgetTotalMs
	}
	for step, ms := range src.BudgetStepsMs {
		if dst.BudgetStepsMs == nil {
			dst.BudgetStepsMs = map[string]int{}
		}
		dst.BudgetStepsMs[step] = ms
	}

	dst.Notify.mergeFrom(&src.Notify)
}

func (dst *NotifyValues) mergeFrom(src *NotifyValues) {
	if len(src.Channels) > 0 {
		dst.Channels = src.Channels
	}
	if src.OnErrorSet {
		dst.OnError, dst.OnErrorSet = src.OnError, true
	}
	if src.OnCompleteSet {
		dst.OnComplete, dst.OnCompleteSet = src.OnComplete, true
	}
	if src.TimeoutMs > 0 {
		dst.TimeoutMs = src.TimeoutMs
	}
	if src.SMTPPort > 0 {
		dst.SMTPPort = src.SMTPPort
	}
	if src.SMTPStartTLS {
		dst.SMTPStartTLS = true
	}
	mergeString(&dst.TelegramToken, src.TelegramToken)
	mergeString(&dst.TelegramChat, src.TelegramChat)
	mergeString(&dst.SlackToken, src.SlackToken)
	mergeString(&dst.SlackChannel, src.SlackChannel)
	mergeString(&dst.SMTPHost, src.SMTPHost)
	mergeString(&dst.SMTPUsername, src.SMTPUsername)
	mergeString(&dst.SMTPPassword, src.SMTPPassword)
	mergeString(&dst.EmailFrom, src.EmailFrom)
	mergeString(&dst.CustomScript, src.CustomScript)
	if len(src.EmailTo) > 0 {
		dst.EmailTo = src.EmailTo
	}
	if len(src.WebhookURLs) > 0 {
		dst.WebhookURLs = src.WebhookURLs
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// trimList drops blank entries, nil when nothing is left.
func trimList(items []string) []string {
	var res []string
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			res = append(res, t)
		}
	}
	return res
}

func bound(positive bool) string {
	if positive {
		return "positive"
	}
	return "non-negative"
}

// stripComments removes yaml comment lines, used to detect files that are only a commented template.
func stripComments(s string) string {
	var b strings.Builder
	for line := range strings.SplitSeq(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
