// Package notify sends the outcome of a suite run to telegram, slack, email, webhooks or a custom script.
package notify

import (
	"context"
	"fmt"
	"html"
	"math"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	ntfy "github.com/go-pkgz/notify"

	"github.com/AndresValenciaC/swagcheck/pkg/journey"
)

// Params holds configuration for creating a notification Service.
type Params struct {
	Channels      []string
	OnError       bool
	OnComplete    bool
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

// Service fans a run result out to the configured channels.
type Service struct {
	channels   []channel      // notifier with its destination
	custom     *customChannel // optional custom script channel
	onError    bool
	onComplete bool
	timeoutMs  int
	hostname   string // shown in the message header
	log        logger
}

// channel pairs a notifier with its destination URI.
type channel struct {
	notifier   ntfy.Notifier
	dest       string
	htmlEscape bool // true for channels that use HTML parse mode (e.g., telegram)
}

// logger receives warnings about channels that failed.
type logger interface {
	Print(format string, args ...any)
}

// Result holds the outcome of one journey run. It is also the json piped to a custom script.
type Result struct {
	Status     string         `json:"status"` // "success" or "failure"
	URL        string         `json:"url,omitempty"`
	Browser    string         `json:"browser,omitempty"`
	Seed       uint64         `json:"seed,omitempty"`
	Duration   string         `json:"duration,omitempty"`
	Products   []string       `json:"products,omitempty"`
	Steps      []StepDuration `json:"steps,omitempty"`
	Violations []string       `json:"violations,omitempty"`
	FailedStep string         `json:"failed_step,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// StepDuration is the time one journey step took.
type StepDuration struct {
	Step    string  `json:"step"`
	Seconds float64 `json:"seconds"`
}

// NewResult builds a Result from a finished run. A run that completed but broke
// a budget is a failure too.
func NewResult(res journey.Result, violations []journey.Violation, runErr error) Result {
	r := Result{Status: "success", Products: res.Products, FailedStep: string(res.Failed)}
	if len(res.Timings.Steps) > 0 {
		r.Duration = res.Timings.Total.Round(10 * time.Millisecond).String()
	}
	for _, st := range res.Timings.Steps {
		r.Steps = append(r.Steps, StepDuration{Step: string(st.Step), Seconds: math.Round(st.Duration.Seconds()*100) / 100})
	}
	for _, v := range violations {
		r.Violations = append(r.Violations, v.String())
	}

	switch {
	case runErr != nil:
		r.Status, r.Error = "failure", runErr.Error()
	case len(violations) > 0:
		r.Status, r.Error = "failure", fmt.Sprintf("%d performance budget(s) exceeded", len(violations))
	}
	return r
}

// requirement is a config key a channel can't work without.
type requirement struct {
	key string
	set bool
}

// requirements lists the keys of each known channel in the order they are reported.
func requirements(p Params) map[string][]requirement {
	return map[string][]requirement{
		"telegram": {{"notify.telegram_token", p.TelegramToken != ""}, {"notify.telegram_chat", p.TelegramChat != ""}},
		"email": {{"notify.smtp_host", p.SMTPHost != ""}, {"notify.email_from", p.EmailFrom != ""},
			{"notify.email_to", len(p.EmailTo) > 0}},
		"slack":   {{"notify.slack_token", p.SlackToken != ""}, {"notify.slack_channel", p.SlackChannel != ""}},
		"webhook": {{"notify.webhook_urls", len(p.WebhookURLs) > 0}},
		"custom":  {{"notify.custom_script", p.CustomScript != ""}},
	}
}

// checkChannels normalizes the channel names and reports the first unknown name or missing key.
func checkChannels(p Params) ([]string, error) {
	known := requirements(p)
	names := make([]string, 0, len(p.Channels))
	for _, ch := range p.Channels {
		name := strings.TrimSpace(strings.ToLower(ch))
		reqs, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown notification channel: %q", ch)
		}
		for _, r := range reqs {
			if !r.set {
				return nil, fmt.Errorf("%s channel: %s is required", name, r.key)
			}
		}
		names = append(names, name)
	}
	return names, nil
}

// New validates p and creates a notification Service.
// returns nil, nil if no channels are configured.
// a misconfigured channel is an error, an unreachable telegram api only disables that channel.
func New(p Params, log logger) (*Service, error) {
	if len(p.Channels) == 0 {
		return nil, nil //nolint:nilnil // no channels configured, Send is nil-safe
	}
	names, err := checkChannels(p)
	if err != nil {
		return nil, err
	}

	svc := &Service{onError: p.OnError, onComplete: p.OnComplete, timeoutMs: p.TimeoutMs, hostname: "unknown", log: log}
	if h, hErr := os.Hostname(); hErr == nil {
		svc.hostname = h
	}
	if svc.timeoutMs <= 0 {
		svc.timeoutMs = 10000
	}

	for _, name := range names {
		switch name {
		case "telegram":
			c, cErr := telegramChannelMaker(p)
			if cErr != nil {
				// the token is part of the api url, keep it out of the log
				log.Print("[WARN] telegram channel disabled: %s", strings.ReplaceAll(cErr.Error(), p.TelegramToken, "[REDACTED]"))
				continue
			}
			svc.channels = append(svc.channels, c)
		case "email":
			svc.channels = append(svc.channels, makeEmailChannel(p))
		case "slack":
			svc.channels = append(svc.channels, channel{notifier: ntfy.NewSlack(p.SlackToken), dest: "slack:" + p.SlackChannel})
		case "webhook":
			wh := ntfy.NewWebhook(ntfy.WebhookParams{})
			for _, u := range p.WebhookURLs {
				svc.channels = append(svc.channels, channel{notifier: wh, dest: u})
			}
		case "custom":
			svc.custom = newCustomChannel(p.CustomScript)
		}
	}

	if len(svc.channels) == 0 && svc.custom == nil {
		log.Print("[WARN] all notification channels were disabled due to initialization errors")
	}
	return svc, nil
}

// wanted reports whether the onError/onComplete flags let r through.
func (s *Service) wanted(r Result) bool {
	if r.Status == "success" {
		return s.onComplete
	}
	return s.onError
}

// Send delivers the result to every channel the flags allow.
// nil-safe on receiver. Errors are logged, never returned, a failed notification must not fail the run.
func (s *Service) Send(ctx context.Context, r Result) {
	if s == nil || !s.wanted(r) {
		return
	}

	msg := s.formatMessage(r)
	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(s.timeoutMs)*time.Millisecond)
	defer cancel()

	for _, ch := range s.channels {
		text := msg
		if ch.htmlEscape {
			text = html.EscapeString(msg)
		}
		if err := ch.notifier.Send(sendCtx, ch.dest, text); err != nil {
			s.log.Print("[WARN] notification failed for %s: %v", ch.notifier, err)
		}
	}
	if s.custom != nil {
		if err := s.custom.send(sendCtx, r); err != nil {
			s.log.Print("[WARN] custom notification failed: %v", err)
		}
	}
}

// formatMessage renders r as a header line followed by one aligned "label: value" line per set field.
func (s *Service) formatMessage(r Result) string {
	verdict := "failed"
	if r.Status == "success" {
		verdict = "passed"
	}

	type field struct{ label, value string }
	fields := []field{{"url", r.URL}, {"browser", r.Browser}}
	if r.Seed != 0 {
		fields = append(fields, field{"seed", strconv.FormatUint(r.Seed, 10)})
	}
	fields = append(fields, field{"duration", r.Duration}, field{"products", strings.Join(r.Products, ", ")})
	steps := make([]string, 0, len(r.Steps))
	for _, st := range r.Steps {
		steps = append(steps, fmt.Sprintf("%s %.2fs", st.Step, st.Seconds))
	}
	fields = append(fields, field{"steps", strings.Join(steps, ", ")})
	for _, v := range r.Violations {
		fields = append(fields, field{"budget", v})
	}
	fields = append(fields, field{"failed", r.FailedStep}, field{"error", r.Error})

	var b strings.Builder
	fmt.Fprintf(&b, "swagcheck %s on %s\n\n", verdict, s.hostname)
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "%-9s %s\n", f.label+":", f.value)
		}
	}
	return b.String()
}

// telegramChannelMaker creates a telegram notifier and destination.
// overridden in tests to avoid live API calls.
var telegramChannelMaker = makeTelegramChannel

// makeTelegramChannel sends to telegram:<chat>?parseMode=HTML.
// ntfy.NewTelegram calls the api to verify the token.
func makeTelegramChannel(p Params) (channel, error) {
	tg, err := ntfy.NewTelegram(ntfy.TelegramParams{Token: p.TelegramToken})
	if err != nil {
		return channel{}, fmt.Errorf("create telegram notifier: %w", err)
	}
	return channel{notifier: tg, dest: fmt.Sprintf("telegram:%s?parseMode=HTML", p.TelegramChat), htmlEscape: true}, nil
}

// makeEmailChannel sends one mail to all recipients through the configured smtp server.
func makeEmailChannel(p Params) channel {
	em := ntfy.NewEmail(ntfy.SMTPParams{
		Host:     p.SMTPHost,
		Port:     p.SMTPPort,
		Username: p.SMTPUsername,
		Password: p.SMTPPassword,
		StartTLS: p.SMTPStartTLS,
	})
	q := url.Values{"from": {p.EmailFrom}, "subject": {"swagcheck notification"}}
	return channel{notifier: em, dest: "mailto:" + strings.Join(p.EmailTo, ",") + "?" + q.Encode()}
}
