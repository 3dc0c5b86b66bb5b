package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/AndresValenciaC/swagcheck/pkg/journey"
)

// Run describes one suite run for the summary header.
type Run struct {
	ID      string
	URL     string
	Browser string
	Seed    uint64
	Started time.Time
}

// Outcome is what the summary reports on.
type Outcome struct {
	Result     journey.Result
	Budgets    journey.Budgets
	Violations []journey.Violation
	Err        error
}

// Passed is true when the journey completed within every budget.
func (o Outcome) Passed() bool {
	return o.Err == nil && len(o.Violations) == 0
}

// Summary renders the run as markdown: header facts, a step table against the budgets
// and the error, if any.
func Summary(run Run, o Outcome) string {
	var b strings.Builder

	status := "passed"
	if !o.Passed() {
		status = "failed"
	}
	fmt.Fprintf(&b, "# swagcheck %s\n\n", status)

	if run.ID != "" {
		fmt.Fprintf(&b, "- **run:** %s\n", run.ID)
	}
	if !run.Started.IsZero() {
		fmt.Fprintf(&b, "- **started:** %s\n", run.Started.Format("2006-01-02 15:04:05"))
	}
	if run.URL != "" {
		fmt.Fprintf(&b, "- **url:** %s\n", run.URL)
	}
	if run.Browser != "" {
		fmt.Fprintf(&b, "- **browser:** %s\n", run.Browser)
	}
	fmt.Fprintf(&b, "- **seed:** %d\n", run.Seed)
	if len(o.Result.Products) > 0 {
		fmt.Fprintf(&b, "- **products:** %s\n", strings.Join(o.Result.Products, ", "))
	}

	if len(o.Result.Timings.Steps) > 0 {
		b.WriteString("\n| step | duration | budget | result |\n|---|---:|---:|---|\n")
		for _, st := range o.Result.Timings.Steps {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", st.Step, seconds(st.Duration),
				seconds(o.Budgets.Steps[st.Step]), o.verdict(st.Step))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", journey.StepTotal, seconds(o.Result.Timings.Total),
			seconds(o.Budgets.Total), o.verdict(journey.StepTotal))
	}

	if o.Err != nil {
		fmt.Fprintf(&b, "\n## error\n\n```\n%s\n```\n", o.Err)
	}
	return b.String()
}

func (o Outcome) verdict(step journey.Step) string {
	if step != journey.StepTotal && step == o.Result.Failed {
		return "failed"
	}
	for _, v := range o.Violations {
		if v.Step == step {
			return "over budget"
		}
	}
	return "ok"
}

// seconds formats d as "1.23s", "-" for zero.
func seconds(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// Render renders markdown for terminal display, plain content when noColor is set.
func Render(content string, noColor bool) (string, error) {
	if noColor {
		return content, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	result, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return result, nil
}
