// Package progress provides timestamped logging of a suite run to a file and colored stdout.
package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// FileName is the progress log inside a run's artifact directory.
const FileName = "progress.txt"

// Phase selects the color of regular lines.
type Phase string

// Phase constants.
const (
	PhaseStep Phase = "step" // journey in progress
	PhasePass Phase = "pass" // run passed, summary lines
	PhaseFail Phase = "fail" // run failed, summary lines
)

// Colors are "r,g,b" strings, as produced by the config color loader. Empty or malformed
// entries keep the built-in color.
type Colors struct {
	Step      string
	Pass      string
	Fail      string
	Warn      string
	Error     string
	Timestamp string
	Info      string
}

// Config holds logger configuration.
type Config struct {
	Dir     string    // run artifact dir, the log is written to Dir/progress.txt; empty means stdout only
	RunID   string    // shown in the header
	URL     string    // storefront under test
	Browser string    // browser engine
	Seed    uint64    // product selection seed
	NoColor bool      // disable color output (sets color.NoColor globally)
	Colors  Colors    // overrides of the built-in colors
	Stdout  io.Writer // os.Stdout when nil
}

// Logger writes timestamped output to both file and stdout. Safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	file      *os.File
	stdout    io.Writer
	startTime time.Time
	phase     Phase
	palette   palette
}

type palette struct {
	phases    map[Phase]*color.Color
	warn      *color.Color
	err       *color.Color
	timestamp *color.Color
	info      *color.Color
}

// timestampFormat is the format for timestamps: YY-MM-DD HH:MM:SS
const timestampFormat = "06-01-02 15:04:05"

// indent aligns continuation lines with the text after "[YY-MM-DD HH:MM:SS] ".
const indent = "                    "

// NewLogger creates a logger and writes the run header to the progress file.
func NewLogger(cfg Config) (*Logger, error) {
	if cfg.NoColor {
		color.NoColor = true
	}

	l := &Logger{
		stdout:    cfg.Stdout,
		startTime: time.Now(),
		phase:     PhaseStep,
		palette:   newPalette(cfg.Colors),
	}
	if l.stdout == nil {
		l.stdout = os.Stdout
	}

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("create progress dir: %w", err)
		}
		f, err := os.Create(filepath.Join(cfg.Dir, FileName)) //nolint:gosec // path from the artifacts dir
		if err != nil {
			return nil, fmt.Errorf("create progress file: %w", err)
		}
		l.file = f
	}

	l.writeFile("# swagcheck progress log\n")
	l.writeFile("Run: %s\n", cfg.RunID)
	l.writeFile("URL: %s\n", cfg.URL)
	l.writeFile("Browser: %s\n", cfg.Browser)
	l.writeFile("Seed: %d\n", cfg.Seed)
	l.writeFile("Started: %s\n", l.startTime.Format("2006-01-02 15:04:05"))
	l.writeFile("%s\n\n", strings.Repeat("-", 60))

	return l, nil
}

func newPalette(c Colors) palette {
	return palette{
		phases: map[Phase]*color.Color{
			PhaseStep: pick(c.Step, color.FgCyan),
			PhasePass: pick(c.Pass, color.FgGreen),
			PhaseFail: pick(c.Fail, color.FgRed),
		},
		warn:      pick(c.Warn, color.FgYellow),
		err:       pick(c.Error, color.FgRed),
		timestamp: pick(c.Timestamp, color.FgWhite),
		info:      pick(c.Info, color.FgWhite),
	}
}

// pick returns the rgb color when rgb is a valid "r,g,b" triple, fallback otherwise.
func pick(rgb string, fallback color.Attribute) *color.Color {
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 {
		return color.New(fallback)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return color.New(fallback)
		}
		v[i] = n
	}
	return color.RGB(v[0], v[1], v[2])
}

// Path returns the progress file path, empty when logging to stdout only.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// SetPhase sets the color of regular lines.
func (l *Logger) SetPhase(phase Phase) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.phase = phase
}

// Print writes a timestamped message to both file and stdout.
func (l *Logger) Print(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format(timestampFormat)
	l.writeFile("[%s] %s\n", timestamp, msg)
	l.writeStdout("%s %s\n", l.palette.timestamp.Sprintf("[%s]", timestamp), l.phaseColor().Sprint(msg))
}

// PrintAligned writes multi-line text, e.g. the timing summary. The first line gets the
// timestamp, continuation lines are indented and long lines wrapped to the terminal width.
func (l *Logger) PrintAligned(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format(timestampFormat)
	phaseColor := l.phaseColor()
	width := getTerminalWidth()

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		if len(line) > width {
			lines = append(lines, strings.Split(wrapText(line, width), "\n")...)
			continue
		}
		lines = append(lines, line)
	}

	for i, line := range lines {
		switch {
		case line == "":
			l.writeFile("\n")
			l.writeStdout("\n")
		case i == 0:
			l.writeFile("[%s] %s\n", timestamp, line)
			l.writeStdout("%s %s\n", l.palette.timestamp.Sprintf("[%s]", timestamp), phaseColor.Sprint(line))
		default:
			l.writeFile("%s%s\n", indent, line)
			l.writeStdout("%s%s\n", indent, phaseColor.Sprint(line))
		}
	}
}

// Error writes an error message.
func (l *Logger) Error(format string, args ...any) {
	l.labeled("ERROR", l.palette.err, format, args...)
}

// Warn writes a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.labeled("WARN", l.palette.warn, format, args...)
}

func (l *Logger) labeled(label string, c *color.Color, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format(timestampFormat)
	l.writeFile("[%s] %s: %s\n", timestamp, label, msg)
	l.writeStdout("%s %s\n", l.palette.timestamp.Sprintf("[%s]", timestamp), c.Sprintf("%s: %s", label, msg))
}

// Info writes a plain line to stdout only, used for startup details and hints.
func (l *Logger) Info(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeStdout("%s\n", l.palette.info.Sprintf(format, args...))
}

// Started returns the time the logger was created.
func (l *Logger) Started() time.Time { return l.startTime }

// Elapsed returns formatted elapsed time since start.
func (l *Logger) Elapsed() string {
	return humanize.RelTime(l.startTime, time.Now(), "", "")
}

// Close writes the footer and closes the progress file. Safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	l.writeFile("\n%s\n", strings.Repeat("-", 60))
	l.writeFile("Completed: %s (%s)\n", time.Now().Format("2006-01-02 15:04:05"), l.Elapsed())

	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("close progress file: %w", err)
	}
	return nil
}

func (l *Logger) phaseColor() *color.Color {
	if c, ok := l.palette.phases[l.phase]; ok {
		return c
	}
	return l.palette.phases[PhaseStep]
}

func (l *Logger) writeFile(format string, args ...any) {
	if l.file != nil {
		fmt.Fprintf(l.file, format, args...)
	}
}

func (l *Logger) writeStdout(format string, args ...any) {
	fmt.Fprintf(l.stdout, format, args...)
}

// getTerminalWidth returns the content width (total minus the timestamp prefix) using the COLUMNS
// env var or the terminal size, 60 if neither is known.
func getTerminalWidth() int {
	const minWidth = 40

	total := 0
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		total = cols
	} else if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		total = w
	}
	if total == 0 {
		return 80 - len(indent)
	}
	return max(total-len(indent), minWidth)
}

// wrapText wraps text to width, breaking on word boundaries. Words longer than width stay whole.
func wrapText(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
			lineLen = len(word)
		case lineLen+1+len(word) <= width:
			result.WriteString(" ")
			lineLen += 1 + len(word)
		default:
			result.WriteString("\n")
			lineLen = len(word)
		}
		result.WriteString(word)
	}
	return result.String()
}
