package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const waitDelay = 2 * time.Second

// customChannel runs a user script with the result as json on stdin.
type customChannel struct {
	scriptPath string
}

func newCustomChannel(scriptPath string) *customChannel {
	return &customChannel{scriptPath: scriptPath}
}

// send pipes the result to the script. A non-zero exit is an error carrying whatever the script printed.
func (c *customChannel) send(ctx context.Context, r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.scriptPath) //nolint:gosec // path comes from user config
	cmd.Stdin = bytes.NewReader(data)
	cmd.WaitDelay = waitDelay // children of a killed script may hold the output pipe open
	killGroupOnCancel(cmd)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err = cmd.Run(); err != nil {
		if text := strings.TrimSpace(out.String()); text != "" {
			return fmt.Errorf("script %s: %w, output: %s", c.scriptPath, err, text)
		}
		return fmt.Errorf("script %s: %w", c.scriptPath, err)
	}
	return nil
}
