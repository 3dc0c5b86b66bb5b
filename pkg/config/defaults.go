package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// defaultsInstaller writes the embedded defaults into a config directory.
type defaultsInstaller struct {
	embedFS embed.FS
}

func newDefaultsInstaller(embedFS embed.FS) *defaultsInstaller {
	return &defaultsInstaller{embedFS: embedFS}
}

// Install creates the config directory and copies every embedded default that is missing there.
// Existing files are never overwritten, the user owns them after the first run.
func (d *defaultsInstaller) Install(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	for _, f := range []struct{ embedded, name string }{
		{embedded: embeddedConfig, name: ConfigFileName},
		{embedded: embeddedColors, name: ColorsFileName},
	} {
		dest := filepath.Join(configDir, f.name)
		_, statErr := os.Stat(dest)
		if statErr == nil {
			continue
		}
		if !os.IsNotExist(statErr) {
			return fmt.Errorf("check %s: %w", f.name, statErr)
		}

		data, err := d.embedFS.ReadFile(f.embedded)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", f.name, err)
		}
		if err := os.WriteFile(dest, commentOut(data), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}

// commentOut turns the defaults into a commented template, so installed files don't pin
// today's defaults and the loader keeps falling back to the embedded copy.
func commentOut(data []byte) []byte {
	var out []byte
	start := 0
	for i := 0; i <= len(data); i++ {
		if i < len(data) && data[i] != '\n' {
			continue
		}
		line := data[start:i]
		if len(line) > 0 && line[0] != '#' {
			out = append(out, "# "...)
		}
		out = append(out, line...)
		if i < len(data) {
			out = append(out, '\n')
		}
		start = i + 1
	}
	return out
}
