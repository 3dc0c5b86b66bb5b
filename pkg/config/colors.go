package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ColorConfig holds terminal colors as "r,g,b" strings, ready for the progress logger.
type ColorConfig struct {
	Step      string
	Pass      string
	Fail      string
	Warn      string
	Error     string
	Timestamp string
	Info      string
}

// colorLoader loads colors from ini files with embedded filesystem fallback.
type colorLoader struct {
	embedFS embed.FS
}

func newColorLoader(embedFS embed.FS) *colorLoader {
	return &colorLoader{embedFS: embedFS}
}

// Load loads colors with fallback chain: local → global → embedded.
//
//nolint:dupl // intentional structural similarity with valuesLoader.Load
func (cl *colorLoader) Load(localColorsPath, globalColorsPath string) (ColorConfig, error) {
	embedded, err := cl.parseColorsFromEmbedded()
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse embedded colors: %w", err)
	}

	global, err := cl.parseColorsFromFile(globalColorsPath)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse global colors: %w", err)
	}

	local, err := cl.parseColorsFromFile(localColorsPath)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse local colors: %w", err)
	}

	result := embedded
	result.mergeFrom(&global)
	result.mergeFrom(&local)
	return result, nil
}

// parseColorsFromFile returns empty ColorConfig (not error) if file doesn't exist.
func (cl *colorLoader) parseColorsFromFile(path string) (ColorConfig, error) {
	if path == "" {
		return ColorConfig{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is constructed internally
	if err != nil {
		if os.IsNotExist(err) {
			return ColorConfig{}, nil
		}
		return ColorConfig{}, fmt.Errorf("read colors %s: %w", path, err)
	}
	return cl.parseColorsFromBytes(data)
}

func (cl *colorLoader) parseColorsFromEmbedded() (ColorConfig, error) {
	data, err := cl.embedFS.ReadFile(embeddedColors)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("read embedded colors: %w", err)
	}
	return cl.parseColorsFromBytes(data)
}

func (cl *colorLoader) parseColorsFromBytes(data []byte) (ColorConfig, error) {
	// # starts a hex value, not an inline comment
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse colors: %w", err)
	}

	var colors ColorConfig
	section := cfg.Section("")
	colorKeys := []struct {
		key   string
		field *string
	}{
		{"color_step", &colors.Step},
		{"color_pass", &colors.Pass},
		{"color_fail", &colors.Fail},
		{"color_warn", &colors.Warn},
		{"color_error", &colors.Error},
		{"color_timestamp", &colors.Timestamp},
		{"color_info", &colors.Info},
	}

	for _, ck := range colorKeys {
		key, err := section.GetKey(ck.key)
		if err != nil {
			continue
		}
		hex := strings.TrimSpace(key.String())
		if hex == "" {
			continue
		}
		r, g, b, err := parseHexColor(hex)
		if err != nil {
			return ColorConfig{}, fmt.Errorf("invalid %s: %w", ck.key, err)
		}
		*ck.field = fmt.Sprintf("%d,%d,%d", r, g, b)
	}

	return colors, nil
}

// parseHexColor parses "#rrggbb" into its components.
func parseHexColor(hex string) (r, g, b int, err error) {
	if hex == "" || hex[0] != '#' {
		return 0, 0, 0, errors.New("hex color must start with #")
	}
	if len(hex) != 7 {
		return 0, 0, 0, errors.New("hex color must be 7 characters (e.g., #ff0000)")
	}

	val, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return int(val>>16) & 0xFF, int(val>>8) & 0xFF, int(val) & 0xFF, nil
}

func (dst *ColorConfig) mergeFrom(src *ColorConfig) {
	mergeString(&dst.Step, src.Step)
	mergeString(&dst.Pass, src.Pass)
	mergeString(&dst.Fail, src.Fail)
	mergeString(&dst.Warn, src.Warn)
	mergeString(&dst.Error, src.Error)
	mergeString(&dst.Timestamp, src.Timestamp)
	mergeString(&dst.Info, src.Info)
}
