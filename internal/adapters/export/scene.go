// Package export writes rendered scenes as text, JSON, YAML or PDF.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xvierd/vessel-cli/internal/canvas"
	"github.com/xvierd/vessel-cli/internal/scheme"
	"gopkg.in/yaml.v3"
)

// Format is a scene output encoding.
type Format string

const (
	FormatASCII Format = "ascii"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// DefaultWidth is the ASCII canvas width when none is given.
const DefaultWidth = 48

// ParseFormat accepts ascii, text, json, yaml or yml.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "ascii", "text":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want ascii, json or yaml)", raw)
}

// Options controls scene encoding.
type Options struct {
	Format Format
	// Width is the ASCII canvas width in cells.
	Width int
	// Clock is the animation time the ASCII canvas is drawn at.
	Clock time.Duration
}

// Encode writes sc to w. ASCII output is drawn at the scene's settled
// pose.
func Encode(w io.Writer, sc scheme.Scene, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("failed to encode scene as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("failed to encode scene as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil
	case FormatASCII, "":
		width := opts.Width
		if width <= 0 {
			width = DefaultWidth
		}
		c := canvas.Draw(sc, sc.Pose, opts.Clock, width, canvas.HeightFor(width))
		label := sc.Label
		if sc.Caption != "" {
			label += " · " + sc.Caption
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", c.String(), canvas.Caption(label, width)); err != nil {
			return fmt.Errorf("failed to write scene: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", opts.Format)
}
