// Package output renders sweep outcomes for people and for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/logging"
	"github.com/arthur-debert/sweeps/pkg/output/styles"
	"github.com/arthur-debert/sweeps/pkg/sweep"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Renderer writes outcomes in one concrete format
type Renderer struct {
	writer   io.Writer
	format   Format
	lipgloss *lipgloss.Renderer
	styles   styles.Registry
}

// NewRenderer creates a renderer for w. Auto is resolved against w, and
// noColor downgrades terminal output to plain text.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	log := logging.GetLogger("output.Renderer")

	resolved := Resolve(format, w, noColor)

	lr := lipgloss.NewRenderer(w)
	if resolved != FormatTerminal {
		lr.SetColorProfile(termenv.Ascii)
	}

	log.Debug().
		Str("requested", format.String()).
		Str("resolved", resolved.String()).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	return &Renderer{
		writer:   w,
		format:   resolved,
		lipgloss: lr,
		styles:   styles.Default(lr),
	}
}

// UseStyles overrides the embedded styles with the ones defined in path.
// Names the file does not define keep their defaults.
func (r *Renderer) UseStyles(path string) error {
	reg, err := styles.LoadStyles(path, r.lipgloss)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to load styles").
			WithDetail("path", path)
	}
	for name, style := range reg {
		r.styles[name] = style
	}
	return nil
}

// Format returns the concrete format the renderer writes
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes every outcome
func (r *Renderer) Render(outcomes []sweep.Outcome, mode Mode) error {
	var err error
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		err = enc.Encode(toDocument(outcomes, mode))
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		err = enc.Encode(toDocument(outcomes, mode))
		if err == nil {
			err = enc.Close()
		}
	case FormatXML:
		err = writeXML(r.writer, outcomes, mode)
	default:
		_, err = io.WriteString(r.writer, r.human(outcomes, mode))
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s output", r.format)
	}
	return nil
}

// RenderError writes a single error line in the Error style
func (r *Renderer) RenderError(err error) string {
	return r.styles.Get("Error").Render(fmt.Sprintf("Error: %v", err))
}

func (r *Renderer) human(outcomes []sweep.Outcome, mode Mode) string {
	var b strings.Builder
	for _, o := range outcomes {
		seq := r.styles.Get("Sequence").Render(joinInts(o.Sequence, " "))

		if o.Err != nil {
			fmt.Fprintf(&b, "[%s]  %s\n", seq, r.styles.Get("Error").Render(o.Err.Error()))
			continue
		}

		fmt.Fprintf(&b, "[%s]  %s\n", seq, r.styles.Get("Count").Render(passes(o.Result.Operations)))

		if mode == ModeTrace {
			for _, p := range o.Result.Passes {
				label := r.styles.Get("Pass").Render(fmt.Sprintf("pass %d:", p.Number))
				fmt.Fprintf(&b, "%s %s\n", label, r.styles.Get("Value").Render(joinInts(p.Collected, " ")))
			}
		}
	}
	return b.String()
}

func passes(n int) string {
	if n == 1 {
		return "1 pass"
	}
	return fmt.Sprintf("%d passes", n)
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
