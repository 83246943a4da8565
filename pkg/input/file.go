package input

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies how a sequence file is laid out
type Format int

const (
	// FormatText holds one sequence per line
	FormatText Format = iota
	// FormatTOML holds a top-level sequences array of arrays
	FormatTOML
	// FormatYAML holds a top-level sequences list of lists
	FormatYAML
)

// MaxLineSize bounds a single line of a text sequence file
const MaxLineSize = 64 << 20

// document is the shape shared by the TOML and YAML layouts
type document struct {
	Sequences [][]int `toml:"sequences" yaml:"sequences"`
}

// FormatFromPath picks a file format from the extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadFile reads every sequence from the file at path
func LoadFile(path string, extraSeps string) ([][]int, error) {
	logger := logging.GetLogger("input")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "sequence file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open sequence file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	format := FormatFromPath(path)
	logger.Debug().Str("path", path).Int("format", int(format)).Msg("Loading sequence file")

	sequences, err := Load(f, format, extraSeps)
	if err != nil {
		if se, ok := err.(*errors.SweepError); ok {
			se.WithDetail("path", path)
		}
		return nil, err
	}
	return sequences, nil
}

// Load reads every sequence from r in the given format
func Load(r io.Reader, format Format, extraSeps string) ([][]int, error) {
	switch format {
	case FormatTOML:
		var doc document
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrParse, "invalid TOML sequence file")
		}
		return nonNil(doc.Sequences), nil
	case FormatYAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.ErrParse, "invalid YAML sequence file")
		}
		return nonNil(doc.Sequences), nil
	default:
		return loadLines(r, extraSeps)
	}
}

// loadLines parses one sequence per non-blank line; # starts a comment
func loadLines(r io.Reader, extraSeps string) ([][]int, error) {
	sequences := [][]int{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		seq, err := ParseSequence(line, extraSeps)
		if err != nil {
			if se, ok := err.(*errors.SweepError); ok {
				se.WithDetail("line", lineNo)
			}
			return nil, err
		}
		sequences = append(sequences, seq)
	}

	if err := scanner.Err(); err != nil {
		if stderrors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(err, errors.ErrParse, "line %d exceeds %d bytes", lineNo+1, MaxLineSize).
				WithDetail("line", lineNo+1)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed reading sequences")
	}

	return sequences, nil
}

func nonNil(sequences [][]int) [][]int {
	if sequences == nil {
		return [][]int{}
	}
	return sequences
}
