package samples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Error code constants for sample loading.
const (
	ErrCodeNotFound = "E005" // Path not found
	ErrCodeParse    = "E201" // Value is not a number
	ErrCodeColumns  = "E202" // Wrong column count
	ErrCodeEmpty    = "E203" // No samples
)

// LoadError represents an error that occurred while loading samples.
type LoadError struct {
	Code    string
	Message string
	Line    int // 1-based line number, 0 if not line-specific
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads a two-column sample file from path.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("sample file not found: %s", path)}
	}
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads two-column sample data from r.
func Parse(r io.Reader) (*Series, error) {
	s := &Series{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, &LoadError{
				Code:    ErrCodeColumns,
				Message: fmt.Sprintf("expected 2 columns, got %d", len(fields)),
				Line:    line,
			}
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("invalid x value %q", fields[0]), Line: line}
		}
		fx, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("invalid f value %q", fields[1]), Line: line}
		}
		s.X = append(s.X, x)
		s.F = append(s.F, fx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	if s.Len() == 0 {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: "no samples found"}
	}
	return s, nil
}
