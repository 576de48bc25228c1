package samples

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WhitespaceColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.txt")
	data := "# t v\n0.0 1.0\n0.5\t2.0\n\n1.0   3.0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, s.X)
	assert.Equal(t, []float64{1, 2, 3}, s.F)
}

func TestLoad_Testdata(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "s_wave.txt"))
	require.NoError(t, err)
	assert.Equal(t, 21, s.Len())
}

func TestParse_CommaSeparated(t *testing.T) {
	s, err := Parse(strings.NewReader("0,1\n1, 2\n2 ,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, s.X)
	assert.Equal(t, []float64{1, 2, 3}, s.F)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
		line int
	}{
		{"bad number", "0 1\n1 abc\n", ErrCodeParse, 2},
		{"bad abscissa", "x 1\n", ErrCodeParse, 1},
		{"three columns", "0 1 2\n", ErrCodeColumns, 1},
		{"one column", "# header\n0\n", ErrCodeColumns, 2},
		{"empty", "# only comments\n\n", ErrCodeEmpty, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.code, loadErr.Code)
			assert.Equal(t, tt.line, loadErr.Line)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/samples.txt")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.Contains(t, err.Error(), "not found")
}
