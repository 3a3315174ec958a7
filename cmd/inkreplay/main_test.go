package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/freehand"
)

func TestLoadTrace(t *testing.T) {
	tr, err := loadTrace(strings.NewReader(`{"strokes": [[[1, 2], [3, 4]], [[5, 6]]]}`))
	require.NoError(t, err)
	assert.Equal(t, [][][2]float64{{{1, 2}, {3, 4}}, {{5, 6}}}, tr.Strokes)

	_, err = loadTrace(strings.NewReader(`{"strokes": [[]]}`))
	assert.ErrorContains(t, err, "stroke 0 has no samples")

	_, err = loadTrace(strings.NewReader(`{"lines": []}`))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	cfg := config{
		brush:  write("brush.toml", "color = \"crimson\"\nwidth = 3\n"),
		trace:  write("trace.json", `{"strokes": [[[10, 10], [20, 20], [30, 10], [40, 20]], [[0, 0]]]}`),
		svg:    filepath.Join(dir, "out.svg"),
		png:    filepath.Join(dir, "out.png"),
		pdf:    filepath.Join(dir, "out.pdf"),
		width:  64,
		height: 32,
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "both strokes have geometry")
	id, desc, ok := strings.Cut(lines[0], " ")
	require.True(t, ok)
	assert.NotEmpty(t, id)
	p, err := freehand.ParsePath(desc)
	require.NoError(t, err)
	assert.Equal(t, 3, p.DrawingCount(), "dot line and two segments")

	for _, name := range []string{cfg.svg, cfg.png, cfg.pdf} {
		fi, err := os.Stat(name)
		require.NoError(t, err)
		assert.Positive(t, fi.Size(), name)
	}
	svg, err := os.ReadFile(cfg.svg)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `stroke="#dc143c"`)
}

func TestRunRequiresTrace(t *testing.T) {
	assert.Error(t, run(config{}, &bytes.Buffer{}))
}
