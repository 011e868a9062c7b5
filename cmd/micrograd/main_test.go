package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "micrograd "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	err := run([]string{"serve"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"serve"`)
}

func TestParseLayers(t *testing.T) {
	sizes, err := parseLayers("4, 4,1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 1}, sizes)

	for _, bad := range []string{"", "4,,1", "4,x", "4,0", "-1"} {
		_, err := parseLayers(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseTrainFlags(t *testing.T) {
	var out bytes.Buffer
	opts, err := parseTrainFlags([]string{"-lr", "0.05", "-steps", "7", "-seed", "3", "-layers", "2,1", "-act", "relu"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 0.05, opts.lr)
	assert.Equal(t, 7, opts.steps)
	assert.Equal(t, int64(3), opts.seed)
	assert.Equal(t, []int{2, 1}, opts.layers)
	assert.Equal(t, nn.ReLU, opts.act)

	defaults, err := parseTrainFlags(nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 0.1, defaults.lr)
	assert.Equal(t, 50, defaults.steps)
	assert.Equal(t, []int{4, 4, 1}, defaults.layers)
	assert.Equal(t, nn.Tanh, defaults.act)

	_, err = parseTrainFlags([]string{"-act", "sigmoid"}, &out)
	assert.Error(t, err)
	_, err = parseTrainFlags([]string{"-bogus"}, &out)
	assert.Error(t, err)
}

func TestRunTrain(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"train", "-seed", "42", "-steps", "20", "-every", "10"}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Model: 3 -> [4 4 1] (tanh), 41 parameters, seed 42")
	assert.Contains(t, text, "step 10 | loss ")
	assert.Contains(t, text, "step 20 | loss ")
	assert.Contains(t, text, "Final loss: ")
	assert.Equal(t, 4, strings.Count(text, "  target "))
}

func TestRunTrain_Restarts(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"train", "-seed", "10", "-steps", "5", "-every", "0", "-restarts", "3", "-quiet"}, &out)
	require.NoError(t, err)

	text := out.String()
	for _, seed := range []string{"10", "11", "12"} {
		assert.Contains(t, text, "  seed "+seed+": final loss ")
	}
	assert.Regexp(t, `Final loss: \S+ \(seed 1[012], best`, text)

	err = run([]string{"train", "-restarts", "0"}, &out)
	assert.Error(t, err)
}

func TestRunTrain_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.csv")
	data := "# a, b, target\n0,0,-1\n0,1,1\n1,0,1\n1,1,-1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	xs, ys, err := loadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, xs)
	assert.Equal(t, []float64{-1, 1, 1, -1}, ys)

	var out bytes.Buffer
	err = run([]string{"train", "-data", path, "-seed", "1", "-steps", "5", "-quiet"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Model: 2 -> [4 4 1]")
	assert.NotContains(t, out.String(), "  target ")
}

func TestLoadCSV_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	_, _, err := loadCSV(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	_, _, err = loadCSV(write("empty.csv", ""))
	assert.Error(t, err)

	_, _, err = loadCSV(write("narrow.csv", "1\n2\n"))
	assert.Error(t, err)

	_, _, err = loadCSV(write("ragged.csv", "1,2,3\n1,2\n"))
	assert.Error(t, err)

	_, _, err = loadCSV(write("nan.csv", "1,x,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 column 2")
}

func TestRunTrace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"trace"}, &out))

	text := out.String()
	assert.Contains(t, text, "Nodes (10):")
	assert.Contains(t, text, "Edges (9):")
	assert.Contains(t, text, "x1 -> x1*w1")
	assert.Contains(t, text, "n -> o")
	assert.Regexp(t, `o\s+data\s+0\.7071\s+grad\s+1\.0000\s+tanh`, text)
	assert.Regexp(t, `w1\s+data\s+-3\.0000\s+grad\s+1\.0000`, text)
}
