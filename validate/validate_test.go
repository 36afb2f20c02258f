package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmpty(t *testing.T) {
	assert.True(t, NotEmpty("x"))
	assert.False(t, NotEmpty(""))
	assert.False(t, NotEmpty("   "))
}

func TestName(t *testing.T) {
	assert.True(t, Name("my-chart"))
	assert.True(t, Name("a"))
	assert.False(t, Name("-leading"))
	assert.False(t, Name("trailing-"))
	assert.False(t, Name("Upper"))
}

func TestEnv(t *testing.T) {
	assert.True(t, Env("MY_VAR"))
	assert.True(t, Env("_hidden"))
	assert.False(t, Env("1BAD"))
	assert.False(t, Env("with space"))
}

func TestURL(t *testing.T) {
	assert.True(t, URL("https://charts.example.com/stable"))
	assert.True(t, URL("http://example.com"))
	assert.False(t, URL("not a url"))
	assert.False(t, URL("ftp://example.com"))
}

func TestNumeric(t *testing.T) {
	assert.True(t, Int("42"))
	assert.False(t, Int("4.2"))

	assert.True(t, Float("4.2"))
	assert.False(t, Float("four"))

	assert.True(t, Bool("true"))
	assert.True(t, Bool("0"))
	assert.False(t, Bool("yes"))
}

func TestFileAndDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, File(file))
	assert.False(t, File(dir))
	assert.False(t, File(filepath.Join(dir, "missing")))

	assert.True(t, Dir(dir))
	assert.False(t, Dir(file))
}

func TestSuffix(t *testing.T) {
	txt := Suffix(".txt")
	assert.True(t, txt("report.txt"))
	assert.False(t, txt("report.csv"))
}

func TestOneOf(t *testing.T) {
	level := OneOf("debug", "info", "warn")
	assert.True(t, level("info"))
	assert.False(t, level("trace"))
}

func TestAll(t *testing.T) {
	fn := All(NotEmpty, Suffix(".txt"))
	assert.True(t, fn("a.txt"))
	assert.False(t, fn("a.csv"))
	assert.False(t, fn(""))
}

func TestLookup(t *testing.T) {
	fn, ok := Lookup("int")
	require.True(t, ok)
	assert.True(t, fn("3"))

	fn, ok = Lookup("suffix=.txt")
	require.True(t, ok)
	assert.True(t, fn("a.txt"))
	assert.False(t, fn("a.csv"))

	fn, ok = Lookup("one-of=red,green")
	require.True(t, ok)
	assert.True(t, fn("green"))
	assert.False(t, fn("blue"))

	_, ok = Lookup("made-up")
	assert.False(t, ok)

	_, ok = Lookup("made-up=x")
	assert.False(t, ok)
}
