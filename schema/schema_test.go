package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seventv/argparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileproc = `
args:
  - name: input
    short: i
    long: input-file
    takes_value: true
    required: true
    default: default.txt
    validator: suffix=.txt
  - name: verbose
    short: v
    long: verbose
commands:
  process:
    args:
      - name: output
        short: o
        long: output-file
        takes_value: true
        required: true
`

func TestLoadAndParse(t *testing.T) {
	reg, err := Load([]byte(fileproc))
	require.NoError(t, err)

	m, err := reg.Parse([]string{"-v", "-i", "a.txt", "process", "-o", "b.txt"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"input": "a.txt"}, m.Values())
	assert.True(t, m.Flag("verbose"))

	sub, ok := m.Subcommand()
	require.True(t, ok)
	assert.Equal(t, "process", sub.Name())
	assert.Equal(t, map[string]string{"output": "b.txt"}, sub.Values())
}

func TestLoadedValidatorApplies(t *testing.T) {
	reg, err := Load([]byte(fileproc))
	require.NoError(t, err)

	_, err = reg.Parse([]string{"--input-file", "report.csv"})
	require.Error(t, err)
	assert.ErrorIs(t, err, argparse.ErrValidation)
}

func TestLoadedDefaultApplies(t *testing.T) {
	reg, err := Load([]byte(fileproc))
	require.NoError(t, err)

	m, err := reg.Parse(nil)
	require.NoError(t, err)

	v, ok := m.Value("input")
	require.True(t, ok)
	assert.Equal(t, "default.txt", v)
}

func TestStrictDocument(t *testing.T) {
	reg, err := Load([]byte(`
strict: true
args:
  - name: verbose
    short: v
`))
	require.NoError(t, err)

	_, err = reg.Parse([]string{"--frobnicate"})
	assert.ErrorIs(t, err, argparse.ErrUnknownFlag)
}

func TestBrokenDocumentsError(t *testing.T) {
	cases := map[string]string{
		"not yaml": `{{`,
		"nameless argument": `
args:
  - short: i
`,
		"duplicate name": `
args:
  - name: input
  - name: input
`,
		"duplicate shorthand": `
args:
  - name: input
    short: i
  - name: ignore
    short: i
`,
		"duplicate long": `
args:
  - name: input
    long: file
  - name: output
    long: file
`,
		"multi character shorthand": `
args:
  - name: input
    short: in
`,
		"unknown validator": `
args:
  - name: input
    takes_value: true
    validator: frobnicate
`,
		"command colliding with argument": `
args:
  - name: process
commands:
  process: {}
`,
		"broken nested command": `
commands:
  process:
    args:
      - name: output
      - name: output
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fileproc), 0644))

	reg, err := LoadFile(path)
	require.NoError(t, err)

	_, err = reg.Parse([]string{"-i", "a.txt"})
	assert.NoError(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEmptyDefaultIsUsable(t *testing.T) {
	reg, err := Load([]byte(`
args:
  - name: tag
    long: tag
    takes_value: true
    required: true
    default: ""
`))
	require.NoError(t, err)

	m, err := reg.Parse(nil)
	require.NoError(t, err)

	v, ok := m.Value("tag")
	require.True(t, ok)
	assert.Equal(t, "", v)
}
