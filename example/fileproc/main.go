// fileproc is a small demonstration binary for the argparse library: a
// file option with a default and a validator, a process subcommand with
// a required output, and a lint subcommand that checks YAML schema
// documents.
package main

import (
	"os"

	"github.com/seventv/argparse"
	"github.com/seventv/argparse/logger"
	"github.com/seventv/argparse/prompt"
	"github.com/seventv/argparse/schema"
	"github.com/seventv/argparse/validate"
)

func newRegistry() *argparse.Registry {
	process := argparse.New().
		Declare("output").
		Short("output", 'o').
		Long("output", "output-file").
		TakesValue("output").
		Required("output")

	return argparse.New().
		Declare("input").
		Short("input", 'i').
		Long("input", "input-file").
		TakesValue("input").
		Default("input", "default.txt").
		Validator("input", validate.Suffix(".txt")).
		Declare("verbose").
		Short("verbose", 'v').
		Long("verbose", "verbose").
		Subcommand("process", process).
		Subcommand("lint", argparse.New())
}

func main() {
	m, err := prompt.Fill(newRegistry(), os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}

	if m.Flag("verbose") {
		logger.SetDebug(true)
	}

	input, _ := m.Value("input")
	logger.Debugf("input resolved to %s", input)

	sub, ok := m.Subcommand()
	if !ok {
		logger.Infof("nothing to do for %s", input)
		return
	}

	switch sub.Name() {
	case "process":
		output, _ := sub.Value("output")
		logger.Infof("processing %s into %s", input, output)
	case "lint":
		paths := sub.Positionals()
		for i, path := range paths {
			logger.Progressf("linting %d/%d %s", i+1, len(paths), path)

			if _, err := schema.LoadFile(path); err != nil {
				logger.Errorf("%s: %v", path, err)
				continue
			}
		}

		logger.Infof("linted %d schemas", len(paths))
	}
}
