// Package schema builds argparse registries from YAML documents, so a
// tool's argument surface can live in a config file instead of code.
//
// Document shape:
//
//	strict: true
//	args:
//	  - name: input
//	    short: i
//	    long: input-file
//	    takes_value: true
//	    required: true
//	    default: default.txt
//	    validator: suffix=.txt
//	commands:
//	  process:
//	    args:
//	      - name: output
//	        ...
//
// Unlike the in-code builder, which panics on schema mistakes, a broken
// document is user input and is reported as an error.
package schema

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/seventv/argparse"
	"github.com/seventv/argparse/validate"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Args     []ArgDef            `yaml:"args"`
	Commands map[string]Document `yaml:"commands"`
	Strict   bool                `yaml:"strict"`
}

type ArgDef struct {
	Name       string  `yaml:"name"`
	Short      string  `yaml:"short"`
	Long       string  `yaml:"long"`
	TakesValue bool    `yaml:"takes_value"`
	Required   bool    `yaml:"required"`
	Default    *string `yaml:"default"`
	Validator  string  `yaml:"validator"`
}

// Load parses a YAML schema document into a ready to use registry.
func Load(data []byte) (*argparse.Registry, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	return build(doc)
}

// LoadFile reads path and hands it to Load.
func LoadFile(path string) (*argparse.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	return Load(data)
}

func build(doc Document) (*argparse.Registry, error) {
	reg := argparse.New()

	names := map[string]bool{}
	shorts := map[rune]bool{}
	longs := map[string]bool{}

	for _, def := range doc.Args {
		if def.Name == "" {
			return nil, fmt.Errorf("schema: argument without a name")
		}
		if names[def.Name] {
			return nil, fmt.Errorf("schema: argument %s declared twice", def.Name)
		}
		names[def.Name] = true

		reg.Declare(def.Name)

		if def.Short != "" {
			short, size := utf8.DecodeRuneInString(def.Short)
			if size != len(def.Short) {
				return nil, fmt.Errorf("schema: shorthand %q of %s is not a single character", def.Short, def.Name)
			}
			if shorts[short] {
				return nil, fmt.Errorf("schema: shorthand %q declared twice", def.Short)
			}
			shorts[short] = true

			reg.Short(def.Name, short)
		}

		if def.Long != "" {
			if longs[def.Long] {
				return nil, fmt.Errorf("schema: flag %s declared twice", def.Long)
			}
			longs[def.Long] = true

			reg.Long(def.Name, def.Long)
		}

		if def.TakesValue {
			reg.TakesValue(def.Name)
		}
		if def.Required {
			reg.Required(def.Name)
		}
		if def.Default != nil {
			reg.Default(def.Name, *def.Default)
		}

		if def.Validator != "" {
			fn, ok := validate.Lookup(def.Validator)
			if !ok {
				return nil, fmt.Errorf("schema: unknown validator %q on %s", def.Validator, def.Name)
			}

			reg.Validator(def.Name, fn)
		}
	}

	for name, child := range doc.Commands {
		if names[name] {
			return nil, fmt.Errorf("schema: command %s collides with an argument", name)
		}

		sub, err := build(child)
		if err != nil {
			return nil, fmt.Errorf("%w (in command %s)", err, name)
		}

		reg.Subcommand(name, sub)
	}

	if doc.Strict {
		reg.StrictFlags()
	}

	return reg, nil
}
