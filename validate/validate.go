// Package validate holds reusable predicates for argparse validators,
// plus a by-name lookup used when schemas are loaded from config files.
package validate

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	NameRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)
	EnvRegex  = regexp.MustCompile("^[a-zA-Z_]+[a-zA-Z0-9_]*$")
	UrlRegex  = regexp.MustCompile(`^https?:\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)$`)
)

func NotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Name accepts lowercase alphanumeric identifiers with inner dashes.
func Name(s string) bool {
	return NameRegex.MatchString(s)
}

func Env(s string) bool {
	return EnvRegex.MatchString(s)
}

func URL(s string) bool {
	return UrlRegex.MatchString(s)
}

func Int(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func Float(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func Bool(s string) bool {
	_, err := strconv.ParseBool(s)
	return err == nil
}

// File accepts paths to existing regular files.
func File(s string) bool {
	fi, err := os.Stat(s)
	return err == nil && !fi.IsDir()
}

// Dir accepts paths to existing directories.
func Dir(s string) bool {
	fi, err := os.Stat(s)
	return err == nil && fi.IsDir()
}

// Suffix accepts values ending in suffix.
func Suffix(suffix string) func(string) bool {
	return func(s string) bool {
		return strings.HasSuffix(s, suffix)
	}
}

// OneOf accepts exactly the listed choices.
func OneOf(choices ...string) func(string) bool {
	return func(s string) bool {
		for _, c := range choices {
			if s == c {
				return true
			}
		}

		return false
	}
}

// All chains predicates, accepting only values every one of them
// accepts.
func All(fns ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, fn := range fns {
			if !fn(s) {
				return false
			}
		}

		return true
	}
}

var byName = map[string]func(string) bool{
	"not-empty": NotEmpty,
	"name":      Name,
	"env":       Env,
	"url":       URL,
	"int":       Int,
	"float":     Float,
	"bool":      Bool,
	"file":      File,
	"dir":       Dir,
}

// Lookup resolves a validator spec from a schema document. A bare name
// selects one of the fixed predicates; "suffix=.txt" and
// "one-of=a,b,c" build the parameterized ones.
func Lookup(spec string) (func(string) bool, bool) {
	if fn, ok := byName[spec]; ok {
		return fn, true
	}

	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 {
		return nil, false
	}

	switch parts[0] {
	case "suffix":
		return Suffix(parts[1]), true
	case "one-of":
		return OneOf(strings.Split(parts[1], ",")...), true
	}

	return nil, false
}
