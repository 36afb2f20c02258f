package argparse

import "github.com/jinzhu/copier"

func copy[T any](v T) T {
	var n T
	copier.Copy(&n, v)
	return n
}

// Matches is the result of parsing one level of input. It is built once
// by Parse and never mutated afterwards; the map and slice accessors
// return copies so callers cannot reach back into it.
type Matches struct {
	name string

	values      map[string]string
	flags       map[string]bool
	positionals []string

	sub *Matches
}

func newMatches(r *Registry) *Matches {
	m := &Matches{
		values: map[string]string{},
		flags:  map[string]bool{},
	}

	for _, a := range r.args {
		if !a.takesValue {
			m.flags[a.name] = false
		}
	}

	return m
}

// Name returns the subcommand token this result was produced for, or ""
// for the top level.
func (m *Matches) Name() string {
	return m.name
}

// Value returns the bound or defaulted value for a value argument.
func (m *Matches) Value(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Flag reports whether a presence flag was seen. Undeclared names report
// false.
func (m *Matches) Flag(name string) bool {
	return m.flags[name]
}

// Values returns a copy of the full name to value mapping.
func (m *Matches) Values() map[string]string {
	return copy(m.values)
}

// Flags returns a copy of the full name to presence mapping.
func (m *Matches) Flags() map[string]bool {
	return copy(m.flags)
}

// Positionals returns the tokens collected as positionals, in input
// order.
func (m *Matches) Positionals() []string {
	return append([]string(nil), m.positionals...)
}

// Subcommand returns the nested result when a subcommand token was
// recognized and its parse succeeded.
func (m *Matches) Subcommand() (*Matches, bool) {
	return m.sub, m.sub != nil
}
