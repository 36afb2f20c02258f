// Package argparse declares and parses command line arguments.
//
// A Registry holds the schema for one parser level: flags, value options
// and subcommands. It is built through chained calls and then handed a
// token slice to parse, yielding an immutable Matches.
package argparse

import "fmt"

// Arg is a single declared argument.
type Arg struct {
	name  string
	short rune
	long  string

	takesValue bool
	required   bool
	def        *string
	validator  func(string) bool
}

// Name returns the identifier the argument was declared under.
func (a *Arg) Name() string {
	return a.name
}

func (a *Arg) String() string {
	if a.long != "" {
		return fmt.Sprintf("--%s", a.long)
	}
	if a.short != 0 {
		return fmt.Sprintf("-%c", a.short)
	}

	return a.name
}

// HasAlias reports whether the argument can be addressed from input at
// all. Arguments without aliases only ever resolve through defaults.
func (a *Arg) HasAlias() bool {
	return a.short != 0 || a.long != ""
}

// Validate runs the attached validator against value. Arguments without
// a validator accept everything.
func (a *Arg) Validate(value string) bool {
	if a.validator == nil {
		return true
	}

	return a.validator(value)
}

// Registry is the declarative schema for one parser level. Methods mutate
// the registry and return it so declarations can be chained. Schema
// mistakes (duplicate names, duplicate aliases, references to undeclared
// arguments) are programming errors and panic; input problems surface as
// errors from Parse.
//
// A registry must be fully built before Parse is called and must not be
// mutated while a parse is running.
type Registry struct {
	args   []*Arg
	byName map[string]*Arg
	short  map[rune]*Arg
	long   map[string]*Arg

	commands map[string]*Registry
	strict   bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName:   map[string]*Arg{},
		short:    map[rune]*Arg{},
		long:     map[string]*Arg{},
		commands: map[string]*Registry{},
	}
}

func (r *Registry) mustArg(name string) *Arg {
	a, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("argument %s has not been declared", name))
	}

	return a
}

// Declare adds a new argument under name with nothing else set.
func (r *Registry) Declare(name string) *Registry {
	if _, ok := r.byName[name]; ok {
		panic(fmt.Sprintf("argument %s already declared", name))
	}
	if _, ok := r.commands[name]; ok {
		panic(fmt.Sprintf("argument %s collides with a subcommand", name))
	}

	a := &Arg{name: name}
	r.args = append(r.args, a)
	r.byName[name] = a

	return r
}

// Short attaches a single character alias, matched in input as -c.
func (r *Registry) Short(name string, short rune) *Registry {
	a := r.mustArg(name)

	if owner, ok := r.short[short]; ok && owner != a {
		panic(fmt.Sprintf("shorthand %c already taken by %s", short, owner.name))
	}

	a.short = short
	r.short[short] = a

	return r
}

// Long attaches a long alias, matched in input as --long.
func (r *Registry) Long(name string, long string) *Registry {
	a := r.mustArg(name)

	if owner, ok := r.long[long]; ok && owner != a {
		panic(fmt.Sprintf("flag %s already taken by %s", long, owner.name))
	}

	a.long = long
	r.long[long] = a

	return r
}

// TakesValue marks the argument as consuming a value token instead of
// acting as a presence flag.
func (r *Registry) TakesValue(name string) *Registry {
	r.mustArg(name).takesValue = true
	return r
}

// Required marks the argument as mandatory. A required value argument
// with neither a bound value nor a default fails the parse.
func (r *Registry) Required(name string) *Registry {
	r.mustArg(name).required = true
	return r
}

// Default registers the value substituted when the argument never binds
// one from input. Honored only for value arguments; order relative to
// TakesValue does not matter.
func (r *Registry) Default(name string, value string) *Registry {
	r.mustArg(name).def = &value
	return r
}

// Validator attaches a predicate run against values bound from input.
// Only the most recent validator per argument is kept. Defaults are not
// validated.
func (r *Registry) Validator(name string, fn func(string) bool) *Registry {
	r.mustArg(name).validator = fn
	return r
}

// Subcommand registers child under name. When name appears in input as a
// bare token, every token after it is parsed by child.
func (r *Registry) Subcommand(name string, child *Registry) *Registry {
	if _, ok := r.commands[name]; ok {
		panic(fmt.Sprintf("command %s already exists", name))
	}
	if _, ok := r.byName[name]; ok {
		panic(fmt.Sprintf("command %s collides with an argument", name))
	}

	r.commands[name] = child

	return r
}

// StrictFlags makes this level reject flag shaped tokens that match no
// declared alias instead of collecting them as positionals.
func (r *Registry) StrictFlags() *Registry {
	r.strict = true
	return r
}

// Lookup returns the argument declared under name.
func (r *Registry) Lookup(name string) (*Arg, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Find returns the argument declared under name on this level or, depth
// first, on any subcommand level. Names are only unique per level, so
// with colliding names across levels Find returns the shallowest.
func (r *Registry) Find(name string) (*Arg, bool) {
	if a, ok := r.byName[name]; ok {
		return a, true
	}

	for _, child := range r.commands {
		if a, ok := child.Find(name); ok {
			return a, true
		}
	}

	return nil, false
}
