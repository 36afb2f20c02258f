package argparse

import "strings"

// Parse runs tokens, the invocation arguments without the program name,
// against the registry in a single left to right scan. At every position
// an alias match wins over a subcommand name, which wins over positional
// collection. Once a subcommand token is recognized all remaining tokens
// belong to its registry and this level's scan stops.
//
// Parse never mutates the registry. Failures are returned as error
// values, one of the concrete types in errors.go.
func (r *Registry) Parse(tokens []string) (*Matches, error) {
	m := &matcher{reg: r, res: newMatches(r)}

	if err := m.scan(tokens); err != nil {
		return nil, err
	}
	if err := m.finish(); err != nil {
		return nil, err
	}

	return m.res, nil
}

type matcher struct {
	reg *Registry
	res *Matches
}

func flagShaped(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

// next returns rest[idx] unless it is missing or flag shaped, in which
// case the caller has no value to bind.
func next(rest []string, idx int) (string, bool) {
	if idx >= len(rest) || flagShaped(rest[idx]) {
		return "", false
	}

	return rest[idx], true
}

func (m *matcher) scan(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok == "" {
			// ignore empty arguments
			continue
		}

		matched, consumed, err := m.alias(tok, tokens[i+1:])
		if err != nil {
			return err
		}
		if matched {
			i += consumed
			continue
		}

		if child, ok := m.reg.commands[tok]; ok {
			sub, err := child.Parse(tokens[i+1:])
			if err != nil {
				return err
			}

			sub.name = tok
			m.res.sub = sub

			// the rest of the tokens were the subcommand's
			return nil
		}

		if m.reg.strict && flagShaped(tok) {
			return &UnknownFlagError{Token: tok}
		}

		m.res.positionals = append(m.res.positionals, tok)
	}

	return nil
}

// alias resolves tok against the declared aliases. rest holds the tokens
// after tok and consumed reports how many of them were eaten as values.
// An unresolvable token comes back unmatched without error so the caller
// can try the subcommand and positional paths.
func (m *matcher) alias(tok string, rest []string) (matched bool, consumed int, err error) {
	if strings.HasPrefix(tok, "--") && len(tok) > 2 {
		parts := strings.SplitN(tok[2:], "=", 2)

		a, ok := m.reg.long[parts[0]]
		if !ok {
			return false, 0, nil
		}

		if !a.takesValue {
			if len(parts) > 1 {
				return false, 0, &UnexpectedValueError{Arg: a.name, Value: parts[1]}
			}

			m.res.flags[a.name] = true

			return true, 0, nil
		}

		if len(parts) > 1 {
			return true, 0, m.bind(a, parts[1])
		}

		value, ok := next(rest, 0)
		if !ok {
			return false, 0, &MissingValueError{Arg: a.name}
		}

		return true, 1, m.bind(a, value)
	}

	if len(tok) > 1 && tok[0] == '-' && tok[1] != '-' {
		return m.cluster(tok, rest)
	}

	return false, 0, nil
}

// cluster resolves a -abc token. Every rune must be a declared short
// alias, otherwise the whole token is left to the caller. Value taking
// members consume the following tokens in the order they appear in the
// cluster.
func (m *matcher) cluster(tok string, rest []string) (bool, int, error) {
	parts := strings.SplitN(tok[1:], "=", 2)
	runes := []rune(parts[0])

	if len(parts) > 1 {
		// -k=value only makes sense for a single short
		if len(runes) != 1 {
			return false, 0, nil
		}

		a, ok := m.reg.short[runes[0]]
		if !ok {
			return false, 0, nil
		}
		if !a.takesValue {
			return false, 0, &UnexpectedValueError{Arg: a.name, Value: parts[1]}
		}

		return true, 0, m.bind(a, parts[1])
	}

	args := make([]*Arg, 0, len(runes))
	for _, c := range runes {
		a, ok := m.reg.short[c]
		if !ok {
			return false, 0, nil
		}

		args = append(args, a)
	}

	consumed := 0
	for _, a := range args {
		if !a.takesValue {
			m.res.flags[a.name] = true
			continue
		}

		value, ok := next(rest, consumed)
		if !ok {
			return false, 0, &MissingValueError{Arg: a.name}
		}
		consumed++

		if err := m.bind(a, value); err != nil {
			return false, 0, err
		}
	}

	return true, consumed, nil
}

func (m *matcher) bind(a *Arg, value string) error {
	if !a.Validate(value) {
		return &ValidationError{Arg: a.name, Value: value}
	}

	m.res.values[a.name] = value

	return nil
}

// finish substitutes defaults and enforces required arguments for this
// level only; a subcommand's registry checks its own.
func (m *matcher) finish() error {
	for _, a := range m.reg.args {
		if !a.takesValue {
			continue
		}
		if _, ok := m.res.values[a.name]; ok {
			continue
		}

		if a.def != nil {
			// defaults bypass the validator, it judges live input only
			m.res.values[a.name] = *a.def
			continue
		}

		if a.required {
			return &MissingRequiredError{Arg: a.name}
		}
	}

	return nil
}
