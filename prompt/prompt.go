// Package prompt fills in missing required arguments interactively
// instead of failing the parse outright.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/seventv/argparse"
)

// ask obtains a value for a missing argument. Swappable so the retry
// loop in Fill can be tested without a terminal.
var ask = runPrompt

// Fill parses tokens against reg. While the failure is a missing
// required argument that can be addressed by alias, it asks for a value
// on the terminal, splices the alias and the answer into the token list
// and retries. An answer for a top level argument goes in front of the
// tokens so no subcommand discriminator can swallow it; anything deeper
// is appended behind the discriminators. A retry that leaves the same
// argument missing, a missing argument with no alias, and every failure
// other than a missing required argument are returned as is. The
// caller's slice is never modified.
func Fill(reg *argparse.Registry, tokens []string) (*argparse.Matches, error) {
	tokens = append([]string(nil), tokens...)

	last := ""
	for {
		m, err := reg.Parse(tokens)
		if err == nil {
			return m, nil
		}

		var missing *argparse.MissingRequiredError
		if !errors.As(err, &missing) {
			return nil, err
		}

		if missing.Arg == last {
			// the previous answer did not bind, stop asking
			return nil, err
		}
		last = missing.Arg

		a, ok := reg.Find(missing.Arg)
		if !ok || !a.HasAlias() {
			return nil, err
		}

		value, perr := ask(a)
		if perr != nil {
			return nil, perr
		}

		if _, top := reg.Lookup(missing.Arg); top {
			tokens = append([]string{a.String(), value}, tokens...)
		} else {
			tokens = append(tokens, a.String(), value)
		}
	}
}

func runPrompt(a *argparse.Arg) (string, error) {
	prompt := promptui.Prompt{
		Label:    a.Name(),
		Validate: answerValidator(a),
	}

	return prompt.Run()
}

// answerValidator wraps the argument's validator for promptui, also
// refusing answers that could not bind on the retry.
func answerValidator(a *argparse.Arg) func(string) error {
	return func(input string) error {
		if input == "" {
			return fmt.Errorf("%s cannot be empty", a.Name())
		}

		// a flag shaped answer would parse as an alias, not a value
		if strings.HasPrefix(input, "-") {
			return fmt.Errorf("%s cannot start with -", a.Name())
		}

		if !a.Validate(input) {
			return fmt.Errorf("invalid value for %s", a.Name())
		}

		return nil
	}
}
