package argparse

import (
	"errors"
	"fmt"
)

// Sentinels for matching parse failures with errors.Is. The concrete
// error types below carry the argument name and, where it exists, the
// offending value.
var (
	ErrMissingValue    = errors.New("argparse: flag requires a value")
	ErrValidation      = errors.New("argparse: invalid value")
	ErrMissingRequired = errors.New("argparse: missing required flag")
	ErrUnknownFlag     = errors.New("argparse: unknown flag")
	ErrUnexpectedValue = errors.New("argparse: flag does not consume a value")
)

// MissingValueError reports a value argument whose alias appeared with no
// usable value token after it.
type MissingValueError struct {
	Arg string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("flag %s requires a value", e.Arg)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// ValidationError reports a bound value rejected by the argument's
// validator.
type ValidationError struct {
	Arg   string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for flag %s", e.Value, e.Arg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MissingRequiredError reports a required value argument that finished
// the parse with neither a bound value nor a default.
type MissingRequiredError struct {
	Arg string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required flag: %s", e.Arg)
}

func (e *MissingRequiredError) Is(target error) bool {
	return target == ErrMissingRequired
}

// UnknownFlagError reports a flag shaped token that matched no declared
// alias, on a level built with StrictFlags.
type UnknownFlagError struct {
	Token string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %s", e.Token)
}

func (e *UnknownFlagError) Is(target error) bool {
	return target == ErrUnknownFlag
}

// UnexpectedValueError reports an inline =value handed to a presence
// flag.
type UnexpectedValueError struct {
	Arg   string
	Value string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("flag %s does not consume a value", e.Arg)
}

func (e *UnexpectedValueError) Is(target error) bool {
	return target == ErrUnexpectedValue
}
