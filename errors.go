package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Parse when -h or --help appears on the command
// line. It is a terminal outcome distinct from success and from failure:
// no further scanning or validation takes place once it is detected.
var ErrHelp = errors.New("help requested")

// SpecError reports a malformed argument declaration. It is returned by
// AddArgument, never by Parse: bad declarations are rejected before any
// parsing can occur.
type SpecError struct {
	Arg    string // first alias of the offending declaration, if any
	Reason string
}

func (e *SpecError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("invalid argument specification: %s", e.Reason)
	}
	return fmt.Sprintf("invalid specification for %s: %s", e.Arg, e.Reason)
}

// DuplicateAliasError reports an alias that is already claimed, either
// by an earlier declaration or by the reserved help argument.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate alias: %s", e.Alias)
}

// UnknownArgumentError reports a token that could not be matched: an
// option-like token with no registered alias, or a surplus positional
// token after all positional declarations have been satisfied.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Token)
}

// MissingValueError reports an argument occurrence that did not receive
// the number of value tokens its multiplicity rule demands.
type MissingValueError struct {
	Key      string
	Expected string // "a value", "2 values", "at least one value"
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s requires %s", e.Key, e.Expected)
}

// TypeMismatchError reports a failed conversion. During Parse it means
// a raw token could not be coerced to the declared kind; from an
// accessor it means the stored value's tag or shape does not match the
// request. Value is empty in the accessor case.
type TypeMismatchError struct {
	Key   string
	Value string // raw token that failed to convert, if any
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s value for %s: %q", e.Want, e.Key, e.Value)
	}
	return fmt.Sprintf("%s holds %s, not %s", e.Key, e.Got, e.Want)
}

// InvalidChoiceError reports a value outside a declared choice set.
type InvalidChoiceError struct {
	Key     string
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice for %s: %q (choose from %s)",
		e.Key, e.Value, strings.Join(e.Choices, ", "))
}

// MissingRequiredError reports a required declaration that never
// appeared on the command line.
type MissingRequiredError struct {
	Key string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("required argument missing: %s", e.Key)
}

// MissingKeyError reports an accessor call for a canonical key that has
// no stored value, either because it was never registered or because an
// optional argument without a default was not supplied.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no value stored for %s", e.Key)
}
