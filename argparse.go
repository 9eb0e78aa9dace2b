package argparse

import (
	"strings"
)

// Reserved help aliases, claimed by every parser instance.
const (
	helpFlagShort = "-h"
	helpFlagLong  = "--help"
)

// Multiplicity rules. Single is the implicit default: one token, or
// zero tokens for a plain boolean flag.
type nargsKind int

const (
	nargsSingle nargsKind = iota
	nargsZeroOrMore
	nargsOneOrMore
	nargsZeroOrOne
	nargsExactly
)

type nargsRule struct {
	kind  nargsKind
	count int // used by nargsExactly only
}

// IsList reports whether the rule produces a list-shaped value. Every
// explicit rule does, even when it consumes zero or one token; only the
// implicit default produces a scalar.
func (r nargsRule) isList() bool {
	return r.kind != nargsSingle
}

// ParseNargs converts the textual multiplicity spec into a rule. The
// recognized forms are "" (implicit default), "*", "+", "?", and a
// positive decimal count. Anything else is rejected here, at
// registration time, so malformed specs never reach Parse.
func parseNargs(spec string) (nargsRule, bool) {
	switch spec {
	case "":
		return nargsRule{kind: nargsSingle}, true
	case "*":
		return nargsRule{kind: nargsZeroOrMore}, true
	case "+":
		return nargsRule{kind: nargsOneOrMore}, true
	case "?":
		return nargsRule{kind: nargsZeroOrOne}, true
	}

	for _, c := range spec {
		if c < '0' || c > '9' {
			return nargsRule{}, false
		}
	}

	n := 0
	for _, c := range spec {
		n = 10*n + int(c-'0')
		if n > 1<<20 { // implausible count, refuse early
			return nargsRule{}, false
		}
	}
	if n < 1 {
		return nargsRule{}, false
	}

	return nargsRule{kind: nargsExactly, count: n}, true
}

// Argument describes one declaration to be registered with AddArgument.
// Aliases must hold at least one surface form; dash-prefixed aliases
// declare an option, bare aliases a positional. Default and Choices are
// raw token text, converted to Kind as needed.
type Argument struct {
	Aliases  []string
	Help     string
	Kind     Kind
	Default  string
	Required bool
	Metavar  string
	Choices  []string
	Nargs    string
}

// A declaration is one registered argument with everything derived at
// registration time: its canonical storage key, its resolved
// multiplicity rule, and the choice set indexed for lookup.
type declaration struct {
	Argument

	key        string
	positional bool
	nargs      nargsRule
	choiceSet  map[string]struct{}
}

// FlagLike reports whether the declaration is a plain boolean flag:
// an option of kind Bool with the implicit multiplicity. Such a
// declaration consumes no tokens and is true iff present.
func (d *declaration) flagLike() bool {
	return !d.positional && d.Kind == Bool && d.nargs.kind == nargsSingle
}

func (d *declaration) numeric() bool {
	return d.Kind == Int || d.Kind == Float
}

// CanonicalKey derives the storage key from a declaration's aliases:
// the longest alias after stripping leading dashes wins, ties going to
// the earlier alias, and internal dashes become underscores.
func canonicalKey(aliases []string) string {
	best := ""
	for _, a := range aliases {
		t := strings.TrimLeft(a, "-")
		if len(t) > len(best) {
			best = t
		}
	}
	return strings.ReplaceAll(best, "-", "_")
}

// Parser owns a set of argument declarations and, after a successful
// Parse, the typed values extracted from the command line. Registration
// must be complete before the first Parse call; the two phases must not
// overlap. Independent Parser instances share no state.
type Parser struct {
	name string

	decls       []*declaration
	byAlias     map[string]*declaration
	byKey       map[string]*declaration
	positionals []*declaration

	store map[string]parsedValue
}

// NewParser returns a parser with the reserved -h/--help declaration
// already registered under the canonical key "help".
func NewParser(name string) *Parser {
	p := &Parser{
		name:    name,
		byAlias: map[string]*declaration{},
		byKey:   map[string]*declaration{},
	}

	// Cannot fail: the alias tables are empty and the spec is fixed.
	p.AddArgument(Argument{
		Aliases: []string{helpFlagShort, helpFlagLong},
		Help:    "show this help message",
		Kind:    Bool,
	})

	return p
}

// AddArgument registers one declaration. It returns a SpecError for a
// malformed declaration (no aliases, a bad Nargs string, an ill-formed
// or mixed alias list) and a DuplicateAliasError when an alias, or the
// derived canonical key, is already claimed. A rejected declaration
// takes no effect.
func (p *Parser) AddArgument(arg Argument) error {
	if len(arg.Aliases) == 0 {
		return &SpecError{Reason: "at least one alias is required"}
	}

	first := arg.Aliases[0]

	rule, ok := parseNargs(arg.Nargs)
	if !ok {
		return &SpecError{Arg: first,
			Reason: "nargs must be \"*\", \"+\", \"?\", or a positive integer"}
	}

	dashed, bare := 0, 0
	for _, a := range arg.Aliases {
		if a == "" || a == "-" || a == "--" || strings.TrimLeft(a, "-") == "" {
			return &SpecError{Arg: first, Reason: "malformed alias"}
		}
		if strings.HasPrefix(a, "-") {
			dashed++
		} else {
			bare++
		}
	}
	if dashed > 0 && bare > 0 {
		return &SpecError{Arg: first,
			Reason: "aliases mix option and positional forms"}
	}

	for _, a := range arg.Aliases {
		if _, taken := p.byAlias[a]; taken {
			return &DuplicateAliasError{Alias: a}
		}
	}

	key := canonicalKey(arg.Aliases)
	if _, taken := p.byKey[key]; taken {
		return &DuplicateAliasError{Alias: first}
	}

	d := &declaration{
		Argument:   arg,
		key:        key,
		positional: bare > 0,
		nargs:      rule,
	}

	if len(arg.Choices) > 0 {
		d.choiceSet = make(map[string]struct{}, len(arg.Choices))
		for _, c := range arg.Choices {
			d.choiceSet[c] = struct{}{}
		}
	}

	p.decls = append(p.decls, d)
	p.byKey[key] = d
	for _, a := range arg.Aliases {
		p.byAlias[a] = d
	}
	if d.positional {
		p.positionals = append(p.positionals, d)
	}

	return nil
}
