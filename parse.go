package argparse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	endFlagsIndicator = "--"
)

// parseState is created per Parse call and discarded on failure. The
// store is swapped into the parser only when the whole parse succeeds,
// so no partially populated result is ever observable.
type parseState struct {
	store     map[string]parsedValue
	satisfied map[string]bool
}

// A cursor walks the token sequence. sep is the index of the first
// end-of-flags indicator, or len(tokens) when there is none; every
// token beyond it is a positional value regardless of shape.
type cursor struct {
	tokens []string
	sep    int
	pos    int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) peek() string {
	return c.tokens[c.pos]
}

func (c *cursor) take() string {
	tok := c.tokens[c.pos]
	c.pos++
	return tok
}

// ValueLike reports whether the current token may be consumed as a
// value by the given declaration. The negative-number ambiguity is
// resolved here, against the consuming declaration's kind: a token
// like "-42" is a value for a numeric consumer and an option boundary
// for everything else.
func (c *cursor) valueLike(d *declaration) bool {
	if c.done() || c.pos == c.sep {
		return false
	}
	if c.pos > c.sep {
		return true
	}

	tok := c.tokens[c.pos]
	if !strings.HasPrefix(tok, "-") || tok == "-" {
		return true
	}
	return d.numeric() && numericToken(tok)
}

// A token is option-shaped if it could be a flag at all: a dash plus at
// least one more character. Whether it is treated as one depends on the
// consumer context, see cursor.valueLike.
func optionShaped(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-")
}

func numericToken(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// ParseArgs parses the process command line, see Parse.
func (p *Parser) ParseArgs() error {
	return p.Parse(os.Args)
}

// Parse resolves the given token sequence against the registered
// declarations. The first token is the program name and is skipped.
//
// It returns nil on success, ErrHelp when -h or --help appears anywhere
// before an end-of-flags "--" (in which case no further validation
// runs), and otherwise the error describing the first failure:
// UnknownArgumentError, MissingValueError, TypeMismatchError,
// InvalidChoiceError, or MissingRequiredError. On success the parsed
// values become available through Get, GetList, GetOr, and Has; on any
// failure the parser's queryable state is left untouched.
func (p *Parser) Parse(argv []string) error {
	var tokens []string
	if len(argv) > 1 {
		tokens = argv[1:]
	}

	c := &cursor{tokens: tokens, sep: len(tokens)}
	for i, tok := range tokens {
		if tok == endFlagsIndicator {
			c.sep = i
			break
		}
	}

	// Help wins over every other outcome, including errors that an
	// in-order scan would hit first.
	for _, tok := range tokens[:c.sep] {
		if tok == helpFlagShort || tok == helpFlagLong {
			return ErrHelp
		}
	}

	st := &parseState{
		store:     map[string]parsedValue{},
		satisfied: map[string]bool{},
	}

	posIdx := 0
	for !c.done() {
		if c.pos == c.sep {
			c.pos++
			continue
		}
		tok := c.peek()

		if c.pos < c.sep && optionShaped(tok) {
			if d, ok := p.byAlias[tok]; ok {
				c.pos++
				if err := p.consume(d, c, st); err != nil {
					return err
				}
				st.satisfied[d.key] = true
				continue
			}

			// Not a registered alias. A negative number may still
			// belong to the pending positional, if that one is numeric.
			wantsNumber := posIdx < len(p.positionals) &&
				p.positionals[posIdx].numeric()
			if !wantsNumber || !numericToken(tok) {
				return &UnknownArgumentError{Token: tok}
			}
		}

		if posIdx >= len(p.positionals) {
			return &UnknownArgumentError{Token: tok}
		}
		d := p.positionals[posIdx]
		posIdx++

		if err := p.consume(d, c, st); err != nil {
			return err
		}
		st.satisfied[d.key] = true
	}

	for _, d := range p.decls {
		if d.Required && !st.satisfied[d.key] {
			return &MissingRequiredError{Key: d.key}
		}
	}

	if err := p.fillAbsent(st); err != nil {
		return err
	}

	p.store = st.store
	return nil
}

// Consume applies one declaration's multiplicity rule at the cursor's
// current position, converting and storing every token it claims.
// A repeated occurrence overwrites the earlier value wholesale, for
// lists as well as scalars.
func (p *Parser) consume(d *declaration, c *cursor, st *parseState) error {
	switch d.nargs.kind {
	case nargsSingle:
		if d.flagLike() {
			st.store[d.key] = scalarValue(scalar{kind: Bool, b: true})
			return nil
		}
		if !c.valueLike(d) {
			return &MissingValueError{Key: d.key, Expected: "a value"}
		}
		sc, err := p.convert(d, c.take())
		if err != nil {
			return err
		}
		st.store[d.key] = scalarValue(sc)

	case nargsExactly:
		scs := make([]scalar, 0, d.nargs.count)
		for len(scs) < d.nargs.count {
			if !c.valueLike(d) {
				return &MissingValueError{
					Key:      d.key,
					Expected: fmt.Sprintf("%d values", d.nargs.count),
				}
			}
			sc, err := p.convert(d, c.take())
			if err != nil {
				return err
			}
			scs = append(scs, sc)
		}
		st.store[d.key] = listValue(d.Kind, scs)

	case nargsZeroOrMore, nargsOneOrMore:
		scs := []scalar{}
		for c.valueLike(d) {
			sc, err := p.convert(d, c.take())
			if err != nil {
				return err
			}
			scs = append(scs, sc)
		}
		if d.nargs.kind == nargsOneOrMore && len(scs) == 0 {
			return &MissingValueError{Key: d.key, Expected: "at least one value"}
		}
		st.store[d.key] = listValue(d.Kind, scs)

	case nargsZeroOrOne:
		scs := []scalar{}
		if c.valueLike(d) {
			sc, err := p.convert(d, c.take())
			if err != nil {
				return err
			}
			scs = append(scs, sc)
		}
		st.store[d.key] = listValue(d.Kind, scs)
	}

	return nil
}

// Convert coerces one raw token for the given declaration and validates
// it against the declaration's choice set. String choices compare the
// raw token; numeric choices compare the coerced value's canonical
// decimal form.
func (p *Parser) convert(d *declaration, raw string) (scalar, error) {
	sc, err := coerce(raw, d.Kind)
	if err != nil {
		return scalar{}, &TypeMismatchError{
			Key:   d.key,
			Value: raw,
			Want:  d.Kind.String(),
		}
	}

	if d.choiceSet != nil {
		probe := raw
		if d.Kind != Str {
			probe = canonicalForm(sc)
		}
		if _, ok := d.choiceSet[probe]; !ok {
			return scalar{}, &InvalidChoiceError{
				Key:     d.key,
				Value:   raw,
				Choices: d.Choices,
			}
		}
	}

	return sc, nil
}

// FillAbsent completes the store for declarations the command line did
// not touch: defaults are converted lazily and inserted now, keeping
// the declared scalar/list shape, and plain boolean flags materialize
// as false so that flag lookups are always answerable.
func (p *Parser) fillAbsent(st *parseState) error {
	for _, d := range p.decls {
		if st.satisfied[d.key] {
			continue
		}

		switch {
		case d.Default != "":
			sc, err := p.convert(d, d.Default)
			if err != nil {
				return err
			}
			if d.nargs.isList() {
				st.store[d.key] = listValue(d.Kind, []scalar{sc})
			} else {
				st.store[d.key] = scalarValue(sc)
			}

		case d.flagLike():
			st.store[d.key] = scalarValue(scalar{kind: Bool})
		}
	}

	return nil
}
