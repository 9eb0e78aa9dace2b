package argparse

import (
	"sort"
	"strconv"
)

// Kind identifies the declared data type of an argument. Raw command
// line tokens are converted to this type during parsing.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	Str
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "string"
	default:
		return "invalid"
	}
}

// A scalar is one converted token, tagged with its kind. Only the field
// matching the kind is meaningful.
type scalar struct {
	kind Kind

	b bool
	i int64
	f float64
	s string
}

// As returns the scalar's payload as an untyped value, suitable for a
// checked assertion once the tag has been compared.
func (sc scalar) as() any {
	switch sc.kind {
	case Bool:
		return sc.b
	case Int:
		return sc.i
	case Float:
		return sc.f
	default:
		return sc.s
	}
}

// A parsedValue is the tagged union stored per canonical key: either a
// single scalar or an ordered list of scalars of one kind. The shape
// follows the declaration's multiplicity rule, not the number of tokens
// actually seen, so retrieval stays shape-stable.
type parsedValue struct {
	kind   Kind
	isList bool

	one  scalar
	many []scalar
}

func scalarValue(sc scalar) parsedValue {
	return parsedValue{kind: sc.kind, one: sc}
}

func listValue(kind Kind, scs []scalar) parsedValue {
	return parsedValue{kind: kind, isList: true, many: scs}
}

func (pv parsedValue) shape() string {
	if pv.isList {
		return pv.kind.String() + " list"
	}
	return pv.kind.String()
}

// Coerce converts one raw token to the given kind. Integer and float
// conversion follow the usual literal rules, including a leading sign;
// empty input or leftover characters are an error. Booleans accept the
// strconv.ParseBool literals (used for token-consuming boolean
// declarations; a plain boolean flag never reaches this function).
func coerce(raw string, kind Kind) (scalar, error) {
	sc := scalar{kind: kind}

	switch kind {
	case Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return scalar{}, err
		}
		sc.b = b

	case Int:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return scalar{}, err
		}
		sc.i = i

	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return scalar{}, err
		}
		sc.f = f

	default:
		sc.s = raw
	}

	return sc, nil
}

// CanonicalForm renders a converted scalar in the decimal form used for
// choice-set comparison, so that "02" satisfies an integer choice "2".
func canonicalForm(sc scalar) string {
	switch sc.kind {
	case Bool:
		return strconv.FormatBool(sc.b)
	case Int:
		return strconv.FormatInt(sc.i, 10)
	case Float:
		return strconv.FormatFloat(sc.f, 'g', -1, 64)
	default:
		return sc.s
	}
}

// Scalar constrains the typed accessors to the four kinds a declaration
// can carry: Bool, Int, Float, and Str map to bool, int64, float64, and
// string respectively.
type Scalar interface {
	bool | int64 | float64 | string
}

func kindFor[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int64:
		return Int
	case float64:
		return Float
	default:
		return Str
	}
}

// Get returns the scalar stored under the given canonical key. It fails
// with a TypeMismatchError if the stored value is a list or holds a
// different kind than T, and with a MissingKeyError if nothing is
// stored under the key.
func Get[T Scalar](p *Parser, key string) (T, error) {
	var zero T

	pv, ok := p.store[key]
	if !ok {
		return zero, &MissingKeyError{Key: key}
	}

	want := kindFor[T]()
	if pv.isList || pv.kind != want {
		return zero, &TypeMismatchError{
			Key:  key,
			Want: want.String(),
			Got:  pv.shape(),
		}
	}

	return pv.one.as().(T), nil
}

// GetList returns the list stored under the given canonical key, in the
// order the tokens appeared on the command line. It fails with a
// TypeMismatchError if the stored value is a scalar or holds a
// different kind than T, and with a MissingKeyError if nothing is
// stored under the key.
func GetList[T Scalar](p *Parser, key string) ([]T, error) {
	pv, ok := p.store[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}

	want := kindFor[T]()
	if !pv.isList || pv.kind != want {
		return nil, &TypeMismatchError{
			Key:  key,
			Want: want.String() + " list",
			Got:  pv.shape(),
		}
	}

	out := make([]T, 0, len(pv.many))
	for _, sc := range pv.many {
		out = append(out, sc.as().(T))
	}

	return out, nil
}

// GetOr returns the scalar stored under the given canonical key, or the
// fallback if the key is absent or the stored value does not match T.
// It never fails; callers needing defensive access should prefer it
// over Get.
func GetOr[T Scalar](p *Parser, key string, fallback T) T {
	v, err := Get[T](p, key)
	if err != nil {
		return fallback
	}
	return v
}

// Has reports whether a value is stored under the given canonical key.
// Before the first successful Parse it is false for every key.
func (p *Parser) Has(key string) bool {
	_, ok := p.store[key]
	return ok
}

// Keys returns the canonical keys of all registered declarations,
// sorted, including the reserved help argument. Registration order does
// not matter for lookup, so a stable order is preferred for callers
// that iterate.
func (p *Parser) Keys() []string {
	keys := make([]string, 0, len(p.decls))
	for _, d := range p.decls {
		keys = append(keys, d.key)
	}
	sort.Strings(keys)
	return keys
}
