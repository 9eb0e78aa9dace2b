/*
Package argparse implements a declarative command-line argument parser.
Callers register named and positional argument declarations with a
type, multiplicity rule, default, required flag, and choice set, then
hand the parser a token sequence to resolve into a typed value store.

# Declaring Arguments

Each declaration is described by an Argument value and registered with
AddArgument. Dash-prefixed aliases declare an option, bare aliases a
positional:

	p := argparse.NewParser("example")
	p.AddArgument(argparse.Argument{
	    Aliases: []string{"input"}, Help: "Input file",
	    Kind: argparse.Str, Required: true,
	})
	p.AddArgument(argparse.Argument{
	    Aliases: []string{"-v", "--verbose"}, Help: "Enable verbose output",
	    Kind: argparse.Bool,
	})
	p.AddArgument(argparse.Argument{
	    Aliases: []string{"--count"}, Help: "Number of items",
	    Kind: argparse.Int, Default: "10",
	})

A declaration may carry several aliases. Its canonical key, used for
all later lookups, derives from the longest alias with leading dashes
stripped and internal dashes mapped to underscores, so the declaration
{"-o", "--output", "--out"} is retrieved under "output" no matter which
alias was supplied on the command line.

Malformed declarations, including an unrecognized Nargs string, are
rejected by AddArgument itself; a declaration whose alias or canonical
key is already claimed is rejected with a DuplicateAliasError. Every
parser reserves -h and --help under the key "help".

# Multiplicity

The Nargs field controls how many value tokens one occurrence of an
argument consumes:

	""    one token; zero for a plain boolean flag, true iff present
	"?"   zero or one token
	"*"   zero or more tokens
	"+"   one or more tokens, at least one required
	"3"   exactly three tokens (any positive count)

Every explicit rule yields a list-shaped value, even when it consumed
zero or one token, so retrieval does not depend on how many tokens
were actually present. Greedy rules stop at the next option-like
token. A token such as "-42" counts as a value, not an option, while
a declaration of numeric kind is consuming; the ambiguity is decided
by the consumer, never by the token's shape alone.

The token "--" ends option processing; everything after it is treated
as a positional value.

# Parsing and Retrieval

Parse takes the full argv-style slice, program name first, and
reports one of three outcomes: nil, ErrHelp when -h or --help was
seen, or an error describing the first failure. Values are retrieved
by canonical key through type-parameterized accessors that fail
loudly on a tag or shape mismatch:

	if err := p.Parse(os.Args); err != nil {
	    if errors.Is(err, argparse.ErrHelp) {
	        p.PrintUsage()
	        return
	    }
	    log.Fatal(err)
	}

	input, _ := argparse.Get[string](p, "input")
	count := argparse.GetOr[int64](p, "count", 1)

A re-supplied option overwrites its earlier value, lists wholesale.
After a successful parse, defaults have been converted and stored for
every absent declaration that carries one, and plain boolean flags
are stored as false when absent. An optional declaration without a
default that never appeared stays absent: Has reports false, Get
fails, GetOr falls back.

A Parser instance is not safe for concurrent use, and registration
must be finished before the first Parse call. Distinct instances are
fully independent; the package keeps no global state.
*/
package argparse
