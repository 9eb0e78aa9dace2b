package argparse

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Slot returns the display label for a declaration's value position:
// the metavar if one was declared, the choice set if one was declared,
// and the upper-cased canonical key otherwise. The multiplicity rule
// decides how the label is repeated or bracketed.
func (d *declaration) slot() string {
	label := d.Metavar
	if label == "" && len(d.Choices) > 0 {
		label = "{" + strings.Join(d.Choices, ",") + "}"
	}
	if label == "" {
		label = strings.ToUpper(d.key)
	}

	switch d.nargs.kind {
	case nargsExactly:
		parts := make([]string, d.nargs.count)
		for i := range parts {
			parts[i] = label
		}
		return strings.Join(parts, " ")
	case nargsZeroOrMore:
		return "[" + label + " ...]"
	case nargsOneOrMore:
		return label + " [" + label + " ...]"
	case nargsZeroOrOne:
		return "[" + label + "]"
	default:
		return label
	}
}

// PrintShortUsage writes a one-line synopsis of the registered
// declarations to standard error.
func (p *Parser) PrintShortUsage() {
	p.WriteShortUsage(os.Stderr)
}

// WriteShortUsage writes a one-line synopsis of the registered
// declarations to w: options first, in registration order, with all
// aliases joined, then positionals.
func (p *Parser) WriteShortUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s", p.name)

	for _, d := range p.decls {
		if d.positional {
			continue
		}

		fmt.Fprintf(w, " [%s", strings.Join(d.Aliases, "|"))
		if !d.flagLike() {
			fmt.Fprintf(w, " %s", d.slot())
		}
		fmt.Fprintf(w, "]")
	}

	for _, d := range p.positionals {
		if d.Required {
			fmt.Fprintf(w, " %s", d.slot())
		} else {
			fmt.Fprintf(w, " [%s]", d.slot())
		}
	}

	fmt.Fprintf(w, "\n")
}

// PrintUsage writes a detailed description of the registered
// declarations, including their help texts, to standard error.
func (p *Parser) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage writes a detailed description of the registered
// declarations to w, one entry per declaration in registration order,
// with the declaration's help text on the following line. Defaults are
// shown fused to the value label.
func (p *Parser) WriteUsage(w io.Writer) {
	p.WriteShortUsage(w)
	fmt.Fprintf(w, "\narguments:\n")

	for _, d := range p.decls {
		fmt.Fprintf(w, "    ")

		if d.positional {
			fmt.Fprintf(w, "%s", d.slot())
		} else {
			for _, a := range d.Aliases {
				fmt.Fprintf(w, "%s ", a)
			}
			if !d.flagLike() {
				defval := ""
				if d.Default != "" {
					defval = "=" + d.Default
				}
				if d.nargs.isList() {
					// List slots carry their own brackets.
					fmt.Fprintf(w, "%s%s", d.slot(), defval)
				} else {
					fmt.Fprintf(w, "[%s%s]", d.slot(), defval)
				}
			}
		}

		if d.Required {
			fmt.Fprintf(w, " (required)")
		}

		if d.Help != "" {
			fmt.Fprintf(w, "\n       %s", d.Help)
		}
		fmt.Fprintf(w, "\n")
	}
}
