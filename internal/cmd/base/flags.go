package base

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps a flag.FlagSet to render flag help in command usage text.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the flags formatted for inclusion in a command's Help().
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if name, _ := flag.UnquoteUsage(fl); name != "" {
			fmt.Fprintf(&b, "=<%s>", name)
		}
		// -1 marks an unset optional int flag.
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "-1" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		_, usage := flag.UnquoteUsage(fl)
		fmt.Fprintf(&b, "\n    %s\n", usage)
	})

	return strings.TrimRight(b.String(), "\n")
}
