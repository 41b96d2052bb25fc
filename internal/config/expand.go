package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ExpandArgs substitutes ${NAME} and $NAME references in args. Names are
// looked up in vars, then in the environment. $$ yields a literal $.
// Every unresolved name is reported in the error.
func ExpandArgs(args []string, vars map[string]string) ([]string, error) {
	missing := map[string]bool{}
	lookup := func(name string) string {
		if name == "$" {
			return "$"
		}
		if v, ok := vars[name]; ok {
			return v
		}
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		missing[name] = true
		return ""
	}

	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = os.Expand(arg, lookup)
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("undefined variable(s): %s", strings.Join(names, ", "))
	}
	return out, nil
}
