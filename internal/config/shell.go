package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ShellFields splits line into arguments using POSIX shell word rules.
// Variable references resolve against vars, then the environment; an
// unset variable is an error. With glob set, patterns such as *.c are
// matched against the file system, and patterns matching nothing are kept
// as written.
func ShellFields(line string, vars map[string]string, glob bool) ([]string, error) {
	var words []*syntax.Word
	err := syntax.NewParser().Words(strings.NewReader(line), func(w *syntax.Word) bool {
		words = append(words, w)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return nil, errors.New("empty command")
	}

	cfg := &expand.Config{
		Env:     environ(vars),
		NoUnset: true,
	}
	if glob {
		cfg.ReadDir2 = os.ReadDir
	}

	fields, err := expand.Fields(cfg, words...)
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", line, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("expand %q: no program left after expansion", line)
	}
	return fields, nil
}

// environ layers vars over the process environment. ListEnviron keeps the
// last value for a repeated name. PWD is reset to the working directory
// because relative globs resolve against it, and an inherited value may be
// stale.
func environ(vars map[string]string) expand.Environ {
	env := os.Environ()
	if wd, err := os.Getwd(); err == nil {
		env = append(env, "PWD="+wd)
	}
	for name, value := range vars {
		env = append(env, name+"="+value)
	}
	return expand.ListEnviron(env...)
}

// Quote renders args as a bash command line that reproduces them exactly
// when pasted into a shell.
func Quote(args []string) (string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("quote argument %d: %w", i, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
