package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xdg/nom/internal/buffer"
	"github.com/xdg/nom/internal/process"
)

// EditorRunner runs an editor command to completion.
type EditorRunner interface {
	Run(args *buffer.Args) process.Outcome
}

// Editor resolves the editor command: $VISUAL, then $EDITOR, then the
// user config's editor setting, then vi.
func Editor(cfg *UserConfig) string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	if cfg != nil && cfg.Editor != "" {
		return cfg.Editor
	}
	return "vi"
}

// EditUserConfig opens the user config in an editor, creating it from
// the default template first when missing. After the editor exits the
// file is re-parsed and validated so mistakes are reported immediately.
func EditUserConfig(r EditorRunner) error {
	path, err := WriteDefaultUserConfig()
	if err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	cfg, err := LoadUserConfig()
	if err != nil {
		// Still let the user fix a broken file.
		cfg = DefaultUserConfig()
	}

	// The editor setting may carry flags, e.g. "code --wait".
	args := buffer.NewArgs(strings.Fields(Editor(cfg))...).Append(path)
	defer args.Release()

	if out := r.Run(args); !out.OK() {
		return fmt.Errorf("edit %s: %s", path, out)
	}

	if _, err := LoadUserConfig(); err != nil {
		return fmt.Errorf("config saved with errors: %w", err)
	}
	return nil
}
