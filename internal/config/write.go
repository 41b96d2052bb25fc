package config

import (
	"errors"
	"fmt"
	"os"
)

// WriteDefaultUserConfig writes the commented default user configuration
// to UserConfigPath. An existing file is left untouched and reported
// through os.ErrExist.
func WriteDefaultUserConfig() (string, error) {
	if err := EnsureDir(); err != nil {
		return "", err
	}

	path := UserConfigPath()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, fmt.Errorf("write user config: %w", err)
		}
		return "", fmt.Errorf("write user config: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(defaultConfigTemplate); err != nil {
		return "", fmt.Errorf("write user config: %w", err)
	}
	return path, nil
}

// WriteUserConfig marshals cfg and writes it to UserConfigPath,
// replacing any existing file.
func WriteUserConfig(cfg *UserConfig) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	data, err := MarshalUserConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(UserConfigPath(), data, 0o600); err != nil {
		return fmt.Errorf("write user config: %w", err)
	}
	return nil
}
