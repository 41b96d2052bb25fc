package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseBuildFile parses YAML data into a BuildFile.
// It returns an error if the YAML is malformed, contains unknown fields,
// or has type mismatches. Empty input returns a zero-value BuildFile.
func ParseBuildFile(data []byte) (*BuildFile, error) {
	var bf BuildFile
	if err := strictUnmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse build file: %w", err)
	}
	return &bf, nil
}

// ParseBuildFileTOML parses TOML data into a BuildFile, with the same
// strictness as ParseBuildFile.
func ParseBuildFileTOML(data []byte) (*BuildFile, error) {
	var bf BuildFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&bf); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("parse build file: unknown field(s):\n%s", missing.String())
		}
		return nil, fmt.Errorf("parse build file: %w", err)
	}
	return &bf, nil
}

// parseBuildFileFor picks the parser from path's extension. Anything other
// than .toml is read as YAML.
func parseBuildFileFor(path string, data []byte) (*BuildFile, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseBuildFileTOML(data)
	}
	return ParseBuildFile(data)
}

// ParseUserConfig parses YAML data into a UserConfig.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	var cfg UserConfig
	if err := strictUnmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse user config: %w", err)
	}
	return &cfg, nil
}

// strictUnmarshal unmarshals YAML data into v, rejecting unknown fields.
// Empty input is treated as valid, leaving v at its zero value.
func strictUnmarshal(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode YAML: %w", err)
	}
	return nil
}

// MarshalUserConfig marshals a UserConfig to YAML.
func MarshalUserConfig(cfg *UserConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal user config: %w", err)
	}
	return data, nil
}
