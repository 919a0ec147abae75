package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileHeader opens every generated config file.
const fileHeader = "# pcmon configuration\n# Durations use Go syntax: 500ms, 2s, 1m.\n"

// document is the on-disk shape of Config. Durations are written as strings
// so the file stays readable.
type document struct {
	Version          int           `yaml:"version"`
	Origin           string        `yaml:"origin"`
	ReconnectDelay   string        `yaml:"reconnect_delay"`
	HandshakeTimeout string        `yaml:"handshake_timeout"`
	Processes        ProcessConfig `yaml:"processes"`
	Log              LogConfig     `yaml:"log"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	doc := document{
		Version:          cfg.Version,
		Origin:           cfg.Origin,
		ReconnectDelay:   cfg.ReconnectDelay.String(),
		HandshakeTimeout: cfg.HandshakeTimeout.String(),
		Processes:        cfg.Processes,
		Log:              cfg.Log,
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(buf.String()), nil
}

// Write saves cfg to path, creating parent directories.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// UpdateOrigin rewrites the origin key of an existing config file in place,
// keeping the rest of the document and its comments. The key is appended
// when missing.
func UpdateOrigin(path, origin string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	if node := findMapValue(doc, "origin"); node != nil {
		node.Kind = yaml.ScalarNode
		node.Tag = "!!str"
		node.Value = origin
	} else {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "origin"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: origin},
		)
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
