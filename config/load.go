package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML overlay from path on top of Default
// Fields absent from the file keep their default values
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML overlay on top of Default and sanitizes the result
// Unknown keys are rejected so typos surface instead of silently keeping defaults
func Parse(data []byte) (*Tuning, error) {
	t := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	t.Sanitize()
	return t, nil
}

// Marshal renders the tuning as YAML, used to print the effective configuration
func (t *Tuning) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return out, nil
}

// Resolve builds the tuning a command runs with: the YAML at path (or Default
// when empty), then a non-zero seed and a non-empty fire mode on top
func Resolve(path string, seed uint64, fireMode string) (*Tuning, error) {
	t := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		t = loaded
	}
	if seed != 0 {
		t.Seed = seed
	}
	if fireMode != "" {
		m, err := ParseFireMode(fireMode)
		if err != nil {
			return nil, err
		}
		t.Weapon.FireMode = m
	}
	return t, nil
}
