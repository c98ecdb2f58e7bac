package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Filename is the manifest written next to the emitted configuration files.
const Filename = "notesite-manifest.json"

// BuildManifest records the inputs and outputs of one emission.
type BuildManifest struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Generator string    `json:"generator"`
	Inputs    Inputs    `json:"inputs"`
	Outputs   Outputs   `json:"outputs"`
	Status    string    `json:"status"`
	Duration  int64     `json:"duration_ms"`
}

// Inputs captures what the emitted files were generated from.
type Inputs struct {
	ConfigHash  string   `json:"config_hash"`
	Collections []string `json:"collections"`
	Locales     []string `json:"locales"`
}

// Outputs captures the emitted files.
type Outputs struct {
	Files []File `json:"files"`
}

// File is one emitted framework configuration file.
type File struct {
	Target string `json:"target"`
	Path   string `json:"path"` // relative to the output directory
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`
}

// Paths lists the relative paths of all emitted files.
func (o Outputs) Paths() []string {
	out := make([]string, len(o.Files))
	for i, f := range o.Files {
		out[i] = f.Path
	}
	return out
}

// ToJSON serializes the manifest to JSON.
func (m *BuildManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*BuildManifest, error) {
	var m BuildManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// ReadFile loads a manifest written by a previous emission.
func ReadFile(path string) (*BuildManifest, error) {
	// #nosec G304 -- path is the manifest inside the configured output directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

// Hash computes a deterministic hash of the manifest's inputs and outputs.
// Two emissions with the same hash produced byte-identical files.
func (m *BuildManifest) Hash() (string, error) {
	hashInput := struct {
		Inputs  Inputs  `json:"inputs"`
		Outputs Outputs `json:"outputs"`
	}{
		Inputs:  m.Inputs,
		Outputs: m.Outputs,
	}

	data, err := json.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}
