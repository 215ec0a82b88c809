// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.yaml.in/yaml/v4"
)

// ComponentCase is a golden parse: the components of Path, rendered with
// Component.String, and its normalized form.
type ComponentCase struct {
	Grammar    string   `yaml:"grammar"`
	Path       string   `yaml:"path"`
	Components []string `yaml:"components"`
	Normalized string   `yaml:"normalized"`
}

// PushCase is a golden push of Incoming onto Base.
type PushCase struct {
	Grammar  string `yaml:"grammar"`
	Base     string `yaml:"base"`
	Incoming string `yaml:"incoming"`
	Want     string `yaml:"want"`
}

// Corpus is the golden corpus stored in testdata/corpus.yaml.
type Corpus struct {
	Components []ComponentCase `yaml:"components"`
	Push       []PushCase      `yaml:"push"`
}

// CorpusPath returns the absolute path of testdata/corpus.yaml at the
// module root.
func CorpusPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", "corpus.yaml")
}

// LoadCorpus reads and decodes the golden corpus, failing the test on error.
func LoadCorpus(t testing.TB) *Corpus {
	t.Helper()

	data, err := os.ReadFile(CorpusPath())
	if err != nil {
		t.Fatalf("Failed to read corpus: %v", err)
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		t.Fatalf("Failed to decode corpus: %v", err)
	}
	return &c
}

// ForGrammar returns the component cases for the named grammar.
func (c *Corpus) ForGrammar(name string) []ComponentCase {
	var out []ComponentCase
	for _, cc := range c.Components {
		if cc.Grammar == name {
			out = append(out, cc)
		}
	}
	return out
}

// WriteTempYAML marshals a value to YAML and writes it to a temporary file
// named name. Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t testing.TB, name string, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a value to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t testing.TB, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
