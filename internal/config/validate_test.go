package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateAcceptsKnownKeys(t *testing.T) {
	data := []byte(`
defaults:
  author: blockguard
  license: Apache-2.0
requirements:
  file: requirements.txt
logging:
  file: logs.log
`)

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !result.Valid {
		t.Errorf("Validate() invalid, issues: %+v", result.Issues)
	}
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	data := []byte(`
defaults:
  autor: typo
`)

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Fatal("Validate() valid, want issue for unknown key")
	}
	if len(result.Issues) == 0 {
		t.Error("no issues reported")
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	data := []byte(`
requirements:
  file: 42
`)

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Fatal("Validate() valid, want type issue")
	}
}

func TestValidateEmptyConfig(t *testing.T) {
	result, err := Validate(nil)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !result.Valid {
		t.Error("empty config should be valid")
	}
}

func TestValidateFileMissingIsValid(t *testing.T) {
	result, err := ValidateFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}
	if !result.Valid {
		t.Error("missing config file should validate as empty")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  author: a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}
	if !result.Valid {
		t.Errorf("ValidateFile() invalid, issues: %+v", result.Issues)
	}
}
