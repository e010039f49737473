package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// TestValidate_WithName tests that a named header passes
func TestValidate_WithName(t *testing.T) {
	record := Record{{Key: "name", Value: "Akismet"}}

	if err := Validate(record, "akismet.php"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

// TestValidate_EmptyName tests rejection of headers without a name
func TestValidate_EmptyName(t *testing.T) {
	record := Record{{Key: "name", Value: ""}, {Key: "version", Value: "1.0"}}

	err := Validate(record, "index.php")
	if err == nil {
		t.Fatal("Expected error for empty name")
	}

	if !errors.Is(err, wppkg.ErrInvalidTypeHeader) {
		t.Errorf("Expected ErrInvalidTypeHeader, got: %v", err)
	}

	var headerErr *HeaderError
	if !errors.As(err, &headerErr) {
		t.Fatalf("Expected HeaderError, got: %T", err)
	}
	if headerErr.File != "index.php" {
		t.Errorf("Expected file 'index.php', got '%s'", headerErr.File)
	}
	if headerErr.Field != "name" {
		t.Errorf("Expected field 'name', got '%s'", headerErr.Field)
	}
	if !strings.Contains(err.Error(), "Hint:") {
		t.Error("Expected hint in error message")
	}
}

// TestValidate_MissingNameField tests a record that lacks the name field entirely
func TestValidate_MissingNameField(t *testing.T) {
	if err := Validate(Record{}, ""); !errors.Is(err, wppkg.ErrInvalidTypeHeader) {
		t.Errorf("Expected ErrInvalidTypeHeader, got: %v", err)
	}
}

func TestHeaderError_Format(t *testing.T) {
	err := &HeaderError{Message: "bad"}
	if got := err.Error(); got != "header error in <input>: bad" {
		t.Errorf("Unexpected message: %q", got)
	}
}
