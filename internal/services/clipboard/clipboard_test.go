package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopyWrapsWriteErrors(t *testing.T) {
	var captured string
	service := &Service{writeAll: func(text string) error {
		captured = text
		return nil
	}}
	if err := service.Copy("tree"); err != nil {
		t.Fatalf("Copy error: %v", err)
	}
	if captured != "tree" {
		t.Fatalf("expected text to reach the clipboard, got %q", captured)
	}

	failure := errors.New("no clipboard utility")
	failing := &Service{writeAll: func(string) error { return failure }}
	if err := failing.Copy("tree"); !errors.Is(err, failure) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
}
