package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidEngine, "invalid layout engine: %s", "sfdp")

	if err.Code != ErrCodeInvalidEngine {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidEngine)
	}
	if err.Message != "invalid layout engine: sfdp" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_ENGINE: invalid layout engine: sfdp"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := Wrap(ErrCodeMalformedGraph, cause, "parse %s", "graph/graph.graphml")

	if err.Cause != cause {
		t.Error("Cause not preserved")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find wrapped cause")
	}
	want := "MALFORMED_GRAPH: parse graph/graph.graphml: unexpected EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFileNotFound, "no such file: graph.dot")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeRendererNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain error"), ErrCodeFileNotFound) {
		t.Error("Is should not match non-structured errors")
	}

	// Code matching should survive fmt wrapping.
	wrapped := fmt.Errorf("layout: %w", err)
	if !Is(wrapped, ErrCodeFileNotFound) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRenderFailed, "circo exited 1")); got != ErrCodeRenderFailed {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeRenderFailed)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidPreset, "unknown preset: full")
	if got := UserMessage(err); got != "unknown preset: full" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("raw")); got != "raw" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
