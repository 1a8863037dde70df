package net

import (
	"context"
	"testing"
)

func TestWithRequestAndGetters(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-1", "sess-9")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := SessionID(ctx); got != "sess-9" {
		t.Fatalf("SessionID = %q", got)
	}
}

func TestEmptyValuesAreNotStored(t *testing.T) {
	ctx := WithRequest(context.Background(), "", "")
	if got := RequestID(ctx); got != "" {
		t.Fatalf("RequestID should be empty, got %q", got)
	}
	if got := SessionID(ctx); got != "" {
		t.Fatalf("SessionID should be empty, got %q", got)
	}
}
