package mcp

import (
	"strings"
	"testing"
)

func TestMarshalIndent_PreservesNonASCIIAndSkipsHTMLEscape(t *testing.T) {
	s, err := MarshalIndent(map[string]string{
		"area":    "Cocina área",
		"periodo": "Quincena 1 - Marzo 2025",
		"query":   "a < b & c",
	})
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	if !strings.Contains(s, "Cocina área") {
		t.Fatalf("non-ASCII escaped: %q", s)
	}
	if !strings.Contains(s, "a < b & c") {
		t.Fatalf("html escaping still on: %q", s)
	}
	if strings.HasSuffix(s, "\n") {
		t.Fatalf("trailing newline not trimmed: %q", s)
	}
}

func TestTextResult_WrapsAsSingleTextItem(t *testing.T) {
	res, err := TextResult(map[string]int{"total_registros": 0})
	if err != nil {
		t.Fatalf("TextResult: %v", err)
	}
	if len(res.Content) != 1 || res.Content[0].Type != "text" {
		t.Fatalf("content mismatch: %+v", res)
	}
	if !strings.Contains(res.Content[0].Text, `"total_registros": 0`) {
		t.Fatalf("text mismatch: %q", res.Content[0].Text)
	}
}
