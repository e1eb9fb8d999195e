package clang

import (
	"strings"
	"testing"
	"unsafe"
)

func TestCString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"path", "/usr/include/stdio.h"},
		{"flag", "-std=c11"},
		{"unicode", "héllo wörld"},
		{"long", strings.Repeat("a", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ptr := cString(tt.input)
			if len(b) != len(tt.input)+1 {
				t.Fatalf("expected %d bytes, got %d", len(tt.input)+1, len(b))
			}
			if b[len(b)-1] != 0 {
				t.Fatal("missing terminator")
			}
			if got := goString(ptr); got != tt.input {
				t.Errorf("round trip: expected %q, got %q", tt.input, got)
			}
		})
	}
}

func TestGoStringNull(t *testing.T) {
	if got := goString(0); got != "" {
		t.Errorf("expected empty string for null pointer, got %q", got)
	}
}

func TestCStringArray(t *testing.T) {
	ptr, keep := cStringArray([]string{"-x", "c++", "-std=c++17"})
	defer keep()
	if ptr == 0 {
		t.Fatal("expected non-null array")
	}

	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(ptr)), 3)
	want := []string{"-x", "c++", "-std=c++17"}
	for i, p := range ptrs {
		if got := goString(p); got != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], got)
		}
	}

	empty, keepEmpty := cStringArray(nil)
	defer keepEmpty()
	if empty != 0 {
		t.Error("expected null array for no arguments")
	}
}
