package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "hello\n", "hello"},
		{"trims spaces", "  hello  \n", "hello"},
		{"eof after partial line", "partial", "partial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := bufio.NewReader(strings.NewReader(tt.input))

			got, err := GetSimpleText(r, "Prompt", &out)
			if err != nil {
				t.Fatalf("GetSimpleText() error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("GetSimpleText() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Prompt") {
				t.Fatalf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(r, "Prompt", &out); err == nil {
		t.Fatal("expected error on empty EOF input")
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword() error: %v", err)
	}
	if string(pw) != "s3cret" {
		t.Fatalf("GetPassword() = %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\n"))

	got, err := GetMultiline(r, "Body", &out)
	if err != nil {
		t.Fatalf("GetMultiline() error: %v", err)
	}
	want := "line one\nline two"
	if got != want {
		t.Fatalf("GetMultiline() = %q, want %q", got, want)
	}
}
