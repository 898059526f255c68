package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("a\nb\n\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLineReader_LeavesRestForPrompts(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("login\nalice\nexit\n"))
	sc := bufio.NewScanner(lineReader{in})

	if !sc.Scan() || sc.Text() != "login" {
		t.Fatalf("first line: %q", sc.Text())
	}
	name, err := GetSimpleText(in, "Enter username", &bytes.Buffer{})
	if err != nil || name != "alice" {
		t.Fatalf("prompt got %q, err=%v", name, err)
	}
	if !sc.Scan() || sc.Text() != "exit" {
		t.Fatalf("third line: %q", sc.Text())
	}
	if sc.Scan() {
		t.Fatalf("expected EOF, got %q", sc.Text())
	}
}

func TestGetSimpleText_PromptAndEmptyInput(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  bob \r\n")), "Username", &out)
	if err != nil || got != "bob" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Username: " {
		t.Fatalf("prompt %q", out.String())
	}

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Username", &out)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

func TestGetMultiline_Terminators(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"dot line", "first\n  indented\n.\nignored\n", "first\n  indented"},
		{"eof", "only line", "only line"},
		{"nothing", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetMultiline(bufio.NewReader(strings.NewReader(tt.in)), "Text", &bytes.Buffer{})
			if err != nil || got != tt.want {
				t.Fatalf("got %q, err=%v, want %q", got, err, tt.want)
			}
		})
	}
}
