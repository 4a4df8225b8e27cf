package internal

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

type scriptedConn struct {
	in  *strings.Reader
	out strings.Builder
}

func newScriptedConn(lines ...string) *scriptedConn {
	return &scriptedConn{in: strings.NewReader(strings.Join(lines, "\n") + "\n")}
}

func (c *scriptedConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *scriptedConn) Write(p []byte) (int, error) { return c.out.Write(p) }

func TestPrompterReadLine(t *testing.T) {
	conn := newScriptedConn("hello", "  spaced  ", "carriage\r")
	p := NewPrompter(conn)

	for i, exp := range []string{"hello", "spaced", "carriage"} {
		got, err := p.ReadLine()
		if err != nil {
			t.Fatalf("line %d: unexpected error: %v", i, err)
		}
		testutil.AssertEqual(t, "line", got, exp)
	}

	_, err := p.ReadLine()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after input runs out, got %v", err)
	}
}

func TestPrompterPrompt(t *testing.T) {
	conn := newScriptedConn("Aria")
	p := NewPrompter(conn)

	got, err := p.Prompt("Name? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "input", got, "Aria")
	testutil.AssertEqual(t, "prompt written", strings.Contains(conn.out.String(), "Name? "), true)
}

func TestPrompterPrompt_Validator(t *testing.T) {
	conn := newScriptedConn("bad", "good")
	p := NewPrompter(conn)

	got, err := p.Prompt("? ", WithValidator(func(str string) (bool, string) {
		if str != "good" {
			return false, "try again\n"
		}
		return true, ""
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "input", got, "good")
	testutil.AssertEqual(t, "retry message", strings.Contains(conn.out.String(), "try again"), true)
}

func TestPrompterPrompt_MaxTries(t *testing.T) {
	conn := newScriptedConn("a", "b", "c")
	p := NewPrompter(conn)

	_, err := p.Prompt("? ",
		WithMaxTries(2),
		WithValidator(func(string) (bool, string) { return false, "no\n" }),
	)
	if err == nil {
		t.Fatal("expected error after reaching try limit")
	}

	testutil.AssertEqual(t, "limit message", strings.Contains(conn.out.String(), "Too many tries."), true)
}

func TestPrompterPromptYN(t *testing.T) {
	tests := map[string]struct {
		lines []string
		exp   bool
	}{
		"yes":            {lines: []string{"y"}, exp: true},
		"yes word":       {lines: []string{"YES"}, exp: true},
		"no":             {lines: []string{"no"}, exp: false},
		"retry then yes": {lines: []string{"maybe", "yes"}, exp: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPrompter(newScriptedConn(tt.lines...))

			got, err := p.PromptYN("Sure? ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "answer", got, tt.exp)
		})
	}
}

func TestPrompterConsecutivePromptsShareBuffer(t *testing.T) {
	conn := newScriptedConn("one", "two")
	p := NewPrompter(conn)

	first, err := p.Prompt("? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Prompt("? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "first", first, "one")
	testutil.AssertEqual(t, "second", second, "two")
}
