package lineedit

import (
	"os"
	"testing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	t.Cleanup(func() { null.Close() })
	s := &Session{
		outFd:  int(null.Fd()),
		errFd:  int(null.Fd()),
		prompt: "> ",
		plen:   2,
		cols:   80,
		hist:   newHistory(),
	}
	return s
}

func Test_InsertAppend(t *testing.T) {
	s := newTestSession(t)
	for _, c := range []byte("hi") {
		s.insert(c)
	}
	if s.String() != "hi" {
		t.Fatalf("expected %q, got %q", "hi", s.String())
	}
	if s.pos != 2 {
		t.Fatalf("expected pos 2, got %d", s.pos)
	}
}

func Test_InsertMiddle(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("ac")
	s.pos = 1
	s.insert('b')
	if s.String() != "abc" {
		t.Fatalf("expected %q, got %q", "abc", s.String())
	}
	if s.pos != 2 {
		t.Fatalf("expected pos 2, got %d", s.pos)
	}
}

func Test_Backspace(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("abc")
	s.backspace()
	if s.String() != "ab" || s.pos != 2 {
		t.Fatalf("unexpected state %q pos=%d", s.String(), s.pos)
	}
}

func Test_DeleteForward(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("abc")
	s.pos = 0
	s.deleteForward()
	if s.String() != "bc" || s.pos != 0 {
		t.Fatalf("unexpected state %q pos=%d", s.String(), s.pos)
	}
}

func Test_KillToEnd(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("abcdef")
	s.pos = 3
	s.killToEnd()
	if s.String() != "abc" {
		t.Fatalf("expected %q, got %q", "abc", s.String())
	}
}

func Test_KillLine(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("abcdef")
	s.pos = 3
	s.killLine()
	if s.String() != "" || s.pos != 0 {
		t.Fatalf("unexpected state %q pos=%d", s.String(), s.pos)
	}
}

func Test_KillPrevWord(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc", ""},
		{"a b c", "a b "},
	}
	for _, tc := range tests {
		s := newTestSession(t)
		s.setBuffer(tc.in)
		s.killPrevWord()
		if s.String() != tc.want {
			t.Errorf("killPrevWord(%q) = %q, want %q", tc.in, s.String(), tc.want)
		}
	}
}

func Test_Transpose(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("ab")
	s.pos = 1
	s.transpose()
	if s.String() != "ba" {
		t.Fatalf("expected %q, got %q", "ba", s.String())
	}
	if s.pos != 1 {
		t.Fatalf("expected pos 1 (len-1 clamp), got %d", s.pos)
	}
}

func Test_MoveOps(t *testing.T) {
	s := newTestSession(t)
	s.setBuffer("abc")
	s.pos = 3
	s.moveHome()
	if s.pos != 0 {
		t.Fatalf("expected pos 0, got %d", s.pos)
	}
	s.moveRight()
	if s.pos != 1 {
		t.Fatalf("expected pos 1, got %d", s.pos)
	}
	s.moveEnd()
	if s.pos != 3 {
		t.Fatalf("expected pos 3, got %d", s.pos)
	}
	s.moveLeft()
	if s.pos != 2 {
		t.Fatalf("expected pos 2, got %d", s.pos)
	}
}

func Test_HistoryNext(t *testing.T) {
	s := newTestSession(t)
	for _, e := range []string{"one", "two", "three"} {
		s.hist.add(e)
	}
	s.hist.add("") // scratch slot, as ReadLine would push
	s.historyIndex = 0
	s.setBuffer("")

	s.historyNext(1) // up: "three"
	if s.String() != "three" {
		t.Fatalf("expected %q, got %q", "three", s.String())
	}
	s.historyNext(1) // up: "two"
	if s.String() != "two" {
		t.Fatalf("expected %q, got %q", "two", s.String())
	}
}

func Test_InvariantBufferTerminated(t *testing.T) {
	s := newTestSession(t)
	seq := "hello world"
	for _, c := range []byte(seq) {
		s.insert(c)
		if s.pos < 0 || s.pos > len(s.buf) || len(s.buf) >= bufMax {
			t.Fatalf("invariant violated: pos=%d len=%d", s.pos, len(s.buf))
		}
	}
	if s.String() != seq {
		t.Fatalf("expected %q got %q", seq, s.String())
	}
}
