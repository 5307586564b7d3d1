package lineedit

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func(outFd int)) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()
	fn(int(w.Fd()))
	w.Close()
	select {
	case out := <-done:
		return out
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out reading pipe")
		return ""
	}
}

func Test_RefreshSinglelineBasic(t *testing.T) {
	var got string
	got = captureOutput(t, func(outFd int) {
		s := &Session{outFd: outFd, prompt: "> ", plen: 2, cols: 80}
		s.setBuffer("hello")
		s.refreshLine()
	})
	if !strings.Contains(got, "> ") || !strings.Contains(got, "hello") {
		t.Fatalf("expected prompt and buffer in output, got %q", got)
	}
	if !strings.Contains(got, "\x1b[0K") {
		t.Fatalf("expected erase-to-eol sequence, got %q", got)
	}
}

func Test_RefreshSinglelineNarrowSlides(t *testing.T) {
	got := captureOutput(t, func(outFd int) {
		s := &Session{outFd: outFd, prompt: "> ", plen: 2, cols: 10}
		s.setBuffer("0123456789012345")
		s.pos = len(s.buf)
		s.refreshLine()
	})
	// the cursor-positioning escape must reflect an in-frame column:
	// the window slides to start at byte 9, leaving the cursor at
	// column plen+7 = 9 of 10.
	if !strings.Contains(got, "\r\x1b[9C") {
		t.Fatalf("expected a cursor escape in output: %q", got)
	}
}

func Test_RefreshPromptWiderThanColsNoPanic(t *testing.T) {
	captureOutput(t, func(outFd int) {
		s := &Session{outFd: outFd, prompt: strings.Repeat("p", 20), plen: 20, cols: 5}
		s.setBuffer("abc")
		s.refreshLine() // must not panic on underflow
	})
}
