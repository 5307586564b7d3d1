package lineedit

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	"github.com/creack/termios/raw"
	"github.com/mattn/go-isatty"
)

// bufMax is the maximum edit buffer size, including the trailing
// terminator byte, for TTY-mode editing.
const bufMax = 4096

// Hint is returned by a hints callback to render ghost text to the
// right of the cursor.
type Hint struct {
	Text  string
	Color int // ANSI foreground code, or -1 for none
	Bold  bool
}

// Session is one interactive editing call chain: created, used for
// one or more ReadLine calls, and destroyed.
type Session struct {
	inFd, outFd, errFd int

	prompt string
	plen   int

	buf []byte
	pos int

	cols    int
	oldpos  int
	maxrows int

	multiline bool
	rawmode   bool
	saved     *raw.Termios

	hist         *history
	historyIndex int

	completionCallback func(string) []string
	hintsCallback      func(string) *Hint
	freeHintsCallback  func(string)

	scanner *bufio.Scanner
}

//-----------------------------------------------------------------------------
// session lifecycle

// Create builds a new editing session bound to the given file
// descriptors and prompt.
func Create(in, out, errf *os.File, prompt string) (*Session, error) {
	s := &Session{
		inFd:   int(in.Fd()),
		outFd:  int(out.Fd()),
		errFd:  int(errf.Fd()),
		prompt: prompt,
		plen:   len(prompt),
		buf:    make([]byte, 0, bufMax),
		hist:   newHistory(),
	}
	return s, nil
}

// ClearBuffer resets the edit buffer to empty.
func (s *Session) ClearBuffer() {
	s.buf = s.buf[:0]
	s.pos = 0
}

// SetMultiline toggles multi-line rendering mode.
func (s *Session) SetMultiline(on bool) {
	s.multiline = on
}

// SetCompletionCallback registers the tab-completion callback for
// this session.
func (s *Session) SetCompletionCallback(fn func(string) []string) {
	s.completionCallback = fn
}

// SetHintsCallback registers the hint-rendering callback for this
// session.
func (s *Session) SetHintsCallback(fn func(string) *Hint) {
	s.hintsCallback = fn
}

// SetFreeHintsCallback registers a callback invoked on the hint text
// returned by the hints callback, once it has been used for a
// refresh.
func (s *Session) SetFreeHintsCallback(fn func(string)) {
	s.freeHintsCallback = fn
}

//-----------------------------------------------------------------------------
// history API

// HistoryAdd adds line to the session's history, subject to dedup
// and the configured max length.
func (s *Session) HistoryAdd(line string) bool {
	return s.hist.add(line)
}

// HistorySetMaxLen sets the history capacity. It returns false and
// leaves the capacity unchanged if n is not positive.
func (s *Session) HistorySetMaxLen(n int) bool {
	return s.hist.setMaxLen(n)
}

// HistorySave saves history to path, one entry per line, with file
// mode 0600.
func (s *Session) HistorySave(path string) error {
	return s.hist.save(path)
}

// HistoryLoad loads history entries from path.
func (s *Session) HistoryLoad(path string) error {
	return s.hist.load(path)
}

//-----------------------------------------------------------------------------
// raw mode lifecycle

// ClearScreen clears the terminal display.
func (s *Session) ClearScreen() {
	clearScreen(s.outFd)
}

// Restore disables raw mode if engaged and restores the original
// termios. It is idempotent and safe to call from an exit handler
// after an abnormal exit.
func (s *Session) Restore() error {
	if !s.rawmode {
		return nil
	}
	err := restoreMode(s.inFd, s.saved)
	s.rawmode = false
	return err
}

// Destroy releases all session-owned state. The session must not be
// used after Destroy returns.
func (s *Session) Destroy() {
	s.Restore()
	s.buf = nil
	s.hist = nil
}

//-----------------------------------------------------------------------------
// debug helper

// PrintKeyCodes is a debug helper: it enables raw mode and echoes the
// hex code of each keystroke until the literal bytes "quit" have been
// typed as the last four input bytes.
func (s *Session) PrintKeyCodes() error {
	fmt.Fprintf(os.Stderr, "lineedit key code debugging mode.\n")
	fmt.Fprintf(os.Stderr, "Press keys to see scan codes. Type 'quit' at any time to exit.\n")

	if err := s.enableRawMode(); err != nil {
		return err
	}
	defer s.Restore()

	var cmd [4]byte
	one := make([]byte, 1)
	for {
		n, err := syscall.Read(s.inFd, one)
		if err != nil {
			return ErrIO
		}
		if n == 0 {
			return ErrEndOfFile
		}
		b := one[0]
		fmt.Fprintf(os.Stderr, "0x%02x (%d)\r\n", b, b)
		copy(cmd[:], cmd[1:])
		cmd[3] = b
		if string(cmd[:]) == "quit" {
			return nil
		}
	}
}

//-----------------------------------------------------------------------------
// ReadLine entry point

// enableRawMode snapshots termios and switches inFd to raw mode.
func (s *Session) enableRawMode() error {
	mode, err := setRawMode(s.inFd)
	if err != nil {
		return err
	}
	s.rawmode = true
	s.saved = mode
	return nil
}

// ReadLine is the blocking entry point: it produces one finished
// line of input, or an error from the taxonomy in errors.go.
func (s *Session) ReadLine() (string, error) {
	if !isatty.IsTerminal(uintptr(s.inFd)) {
		return s.readBasic()
	}
	if unsupportedTerm() {
		writeAll(s.outFd, s.prompt)
		line, err := s.readBasic()
		return line, err
	}
	return s.readRaw()
}

// readBasic reads one line with no editing, for non-TTY or
// unsupported-terminal fallback.
func (s *Session) readBasic() (string, error) {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(os.NewFile(uintptr(s.inFd), "stdin"))
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", ErrIO
		}
		return "", ErrEndOfFile
	}
	return s.scanner.Text(), nil
}

// readRaw enables raw mode, runs the interactive edit loop, and
// restores cooked mode before returning.
func (s *Session) readRaw() (string, error) {
	if err := s.enableRawMode(); err != nil {
		return "", err
	}

	s.cols = getColumns(s.inFd, s.outFd)
	s.ClearBuffer()
	s.oldpos = 0
	s.maxrows = 0
	s.historyIndex = 0

	s.hist.add("")
	s.refreshLine()

	line, err := s.edit()

	s.Restore()
	writeAll(s.outFd, "\n")
	return line, err
}

//-----------------------------------------------------------------------------
