package lineedit

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"unsafe"

	"github.com/creack/termios/raw"
	"github.com/deadsy/go-fdset"
	"github.com/mattn/go-isatty"
)

// defaultCols is used when the terminal width cannot be determined.
const defaultCols = 80

var cursorReportTimeout = syscall.Timeval{Sec: 0, Usec: 20 * 1000}

//-----------------------------------------------------------------------------
// control the terminal mode

// setRawMode puts fd into raw mode and returns the original termios
// so it can be restored later.
func setRawMode(fd int) (*raw.Termios, error) {
	if !isatty.IsTerminal(uintptr(fd)) {
		return nil, ErrNotATerminal
	}
	original, err := raw.TcGetAttr(uintptr(fd))
	if err != nil {
		return nil, err
	}
	mode := *original
	mode.Iflag &^= syscall.BRKINT | syscall.ICRNL | syscall.INPCK | syscall.ISTRIP | syscall.IXON
	mode.Oflag &^= syscall.OPOST
	mode.Cflag |= syscall.CS8
	mode.Lflag &^= syscall.ECHO | syscall.ICANON | syscall.IEXTEN | syscall.ISIG
	mode.Cc[syscall.VMIN] = 1
	mode.Cc[syscall.VTIME] = 0
	if err := raw.TcSetAttr(uintptr(fd), &mode); err != nil {
		return nil, err
	}
	return original, nil
}

// restoreMode restores a previously captured termios.
func restoreMode(fd int, mode *raw.Termios) error {
	return raw.TcSetAttr(uintptr(fd), mode)
}

//-----------------------------------------------------------------------------
// raw fd read/write

// writeAll writes a string to the file descriptor, ignoring short
// writes beyond reporting the error (best-effort display, per the
// refresh/output contract).
func writeAll(fd int, s string) error {
	_, err := syscall.Write(fd, []byte(s))
	return err
}

// readByteTimeout reads a single byte from fd, returning ok=false if
// nothing was readable within the timeout.
func readByteTimeout(fd int, timeout *syscall.Timeval) (b byte, ok bool, err error) {
	rd := syscall.FdSet{}
	fdset.Set(fd, &rd)
	n, err := syscall.Select(fd+1, &rd, nil, nil, timeout)
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	buf := make([]byte, 1)
	n, err = syscall.Read(fd, buf)
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// getCursorPosition queries the terminal for the cursor's current
// column via the CSI 6 n escape, parsing the "CSI r ; c R" reply.
// Returns -1 on any failure.
func getCursorPosition(ifd, ofd int) int {
	if err := writeAll(ofd, "\x1b[6n"); err != nil {
		return -1
	}
	buf := make([]byte, 0, 32)
	for len(buf) < 32 {
		b, ok, err := readByteTimeout(ifd, &cursorReportTimeout)
		if err != nil || !ok {
			break
		}
		buf = append(buf, b)
		if b == 'R' {
			break
		}
	}
	if len(buf) < 6 || buf[0] != keyESC || buf[1] != '[' || buf[len(buf)-1] != 'R' {
		return -1
	}
	parts := strings.Split(string(buf[2:len(buf)-1]), ";")
	if len(parts) != 2 {
		return -1
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return cols
}

// winsize mirrors struct winsize from <sys/ioctl.h>.
type winsize struct {
	rows, cols, xpixel, ypixel uint16
}

// getColumns returns the terminal width in columns. It first tries
// the TIOCGWINSZ ioctl on fd 1; on failure it falls back to the
// cursor-report probe, and finally to defaultCols.
func getColumns(ifd, ofd int) int {
	var ws winsize
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, uintptr(1), syscall.TIOCGWINSZ, uintptr(unsafe.Pointer(&ws)))
	if errno == 0 && ws.cols != 0 {
		return int(ws.cols)
	}
	start := getCursorPosition(ifd, ofd)
	if start < 0 {
		return defaultCols
	}
	if err := writeAll(ofd, "\x1b[999C"); err != nil {
		return defaultCols
	}
	cols := getCursorPosition(ifd, ofd)
	if cols < 0 {
		return defaultCols
	}
	if cols > start {
		writeAll(ofd, fmt.Sprintf("\x1b[%dD", cols-start))
	}
	return cols
}

//-----------------------------------------------------------------------------
// terminal capability detection

var unsupportedTerms = map[string]bool{
	"dumb":   true,
	"cons25": true,
	"emacs":  true,
}

// unsupportedTerm reports whether $TERM is a terminal known not to
// support the editing escape sequences.
func unsupportedTerm() bool {
	term := strings.ToLower(os.Getenv("TERM"))
	return unsupportedTerms[term]
}

// clearScreen emits the escape sequence that homes the cursor and
// clears the display.
func clearScreen(ofd int) {
	writeAll(ofd, "\x1b[H\x1b[2J")
}

// bell rings the terminal bell on the error fd.
func bell(efd int) {
	writeAll(efd, "\x07")
}

//-----------------------------------------------------------------------------
