package lineedit

import (
	"bufio"
	"os"
	"strings"
)

// defaultHistoryMaxLen is the default bound on the number of stored
// history entries.
const defaultHistoryMaxLen = 100

//-----------------------------------------------------------------------------
// Command History

// history is a bounded ordered sequence of lines with dedup of the
// immediately repeated entry.
type history struct {
	entries []string
	maxLen  int
}

func newHistory() *history {
	return &history{maxLen: defaultHistoryMaxLen}
}

func (h *history) len() int {
	return len(h.entries)
}

// add appends line to the history. It is a no-op if maxLen is 0 or
// line duplicates the current last entry. On overflow the oldest
// entry is evicted.
func (h *history) add(line string) bool {
	if h.maxLen == 0 {
		return false
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return false
	}
	if len(h.entries) >= h.maxLen {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, line)
	return true
}

// setMaxLen changes the history capacity, trimming the oldest
// entries if the history is currently longer than n. Returns false
// for an invalid n (n < 1), leaving the history unchanged.
func (h *history) setMaxLen(n int) bool {
	if n < 1 {
		return false
	}
	h.maxLen = n
	if len(h.entries) > n {
		h.entries = h.entries[len(h.entries)-n:]
	}
	return true
}

// popLast removes and returns the newest entry (the scratch slot).
func (h *history) popLast() string {
	n := len(h.entries)
	if n == 0 {
		return ""
	}
	s := h.entries[n-1]
	h.entries = h.entries[:n-1]
	return s
}

// set stores line at history index idx, where idx counts back from
// the newest entry (idx 0 is the newest).
func (h *history) set(idx int, line string) {
	h.entries[len(h.entries)-1-idx] = line
}

// get retrieves the entry at history index idx (0 is the newest).
func (h *history) get(idx int) string {
	return h.entries[len(h.entries)-1-idx]
}

// save writes one entry per line to path, most restrictively with
// 0600 permissions regardless of the process umask.
func (h *history) save(path string) error {
	oldMask := umask(0o077)
	defer umask(oldMask)

	f, err := os.Create(path)
	if err != nil {
		return ErrHistoryIO
	}
	defer f.Close()

	for _, line := range h.entries {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return ErrHistoryIO
		}
	}
	if err := f.Chmod(0o600); err != nil {
		return ErrHistoryIO
	}
	return nil
}

// load reads path, adding each stripped line via add (so dedup and
// max-len apply). A missing file returns ErrHistoryIO without
// mutating the existing history.
func (h *history) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return ErrHistoryIO
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		h.add(line)
	}
	if err := scanner.Err(); err != nil {
		return ErrHistoryIO
	}
	return nil
}

//-----------------------------------------------------------------------------
