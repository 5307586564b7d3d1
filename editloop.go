package lineedit

import "syscall"

//-----------------------------------------------------------------------------
// keystroke dispatch loop

// readByte performs one blocking single-byte read from the session's
// input fd.
func (s *Session) readByte() (byte, error) {
	buf := make([]byte, 1)
	n, err := syscall.Read(s.inFd, buf)
	if err != nil {
		return 0, ErrIO
	}
	if n == 0 {
		return 0, ErrEndOfFile
	}
	return buf[0], nil
}

// edit runs the interactive keystroke dispatch loop until ENTER,
// Ctrl-C, or Ctrl-D terminates it.
func (s *Session) edit() (string, error) {
	for {
		b, err := s.readByte()
		if err != nil {
			return "", err
		}

		if b == keyTab && s.completionCallback != nil {
			next, redispatch, err := s.completeLine()
			if err != nil {
				return "", err
			}
			if !redispatch {
				continue
			}
			b = next
		}

		switch {
		case b == keyCR:
			s.hist.popLast()
			if s.multiline {
				s.moveEnd()
			}
			if s.hintsCallback != nil {
				saved := s.hintsCallback
				s.hintsCallback = nil
				s.refreshLine()
				s.hintsCallback = saved
			}
			return s.String(), nil

		case b == keyCtrlC:
			return "", ErrInterrupted

		case b == keyBS || b == keyCtrlH:
			s.backspace()

		case b == keyCtrlD:
			if len(s.buf) > 0 {
				s.deleteForward()
			} else {
				s.hist.popLast()
				return "", ErrEndOfFile
			}

		case b == keyCtrlT:
			s.transpose()

		case b == keyCtrlA:
			s.moveHome()
		case b == keyCtrlB:
			s.moveLeft()
		case b == keyCtrlF:
			s.moveRight()
		case b == keyCtrlE:
			s.moveEnd()
		case b == keyCtrlK:
			s.killToEnd()
		case b == keyCtrlU:
			s.killLine()
		case b == keyCtrlW:
			s.killPrevWord()
		case b == keyCtrlL:
			s.ClearScreen()
			s.refreshLine()
		case b == keyCtrlP:
			s.historyNext(1)
		case b == keyCtrlN:
			s.historyNext(-1)

		case b == keyESC:
			if err := s.decodeEscape(); err != nil {
				return "", err
			}

		default:
			if b >= 0x20 {
				s.insert(b)
			}
		}
	}
}

//-----------------------------------------------------------------------------
// escape sequence decoding

// decodeEscape handles an ESC byte already consumed from the input
// stream: it reads up to two more bytes and dispatches the decoded
// cursor/editing key. Unknown sequences are silently ignored.
func (s *Session) decodeEscape() error {
	b0, err := s.readByte()
	if err != nil {
		return err
	}
	b1, err := s.readByte()
	if err != nil {
		return err
	}

	if b0 == '[' {
		if b1 >= '0' && b1 <= '9' {
			b2, err := s.readByte()
			if err != nil {
				return err
			}
			if b2 == '~' && b1 == '3' {
				s.deleteForward()
			}
			return nil
		}
		switch b1 {
		case 'A':
			s.historyNext(1)
		case 'B':
			s.historyNext(-1)
		case 'C':
			s.moveRight()
		case 'D':
			s.moveLeft()
		case 'H':
			s.moveHome()
		case 'F':
			s.moveEnd()
		}
		return nil
	}
	if b0 == 'O' {
		switch b1 {
		case 'H':
			s.moveHome()
		case 'F':
			s.moveEnd()
		}
	}
	return nil
}

//-----------------------------------------------------------------------------
// TAB completion sub-mode

// completeLine implements the TAB completion sub-mode. It returns
// (b, true, nil) when the caller should re-dispatch byte b through
// the main loop, (0, false, nil) when the sub-mode resumed normal
// editing on its own, or a non-nil error to propagate.
func (s *Session) completeLine() (byte, bool, error) {
	candidates := s.completionCallback(s.String())
	if len(candidates) == 0 {
		bell(s.errFd)
		return 0, false, nil
	}

	n := len(candidates)
	savedBuf := s.buf
	savedPos := s.pos
	idx := 0

	for {
		if idx < n {
			s.buf = []byte(candidates[idx])
			s.pos = len(s.buf)
			s.refreshLine()
		} else {
			s.buf = savedBuf
			s.pos = savedPos
			s.refreshLine()
		}

		b, err := s.readByte()
		if err != nil {
			s.buf = savedBuf
			s.pos = savedPos
			return 0, false, err
		}

		switch b {
		case keyTab:
			idx = (idx + 1) % (n + 1)
			if idx == n {
				bell(s.errFd)
			}
			continue
		case keyESC:
			s.buf = savedBuf
			s.pos = savedPos
			s.refreshLine()
			return 0, false, nil
		default:
			if idx < n {
				savedBuf = []byte(candidates[idx])
				savedPos = len(savedBuf)
			}
			s.buf = savedBuf
			s.pos = savedPos
			return b, true, nil
		}
	}
}

//-----------------------------------------------------------------------------
