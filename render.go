package lineedit

import "fmt"

//-----------------------------------------------------------------------------

// btoi converts a bool to 0/1, matching the SGR sequence builder
// below.
func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// renderHint returns the hint escape sequence for the current
// buffer, or "" if there is no hint to show. The freeHintsCallback,
// if registered, is invoked on the returned text after use.
func (s *Session) renderHint(availCols int) string {
	if s.hintsCallback == nil {
		return ""
	}
	if availCols <= 0 {
		return ""
	}
	h := s.hintsCallback(string(s.buf))
	if h == nil || len(h.Text) == 0 {
		return ""
	}
	text := h.Text
	for len(text) > availCols {
		text = text[:len(text)-1]
	}
	color := h.Color
	if h.Bold && color < 0 {
		color = 37
	}
	out := ""
	styled := color >= 0 || h.Bold
	if styled {
		out += fmt.Sprintf("\x1b[%d;%d;49m", btoi(h.Bold), color)
	}
	out += text
	if styled {
		out += "\x1b[0m"
	}
	if s.freeHintsCallback != nil {
		s.freeHintsCallback(h.Text)
	}
	return out
}

//-----------------------------------------------------------------------------
// line refresh

// refreshSingleline redraws the buffer for single-line mode: a
// sliding visible window keeps prompt+cursor in-frame.
func (s *Session) refreshSingleline() {
	start := 0
	end := len(s.buf)

	posWidth := s.pos
	for s.cols > s.plen && s.plen+posWidth >= s.cols {
		start++
		posWidth = s.pos - start
	}
	if s.cols <= s.plen {
		// prompt alone exceeds the terminal width: clamp instead of
		// letting the window-slide arithmetic underflow.
		start = s.pos
		posWidth = 0
	}

	bufWidth := end - start
	for s.cols > s.plen && s.plen+bufWidth >= s.cols {
		end--
		bufWidth = end - start
	}
	if end < start {
		end = start
	}

	var out outputBuffer
	out.writeString("\r")
	out.writeString(s.prompt)
	out.writeString(string(s.buf[start:end]))
	out.writeString(s.renderHint(s.cols - s.plen - len(s.buf)))
	out.writeString("\x1b[0K")
	out.writeString(fmt.Sprintf("\r\x1b[%dC", s.plen+posWidth))
	out.flush(s.outFd)
}

// refreshMultiline redraws the buffer across as many rows as needed,
// erasing the previous render first.
func (s *Session) refreshMultiline() {
	bufLen := len(s.buf)
	oldMaxrows := s.maxrows

	rpos := (s.plen + s.oldpos) / s.cols
	rows := (s.plen + bufLen + s.cols - 1) / s.cols
	if rows < 1 {
		rows = 1
	}
	if rows > s.maxrows {
		s.maxrows = rows
	}

	var out outputBuffer
	if oldMaxrows-rpos > 0 {
		out.writeString(fmt.Sprintf("\x1b[%dB", oldMaxrows-rpos))
	}
	for j := 0; j < oldMaxrows-1; j++ {
		out.writeString("\r\x1b[0K\x1b[1A")
	}
	out.writeString("\r\x1b[0K")

	out.writeString(s.prompt)
	out.writeString(string(s.buf))
	out.writeString(s.renderHint(s.cols))

	if s.pos == bufLen && (s.pos+s.plen)%s.cols == 0 {
		out.writeString("\n\r")
		rows++
		if rows > s.maxrows {
			s.maxrows = rows
		}
	}

	rpos2 := (s.plen + s.pos) / s.cols
	if rows-rpos2 > 0 {
		out.writeString(fmt.Sprintf("\x1b[%dA", rows-rpos2))
	}
	col := (s.plen + s.pos) % s.cols
	if col != 0 {
		out.writeString(fmt.Sprintf("\r\x1b[%dC", col))
	} else {
		out.writeString("\r")
	}

	s.oldpos = s.pos
	out.flush(s.outFd)
}

// refreshLine dispatches to the single-line or multi-line refresh
// algorithm depending on the session's mode.
func (s *Session) refreshLine() {
	if s.cols <= 0 {
		s.cols = defaultCols
	}
	if s.multiline {
		s.refreshMultiline()
	} else {
		s.refreshSingleline()
	}
}

//-----------------------------------------------------------------------------
