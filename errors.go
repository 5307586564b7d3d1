package lineedit

import "errors"

//-----------------------------------------------------------------------------
// Error taxonomy for the editor. Sentinel errors, not a custom type
// hierarchy.

var (
	// ErrNotATerminal is returned when raw mode is requested on a
	// file descriptor that is not a TTY.
	ErrNotATerminal = errors.New("lineedit: not a terminal")

	// ErrInterrupted is returned when the user presses Ctrl-C.
	ErrInterrupted = errors.New("lineedit: interrupted")

	// ErrEndOfFile is returned when the user presses Ctrl-D on an
	// empty buffer, or the input read returns zero bytes.
	ErrEndOfFile = errors.New("lineedit: end of file")

	// ErrIO is returned when a read on the TTY fails mid-edit (write
	// errors during display are swallowed). The current line is
	// abandoned and raw mode is disabled before this error is returned.
	ErrIO = errors.New("lineedit: io error")

	// ErrHistoryIO is returned when a history load/save file
	// operation fails.
	ErrHistoryIO = errors.New("lineedit: history io error")

	// ErrInvalidArgument names the invalid-argument case of the
	// taxonomy. No function in this package returns it:
	// HistorySetMaxLen reports a length less than 1 by returning false.
	ErrInvalidArgument = errors.New("lineedit: invalid argument")
)

//-----------------------------------------------------------------------------
