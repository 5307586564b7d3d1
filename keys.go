package lineedit

//-----------------------------------------------------------------------------
// Key codes recognized by the event loop decoder.

const (
	keyNull  = 0
	keyCtrlA = 1
	keyCtrlB = 2
	keyCtrlC = 3
	keyCtrlD = 4
	keyCtrlE = 5
	keyCtrlF = 6
	keyCtrlH = 8
	keyTab   = 9
	keyLF    = 10
	keyCtrlK = 11
	keyCtrlL = 12
	keyCR    = 13
	keyCtrlN = 14
	keyCtrlP = 16
	keyCtrlT = 20
	keyCtrlU = 21
	keyCtrlW = 23
	keyESC   = 27
	keyBS    = 127
)

//-----------------------------------------------------------------------------
