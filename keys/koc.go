// Package keys implements the key-or-char value (component D's vocabulary)
// and the key-binding registry: a flat ordered list of Bindings plus a
// lazily-built prefix trie keyed by KoC.
package keys

// Name identifies a named key (as opposed to a literal Unicode scalar).
type Name int

const (
	// ControlA..ControlZ
	ControlA Name = iota
	ControlB
	ControlC
	ControlD
	ControlE
	ControlF
	ControlG
	ControlH
	ControlI
	ControlJ
	ControlK
	ControlL
	ControlM
	ControlN
	ControlO
	ControlP
	ControlQ
	ControlR
	ControlS
	ControlT
	ControlU
	ControlV
	ControlW
	ControlX
	ControlY
	ControlZ

	ControlSpace
	ControlBackslash
	ControlSquareClose
	ControlCircumflex
	ControlUnderscore

	Backspace
	Tab
	Enter
	Escape

	Up
	Down
	Right
	Left

	Home
	End
	Insert
	Delete
	PageUp
	PageDown

	ControlUp
	ControlDown
	ControlRight
	ControlLeft
	ControlHome
	ControlEnd
	ControlInsert
	ControlDelete
	ControlPageUp
	ControlPageDown

	ShiftUp
	ShiftDown
	ShiftRight
	ShiftLeft
	ShiftHome
	ShiftEnd
	ShiftInsert
	ShiftDelete
	ShiftPageUp
	ShiftPageDown
	ShiftTab
	ShiftControlHome
	ShiftControlEnd

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	BackTab

	// Mouse / terminal protocol markers.
	Vt100MouseEvent
	WindowsMouseEvent
	BracketedPaste
	ScrollUp
	ScrollDown

	// Synthetic sentinels.
	CPRResponse
	SIGINT

	// Any is the wildcard KoC: matches any single KoC position during
	// trie lookup (spec §3/§4.D).
	Any

	// Ignore is a no-op key (present on some terminals' special sequences).
	Ignore
)

var names = map[Name]string{
	ControlA: "ControlA", ControlB: "ControlB", ControlC: "ControlC",
	ControlD: "ControlD", ControlE: "ControlE", ControlF: "ControlF",
	ControlG: "ControlG", ControlH: "ControlH", ControlI: "ControlI",
	ControlJ: "ControlJ", ControlK: "ControlK", ControlL: "ControlL",
	ControlM: "ControlM", ControlN: "ControlN", ControlO: "ControlO",
	ControlP: "ControlP", ControlQ: "ControlQ", ControlR: "ControlR",
	ControlS: "ControlS", ControlT: "ControlT", ControlU: "ControlU",
	ControlV: "ControlV", ControlW: "ControlW", ControlX: "ControlX",
	ControlY: "ControlY", ControlZ: "ControlZ",
	ControlSpace: "ControlSpace", ControlBackslash: "ControlBackslash",
	ControlSquareClose: "ControlSquareClose", ControlCircumflex: "ControlCircumflex",
	ControlUnderscore: "ControlUnderscore",
	Backspace:         "Backspace", Tab: "Tab", Enter: "Enter", Escape: "Escape",
	Up: "Up", Down: "Down", Right: "Right", Left: "Left",
	Home: "Home", End: "End", Insert: "Insert", Delete: "Delete",
	PageUp: "PageUp", PageDown: "PageDown",
	ControlUp: "ControlUp", ControlDown: "ControlDown", ControlRight: "ControlRight",
	ControlLeft: "ControlLeft", ControlHome: "ControlHome", ControlEnd: "ControlEnd",
	ControlInsert: "ControlInsert", ControlDelete: "ControlDelete",
	ControlPageUp: "ControlPageUp", ControlPageDown: "ControlPageDown",
	ShiftUp: "ShiftUp", ShiftDown: "ShiftDown", ShiftRight: "ShiftRight",
	ShiftLeft: "ShiftLeft", ShiftHome: "ShiftHome", ShiftEnd: "ShiftEnd",
	ShiftInsert: "ShiftInsert", ShiftDelete: "ShiftDelete",
	ShiftPageUp: "ShiftPageUp", ShiftPageDown: "ShiftPageDown", ShiftTab: "ShiftTab",
	ShiftControlHome: "ShiftControlHome", ShiftControlEnd: "ShiftControlEnd",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18",
	F19: "F19", F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",
	BackTab:           "BackTab",
	Vt100MouseEvent:   "Vt100MouseEvent",
	WindowsMouseEvent: "WindowsMouseEvent",
	BracketedPaste:    "BracketedPaste",
	ScrollUp:          "ScrollUp",
	ScrollDown:        "ScrollDown",
	CPRResponse:       "CPRResponse",
	SIGINT:            "SIGINT",
	Any:               "Any",
	Ignore:            "Ignore",
}

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "Unknown"
}

// KoC is a key-or-char: either a named key or a literal Unicode scalar.
// Equality is structural (spec §3).
type KoC struct {
	IsChar bool
	Char   rune
	Name   Name
}

// Key builds a KoC from a named key.
func Key(n Name) KoC { return KoC{Name: n} }

// Char builds a KoC from a literal rune.
func Char(r rune) KoC { return KoC{IsChar: true, Char: r} }

// AnyKoC is the wildcard KoC value.
var AnyKoC = Key(Any)

func (k KoC) String() string {
	if k.IsChar {
		return string(k.Char)
	}
	return k.Name.String()
}

// Matches reports whether k matches pattern, where pattern may be the Any
// wildcard (matches anything) or must equal k exactly.
func (pattern KoC) Matches(k KoC) bool {
	if !pattern.IsChar && pattern.Name == Any {
		return true
	}
	return pattern == k
}

// KeyPress pairs a decoded KoC with the raw bytes that produced it. Data
// carries the original bytes for self-insert and mouse payloads (spec §3).
type KeyPress struct {
	Key  KoC
	Data string
}
