package controls

import "github.com/willibrandon/stroke/keys"

// DummyControl is the zero-content control: no lines, no cursor, not
// focusable (spec §4.H).
type DummyControl struct{}

func (DummyControl) CreateContent(width, height int) UIContent {
	return UIContent{LineCount: 0, GetLine: func(int) []StyleAndTextTuple { return nil }}
}

func (DummyControl) PreferredWidth(maxAvailableWidth int) *int  { return nil }
func (DummyControl) PreferredHeight(width, maxAvailableHeight int, wrapLines bool, getLinePrefix func(int, int) []StyleAndTextTuple) *int {
	return nil
}
func (DummyControl) IsFocusable() bool { return false }
func (DummyControl) MouseHandler(UIContent, MouseEvent) MouseHandlerResult {
	return NotImplemented
}
func (DummyControl) GetKeyBindings() keys.KeyBindings   { return nil }
func (DummyControl) GetInvalidateEvents(notify func()) {}
