package output

import "testing"

func TestDummyWriterNeverErrors(t *testing.T) {
	w := NewDummyWriter()
	w.Write("anything")
	w.WriteRaw("anything")
	if err := w.Flush(); err != nil {
		t.Errorf("Flush returned error: %v", err)
	}
}

func TestDummyWriterGetSize(t *testing.T) {
	w := NewDummyWriter()
	rows, cols := w.GetSize()
	if rows != 40 || cols != 80 {
		t.Errorf("GetSize = (%d,%d), want (40,80)", rows, cols)
	}
}

func TestDummyWriterFileno(t *testing.T) {
	w := NewDummyWriter()
	fd, err := w.Fileno()
	if err == nil {
		t.Errorf("Fileno should error on dummy writer")
	}
	if fd != -1 {
		t.Errorf("Fileno fd = %d, want -1", fd)
	}
}
