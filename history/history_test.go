package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInMemoryHistoryNewestFirst(t *testing.T) {
	h := NewInMemoryHistory()
	h.AppendString("first")
	h.AppendString("second")
	h.AppendString("third")

	got := h.GetStrings()
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("GetStrings()[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestNewInMemoryHistorySeeding(t *testing.T) {
	h := NewInMemoryHistory("newest", "oldest")
	got := h.GetStrings()
	if got[0] != "newest" || got[1] != "oldest" {
		t.Fatalf("got %v", got)
	}
}

func TestFileHistoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist.txt")

	h := NewFileHistory(path)
	h.AppendString("select 1")
	h.AppendString("line one\nline two")

	h2 := NewFileHistory(path)
	got := h2.GetStrings()
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(got), got)
	}
	if got[0] != "line one\nline two" {
		t.Errorf("newest entry = %q", got[0])
	}
	if got[1] != "select 1" {
		t.Errorf("oldest entry = %q", got[1])
	}
}

func TestFileHistoryMissingFileIsEmpty(t *testing.T) {
	h := NewFileHistory(filepath.Join(t.TempDir(), "does-not-exist"))
	if got := h.GetStrings(); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestParseHistoryFileFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist.txt")
	content := "\n+one\n\n+two\n+continued\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewFileHistory(path)
	got := h.GetStrings()
	if len(got) != 2 {
		t.Fatalf("got %d entries: %v", len(got), got)
	}
	if got[0] != "two\ncontinued" {
		t.Errorf("newest = %q", got[0])
	}
	if got[1] != "one" {
		t.Errorf("oldest = %q", got[1])
	}
}

func TestLoadAsync(t *testing.T) {
	h := NewInMemoryHistory("a", "b")
	ch := LoadAsync(h)
	got := <-ch
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}
