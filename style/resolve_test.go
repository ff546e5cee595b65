package style

import "testing"

func TestResolveBoldAndColor(t *testing.T) {
	s := NewSheet()
	a := s.Resolve("bold fg:red bg:black")
	if !a.Bold {
		t.Error("expected Bold")
	}
	if a.Color != "red" {
		t.Errorf("Color = %q, want red", a.Color)
	}
	if a.BgColor != "black" {
		t.Errorf("BgColor = %q, want black", a.BgColor)
	}
}

func TestResolveNegationOverridesEarlierToken(t *testing.T) {
	s := NewSheet()
	a := s.Resolve("bold nobold")
	if a.Bold {
		t.Error("expected nobold to clear Bold")
	}
}

func TestResolveClassLookupFromSheet(t *testing.T) {
	s := NewSheet()
	s.Set("warn", Attrs{Color: "yellow", Bold: true})
	a := s.Resolve("class:warn")
	if a.Color != "yellow" || !a.Bold {
		t.Errorf("got %+v", a)
	}
}

func TestResolveMultipleClassesCommaSeparated(t *testing.T) {
	s := NewSheet()
	s.Set("a", Attrs{Color: "red"})
	s.Set("b", Attrs{Bold: true})
	a := s.Resolve("class:a,b")
	if a.Color != "red" || !a.Bold {
		t.Errorf("got %+v", a)
	}
}

func TestResolveUnknownClassIsIgnored(t *testing.T) {
	s := NewSheet()
	a := s.Resolve("class:does-not-exist")
	if a != (Attrs{}) {
		t.Errorf("got %+v, want zero value", a)
	}
}

func TestResolveNooverlayContributesNothing(t *testing.T) {
	s := NewSheet()
	a := s.Resolve("nooverlay bold")
	if !a.Bold {
		t.Error("expected bold still applied")
	}
}

func TestResolveBareTokenIsColorName(t *testing.T) {
	s := NewSheet()
	a := s.Resolve("ansiblue")
	if a.Color != "ansiblue" {
		t.Errorf("Color = %q, want ansiblue", a.Color)
	}
}

func TestDefaultSheetHasSelectedReverse(t *testing.T) {
	s := DefaultSheet()
	a := s.Resolve("class:selected")
	if !a.Reverse {
		t.Error("expected class:selected to set Reverse")
	}
}

func TestResolveLaterFgWinsOverClass(t *testing.T) {
	s := DefaultSheet()
	a := s.Resolve("class:search fg:green")
	if a.Color != "green" {
		t.Errorf("Color = %q, want green (later token wins)", a.Color)
	}
}
