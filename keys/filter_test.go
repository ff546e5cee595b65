package keys

import "testing"

func TestNilFilterEvaluatesTrue(t *testing.T) {
	var f Filter
	if !f.Eval() {
		t.Error("nil filter should evaluate true")
	}
}

func TestFilterAnd(t *testing.T) {
	tru := Filter(func() bool { return true })
	fls := Filter(func() bool { return false })

	if !tru.And(tru).Eval() {
		t.Error("true && true should be true")
	}
	if fls.And(tru).Eval() {
		t.Error("false && true should be false")
	}
}

func TestFilterOr(t *testing.T) {
	tru := Filter(func() bool { return true })
	fls := Filter(func() bool { return false })

	if !fls.Or(tru).Eval() {
		t.Error("false || true should be true")
	}
	if fls.Or(fls).Eval() {
		t.Error("false || false should be false")
	}
}

func TestFilterNot(t *testing.T) {
	tru := Filter(func() bool { return true })
	if tru.Not().Eval() {
		t.Error("!true should be false")
	}
}

func TestFilterCombinatorsTreatNilSubFilterAsTrue(t *testing.T) {
	var nilFilter Filter
	fls := Filter(func() bool { return false })

	if !nilFilter.And(nilFilter).Eval() {
		t.Error("nil && nil should evaluate true (both default true)")
	}
	if fls.And(nilFilter).Eval() {
		t.Error("false && nil should be false")
	}
}
