package keys

// Filter is a 0-ary boolean predicate gating binding candidacy (spec §4.D).
// A nil Filter is treated as always-true.
type Filter func() bool

// And combines two filters with logical AND.
func (f Filter) And(g Filter) Filter {
	return func() bool { return f.eval() && g.eval() }
}

// Or combines two filters with logical OR.
func (f Filter) Or(g Filter) Filter {
	return func() bool { return f.eval() || g.eval() }
}

// Not negates a filter.
func (f Filter) Not() Filter {
	return func() bool { return !f.eval() }
}

func (f Filter) eval() bool { return f.Eval() }

// Eval evaluates the filter, treating a nil Filter as always-true.
func (f Filter) Eval() bool {
	if f == nil {
		return true
	}
	return f()
}

// Always is a Filter that is always true.
func Always() bool { return true }

// Never is a Filter that is always false.
func Never() bool { return false }
