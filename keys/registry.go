package keys

import "sort"

// KeyBindings is the lookup contract shared by Registry, merged bindings,
// and Dynamic wrappers (spec §4.D).
type KeyBindings interface {
	Bindings() []*Binding
	GetBindingsForKeys(seq []KoC) []*Binding
	GetBindingsStartingWithKeys(seq []KoC) []*Binding
	InvalidationHash() uint64
}

type trieNode struct {
	children map[KoC]*trieNode
	bindings []*Binding
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[KoC]*trieNode)}
}

// buildTrie constructs a prefix trie over bindings, with Any treated as a
// distinct child edge (spec §4.D).
func buildTrie(bindings []*Binding) *trieNode {
	root := newTrieNode()
	for _, b := range bindings {
		n := root
		for _, k := range b.Keys {
			child, ok := n.children[k]
			if !ok {
				child = newTrieNode()
				n.children[k] = child
			}
			n = child
		}
		n.bindings = append(n.bindings, b)
	}
	return root
}

// walkTrie returns the set of nodes reachable by matching seq against the
// trie, following both the literal edge for seq[i] and the Any edge at
// every step.
func walkTrie(root *trieNode, seq []KoC) []*trieNode {
	frontier := []*trieNode{root}
	for _, k := range seq {
		var next []*trieNode
		for _, n := range frontier {
			if c, ok := n.children[k]; ok {
				next = append(next, c)
			}
			if k != AnyKoC {
				if c, ok := n.children[AnyKoC]; ok {
					next = append(next, c)
				}
			}
		}
		frontier = next
		if len(frontier) == 0 {
			return nil
		}
	}
	return frontier
}

func collectSubtree(n *trieNode, includeSelf bool, out *[]*Binding) {
	if includeSelf {
		*out = append(*out, n.bindings...)
	}
	for _, c := range n.children {
		collectSubtree(c, true, out)
	}
}

func anyCount(b *Binding) int {
	n := 0
	for _, k := range b.Keys {
		if k == AnyKoC {
			n++
		}
	}
	return n
}

// sortMatches orders bindings fewer-Any-first, then by registration order
// (spec §4.D).
func sortMatches(bindings []*Binding, order map[*Binding]int) []*Binding {
	out := append([]*Binding(nil), bindings...)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := anyCount(out[i]), anyCount(out[j])
		if ai != aj {
			return ai < aj
		}
		return order[out[i]] < order[out[j]]
	})
	return out
}

// filterCandidates drops bindings whose Filter currently evaluates false.
// Filters gate candidacy directly in the lookup, not just at dispatch time.
func filterCandidates(bindings []*Binding) []*Binding {
	out := bindings[:0:0]
	for _, b := range bindings {
		if b.filterOK() {
			out = append(out, b)
		}
	}
	return out
}

// lookupExact implements GetBindingsForKeys against an already-built trie.
func lookupExact(root *trieNode, seq []KoC, order map[*Binding]int) []*Binding {
	frontier := walkTrie(root, seq)
	var out []*Binding
	for _, n := range frontier {
		out = append(out, n.bindings...)
	}
	return sortMatches(filterCandidates(out), order)
}

// lookupPrefix implements GetBindingsStartingWithKeys against an
// already-built trie: all bindings whose key sequence has seq as a strict
// proper prefix.
func lookupPrefix(root *trieNode, seq []KoC, order map[*Binding]int) []*Binding {
	frontier := walkTrie(root, seq)
	var out []*Binding
	for _, n := range frontier {
		for _, c := range n.children {
			collectSubtree(c, true, &out)
		}
	}
	return sortMatches(filterCandidates(out), order)
}

// Registry is the concrete, mutable KeyBindings implementation: a flat
// ordered list of Bindings plus a lazily rebuilt prefix trie.
type Registry struct {
	bindings []*Binding
	order    map[*Binding]int
	trie     *trieNode
	version  uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{order: make(map[*Binding]int)}
}

// Add registers b, invalidating the cached trie.
func (r *Registry) Add(b *Binding) {
	r.order[b] = len(r.bindings)
	r.bindings = append(r.bindings, b)
	r.trie = nil
	r.version++
}

// AddBinding validates and registers a new binding in one step.
func (r *Registry) AddBinding(seq []KoC, handler Handler, opts ...BindingOption) error {
	b, err := NewBinding(seq, handler, opts...)
	if err != nil {
		return err
	}
	r.Add(b)
	return nil
}

// Bindings returns the flat ordered list of registered bindings.
func (r *Registry) Bindings() []*Binding {
	return append([]*Binding(nil), r.bindings...)
}

func (r *Registry) ensureTrie() *trieNode {
	if r.trie == nil {
		r.trie = buildTrie(r.bindings)
	}
	return r.trie
}

// GetBindingsForKeys returns all bindings whose key-sequence exactly
// matches seq (literal equality, or Any at that position), ordered
// fewer-Any-first then by registration order.
func (r *Registry) GetBindingsForKeys(seq []KoC) []*Binding {
	return lookupExact(r.ensureTrie(), seq, r.order)
}

// GetBindingsStartingWithKeys returns all bindings for which seq is a
// strict proper prefix of the key sequence.
func (r *Registry) GetBindingsStartingWithKeys(seq []KoC) []*Binding {
	return lookupPrefix(r.ensureTrie(), seq, r.order)
}

// InvalidationHash changes on every mutation, for use as a cache-key
// component by dependents (e.g. controls.BufferControl).
func (r *Registry) InvalidationHash() uint64 { return r.version }

// mergedBindings is a read-only logical union of constituent KeyBindings,
// preserving concatenation order (spec §4.D "Merge").
type mergedBindings struct {
	constituents []KeyBindings
}

// Merge produces a KeyBindings whose Bindings list is the concatenation of
// constituents in order. Its invalidation hash is derived from the tuple
// of constituent invalidation hashes.
func Merge(constituents ...KeyBindings) KeyBindings {
	return &mergedBindings{constituents: constituents}
}

func (m *mergedBindings) Bindings() []*Binding {
	var out []*Binding
	for _, c := range m.constituents {
		out = append(out, c.Bindings()...)
	}
	return out
}

func (m *mergedBindings) order() map[*Binding]int {
	order := make(map[*Binding]int)
	i := 0
	for _, c := range m.constituents {
		for _, b := range c.Bindings() {
			order[b] = i
			i++
		}
	}
	return order
}

func (m *mergedBindings) GetBindingsForKeys(seq []KoC) []*Binding {
	order := m.order()
	trie := buildTrie(m.Bindings())
	return lookupExact(trie, seq, order)
}

func (m *mergedBindings) GetBindingsStartingWithKeys(seq []KoC) []*Binding {
	order := m.order()
	trie := buildTrie(m.Bindings())
	return lookupPrefix(trie, seq, order)
}

func (m *mergedBindings) InvalidationHash() uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	for _, c := range m.constituents {
		h ^= c.InvalidationHash()
		h *= 1099511628211 // FNV prime
	}
	return h
}

// Dynamic wraps a zero-arg resolver returning a KeyBindings. The resolver
// is called at most once per frame (spec §4.D); Invalidate must be called
// once per frame boundary to allow re-resolution. Exceptions (panics) from
// the resolver propagate to the caller.
type Dynamic struct {
	Resolver func() KeyBindings

	resolved  KeyBindings
	hasResult bool
}

// NewDynamic wraps resolver. A nil return from resolver is treated as an
// empty KeyBindings.
func NewDynamic(resolver func() KeyBindings) *Dynamic {
	return &Dynamic{Resolver: resolver}
}

func (d *Dynamic) resolve() KeyBindings {
	if !d.hasResult {
		kb := d.Resolver()
		if kb == nil {
			kb = NewRegistry()
		}
		d.resolved = kb
		d.hasResult = true
	}
	return d.resolved
}

// Invalidate clears the per-frame cached resolution, so the next lookup
// calls the resolver again.
func (d *Dynamic) Invalidate() {
	d.hasResult = false
	d.resolved = nil
}

func (d *Dynamic) Bindings() []*Binding                             { return d.resolve().Bindings() }
func (d *Dynamic) GetBindingsForKeys(seq []KoC) []*Binding           { return d.resolve().GetBindingsForKeys(seq) }
func (d *Dynamic) GetBindingsStartingWithKeys(seq []KoC) []*Binding  { return d.resolve().GetBindingsStartingWithKeys(seq) }
func (d *Dynamic) InvalidationHash() uint64                          { return d.resolve().InvalidationHash() }
