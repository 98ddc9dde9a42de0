package blueprint

import "strings"

// BagEntry is one unmapped element. Raw is the element text, or, when Markup
// is set, the serialized element itself (used when it carries attributes or
// child elements).
type BagEntry struct {
	Name   string
	Raw    string
	Markup bool
}

// Bag maps unmapped element names to their raw content. Names compare
// case-insensitively and entries keep their insertion order. The zero value
// is an empty bag.
type Bag struct {
	entries []BagEntry
	index   map[string]int
}

func bagKey(name string) string { return strings.ToLower(name) }

// Len returns the number of entries.
func (b *Bag) Len() int { return len(b.entries) }

// Has reports whether name is present.
func (b *Bag) Has(name string) bool {
	_, ok := b.index[bagKey(name)]
	return ok
}

// Get returns the raw content stored under name.
func (b *Bag) Get(name string) (string, bool) {
	e, ok := b.Entry(name)
	return e.Raw, ok
}

// Entry returns the full entry stored under name.
func (b *Bag) Entry(name string) (BagEntry, bool) {
	i, ok := b.index[bagKey(name)]
	if !ok {
		return BagEntry{}, false
	}
	return b.entries[i], true
}

// Entries returns a copy of the entries in insertion order.
func (b *Bag) Entries() []BagEntry {
	if len(b.entries) == 0 {
		return nil
	}
	return append([]BagEntry(nil), b.entries...)
}

// Map returns the entries as a name→raw map.
func (b *Bag) Map() map[string]string {
	m := make(map[string]string, len(b.entries))
	for _, e := range b.entries {
		m[e.Name] = e.Raw
	}
	return m
}

// Set stores text under name, replacing an existing entry in place.
func (b *Bag) Set(name, text string) { b.put(BagEntry{Name: name, Raw: text}) }

// SetMarkup stores a serialized element under name, replacing an existing entry in place.
func (b *Bag) SetMarkup(name, markup string) {
	b.put(BagEntry{Name: name, Raw: markup, Markup: true})
}

// Delete removes name and reports whether it was present.
func (b *Bag) Delete(name string) bool {
	i, ok := b.index[bagKey(name)]
	if !ok {
		return false
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	delete(b.index, bagKey(name))
	for k, j := range b.index {
		if j > i {
			b.index[k] = j - 1
		}
	}
	return true
}

func (b *Bag) put(e BagEntry) {
	if i, ok := b.index[bagKey(e.Name)]; ok {
		b.entries[i] = e
		return
	}
	b.add(e)
}

// add appends e unless its name is already present; first occurrence wins.
func (b *Bag) add(e BagEntry) bool {
	k := bagKey(e.Name)
	if _, ok := b.index[k]; ok {
		return false
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	b.index[k] = len(b.entries)
	b.entries = append(b.entries, e)
	return true
}
