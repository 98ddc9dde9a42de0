package blueprint

import (
	"fmt"
	"strings"
)

// Entry is one row of a Registry: the element name, its semantic kind and
// the accessor that moves values in and out of a record. Build entries with
// Field or Extension; a literal Entry{Name, Kind} behaves like Extension.
type Entry struct {
	Name string
	Kind Kind

	get   func(Record) any
	set   func(Record, any)
	items *collection
}

// collection describes the nested records held by a KindCollection entry.
type collection struct {
	item     string
	registry func(*Schema) *Registry
	alloc    func() Record
	load     func(owner Record) []Record
	store    func(owner Record, items []Record)
}

// Field binds name to a typed optional field of record type R. The pointer
// type V must match kind (string for KindText, int32 for KindInteger, and so
// on); a mismatch panics, since it can only be a programming error.
//
//	Field("Enabled", KindBoolean, func(b *Block) **bool { return &b.Enabled })
func Field[R Record, V any](name string, kind Kind, ptr func(R) **V) Entry {
	if ptr == nil {
		panic("blueprint.Field: accessor must not be nil")
	}
	var zero V
	if !kindAccepts(kind, zero) {
		panic(fmt.Sprintf("blueprint.Field: %s cannot hold %T", kind, zero))
	}
	return Entry{
		Name: name,
		Kind: kind,
		get: func(r Record) any {
			p := *ptr(r.(R))
			if p == nil {
				return nil
			}
			return *p
		},
		set: func(r Record, v any) {
			dst := ptr(r.(R))
			if v == nil {
				*dst = nil
				return
			}
			x := v.(V)
			*dst = &x
		},
	}
}

// Extension declares a field with no typed Go counterpart. Its value lives in
// the record's Extended map under name.
func Extension(name string, kind Kind) Entry {
	e := Entry{Name: name, Kind: kind}
	e.bindExtension()
	return e
}

func (e *Entry) bindExtension() {
	name := e.Name
	e.get = func(r Record) any { return r.fields().Extended[name] }
	e.set = func(r Record, v any) {
		f := r.fields()
		if v == nil {
			delete(f.Extended, name)
			return
		}
		if f.Extended == nil {
			f.Extended = make(map[string]any)
		}
		f.Extended[name] = v
	}
}

func collectionOf[R Record, I Record](name, item string, registry func(*Schema) *Registry, alloc func() I, ptr func(R) *[]I) Entry {
	return Entry{
		Name: name,
		Kind: KindCollection,
		items: &collection{
			item:     item,
			registry: registry,
			alloc:    func() Record { return alloc() },
			load: func(owner Record) []Record {
				src := *ptr(owner.(R))
				out := make([]Record, len(src))
				for i, it := range src {
					out[i] = it
				}
				return out
			},
			store: func(owner Record, items []Record) {
				if items == nil {
					*ptr(owner.(R)) = nil
					return
				}
				dst := make([]I, len(items))
				for i, it := range items {
					dst[i] = it.(I)
				}
				*ptr(owner.(R)) = dst
			},
		},
	}
}

// Registry is an ordered, immutable table of entries. The order drives
// encoding; lookups by name ignore case. It is safe for concurrent use.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry builds a registry. Names must be non-empty and unique ignoring case.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	var iss Issues
	for _, e := range entries {
		path := RootPath().Elem(e.Name)
		switch {
		case e.Name == "":
			iss = append(iss, RootPath().Issue(CodeInvalidSchema, "entry without a name"))
			continue
		case e.Kind == KindCollection && e.items == nil:
			iss = append(iss, path.Issue(CodeInvalidSchema, "collection entries are built in", "name", e.Name))
			continue
		case e.Kind != KindCollection && e.get == nil:
			e.bindExtension()
		}
		k := strings.ToLower(e.Name)
		if _, dup := r.index[k]; dup {
			iss = append(iss, path.Issue(CodeDuplicateKey, "", "name", e.Name))
			continue
		}
		r.index[k] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// MustRegistry is NewRegistry that panics on error.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// With returns a new registry holding r's entries followed by more.
func (r *Registry) With(more ...Entry) (*Registry, error) {
	all := make([]Entry, 0, len(r.entries)+len(more))
	all = append(all, r.entries...)
	all = append(all, more...)
	return NewRegistry(all...)
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns a copy of the entries in declaration order.
func (r *Registry) Entries() []Entry { return append([]Entry(nil), r.entries...) }

// Names returns the entry names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name
	}
	return out
}

// Lookup finds the entry for name, ignoring case.
func (r *Registry) Lookup(name string) (Entry, bool) {
	i, ok := r.index[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Has reports whether name belongs to the registry, ignoring case.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[strings.ToLower(name)]
	return ok
}

// Get returns the value rec holds for the named entry; ok is false when the
// name is unknown, names a collection, or the field is empty.
func (r *Registry) Get(rec Record, name string) (v any, ok bool) {
	e, found := r.Lookup(name)
	if !found || e.get == nil {
		return nil, false
	}
	v = e.get(rec)
	return v, v != nil
}

// Set stores v into the named field of rec. A nil v empties the field.
func (r *Registry) Set(rec Record, name string, v any) error {
	e, found := r.Lookup(name)
	if !found || e.set == nil {
		return Issues{RootPath().Elem(name).Issue(CodeUnknownKey, "", "name", name)}
	}
	if v != nil && !kindAccepts(e.Kind, v) {
		return Issues{RootPath().Elem(name).Issue(CodeInvalidSchema, fmt.Sprintf("%s cannot hold %T", e.Kind, v), "name", e.Name)}
	}
	e.set(rec, v)
	return nil
}

// kindAccepts reports whether v has the Go type that values of kind use.
func kindAccepts(kind Kind, v any) bool {
	switch v.(type) {
	case string:
		return kind == KindText
	case int32:
		return kind == KindInteger
	case float32:
		return kind == KindFloat
	case int64:
		return kind == KindLong
	case bool:
		return kind == KindBoolean
	case Vector3:
		return kind == KindVector3
	case Vector3I:
		return kind == KindVector3Int
	case Quaternion:
		return kind == KindQuaternion
	case BlockOrientation:
		return kind == KindBlockOrientation
	case Opaque:
		return kind == KindComponentContainer
	case Identity:
		return kind == KindIdentity
	case Placement:
		return kind == KindPlacement
	}
	return false
}
