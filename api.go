package blueprint

import (
	"context"
	"fmt"
	"io"
)

// Unmarshal decodes a document held in memory.
func Unmarshal(ctx context.Context, data []byte, opts ...DecodeOpt) (*Document, error) {
	return Decode(ctx, XMLBytes(data), opts...)
}

// Marshal encodes doc into document bytes.
func Marshal(ctx context.Context, doc *Document, opts ...EncodeOpt) ([]byte, error) {
	tree, err := Encode(ctx, doc, opts...)
	if err != nil {
		return nil, err
	}
	return tree.WriteToBytes()
}

// Write encodes doc to w.
func Write(ctx context.Context, w io.Writer, doc *Document, opts ...EncodeOpt) error {
	tree, err := Encode(ctx, doc, opts...)
	if err != nil {
		return err
	}
	if _, err := tree.WriteTo(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// FieldValue is one populated registry field of a record.
type FieldValue struct {
	Name  string
	Kind  Kind
	Value any
}

// Values lists the populated registry fields of r in declaration order.
// Collections are left out; walk them through the typed fields.
func (s *Schema) Values(r Record) []FieldValue {
	reg := s.registryFor(r)
	out := make([]FieldValue, 0, reg.Len())
	for _, e := range reg.entries {
		if e.Kind == KindCollection {
			continue
		}
		if v := e.get(r); v != nil {
			out = append(out, FieldValue{Name: e.Name, Kind: e.Kind, Value: v})
		}
	}
	return out
}

// Walk calls fn for every record of doc, parents before children, with the
// element path of each record.
func (s *Schema) Walk(doc *Document, fn func(path PathRef, r Record)) {
	s.walk(doc, RootPath().Elem(RootElement), fn)
}

func (s *Schema) walk(r Record, path PathRef, fn func(PathRef, Record)) {
	fn(path, r)
	for _, e := range s.registryFor(r).entries {
		if e.Kind != KindCollection {
			continue
		}
		for i, it := range e.items.load(r) {
			if isNilRecord(it) {
				continue
			}
			s.walk(it, path.Elem(e.Name).Item(e.items.item, i), fn)
		}
	}
}

// Unmapped returns the Unmapped bag of any record.
func Unmapped(r Record) *Bag { return &r.fields().Unmapped }
