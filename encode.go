package blueprint

import (
	"context"

	"github.com/beevik/etree"
)

// Encode rebuilds a document tree from doc. Registry fields are emitted in
// declaration order and empty fields are omitted; each record's Unmapped bag
// follows its registry fields. The source order of elements is therefore not
// reproduced, only their content.
func Encode(ctx context.Context, doc *Document, opts ...EncodeOpt) (*etree.Document, error) {
	opt := lastEncodeOpt(opts)
	e := &encoder{schema: opt.Schema, opt: opt}

	tree := etree.NewDocument()
	tree.CreateProcInst("xml", `version="1.0"`)
	root := tree.CreateElement(RootElement)
	root.CreateAttr("xmlns:xsd", nsXSD)
	root.CreateAttr("xmlns:xsi", nsXSI)
	if doc != nil {
		if err := e.record(doc, root, RootPath().Elem(RootElement)); err != nil {
			return nil, err
		}
	}
	if opt.Indent > 0 {
		tree.IndentWithSettings(&etree.IndentSettings{Spaces: opt.Indent, PreserveLeafWhitespace: true})
	}
	return tree, nil
}

type encoder struct {
	schema *Schema
	opt    EncodeOpt
}

func (e *encoder) record(r Record, el *etree.Element, path PathRef) error {
	reg := e.schema.registryFor(r)
	if t, ok := r.(discriminated); ok && *t.discriminator() != "" {
		el.CreateAttr(typeAttr, *t.discriminator())
	}
	for _, ent := range reg.entries {
		if ent.Kind == KindCollection {
			if err := e.collection(r, ent, el.CreateElement(ent.Name), path.Elem(ent.Name)); err != nil {
				return err
			}
			continue
		}
		v := ent.get(r)
		if v == nil {
			continue
		}
		if err := writeValue(el, ent.Name, ent.Kind, v); err != nil {
			return singleIssue(CodeParseError, path.Elem(ent.Name).String(), "cannot replay opaque subtree", err)
		}
	}
	if e.opt.Unknown == UnknownStrip {
		return nil
	}
	return e.preserve(r, reg, el, path)
}

func (e *encoder) collection(owner Record, ent Entry, container *etree.Element, path PathRef) error {
	for i, it := range ent.items.load(owner) {
		if isNilRecord(it) {
			continue
		}
		child := container.CreateElement(ent.items.item)
		if err := e.record(it, child, path.Item(ent.items.item, i)); err != nil {
			return err
		}
	}
	return nil
}

func isNilRecord(r Record) bool {
	switch v := r.(type) {
	case *Document:
		return v == nil
	case *Definition:
		return v == nil
	case *Grid:
		return v == nil
	case *Block:
		return v == nil
	}
	return r == nil
}
