package blueprint

import (
	"context"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/reoring/blueprint/i18n"
	"github.com/reoring/blueprint/internal/xmltree"
)

// Decode reads the document from src and maps it onto a fresh graph. Apart
// from an unreadable or missing source, decoding never fails: empty or
// malformed values leave their field empty, and elements outside the
// registries are kept in the owning record's Unmapped bag.
func Decode(ctx context.Context, src Source, opts ...DecodeOpt) (*Document, error) {
	tree, err := src.Tree()
	if err != nil {
		return nil, err
	}
	return DecodeTree(ctx, tree, opts...)
}

// DecodeTree maps an already parsed tree.
func DecodeTree(ctx context.Context, tree *etree.Document, opts ...DecodeOpt) (*Document, error) {
	root := tree.Root()
	if root == nil {
		return nil, singleIssue(CodeParseError, "/", "document has no root element", nil)
	}
	opt := lastDecodeOpt(opts)
	d := &decoder{schema: opt.Schema, opt: opt, log: resolveLogger(ctx, opt)}
	doc := &Document{}
	d.record(doc, root, RootPath().Elem(xmltree.Name(root)))
	return doc, nil
}

func resolveLogger(ctx context.Context, opt DecodeOpt) zerolog.Logger {
	if opt.Logger != nil {
		return *opt.Logger
	}
	return *zerolog.Ctx(ctx)
}

type decoder struct {
	schema *Schema
	opt    DecodeOpt
	log    zerolog.Logger
}

// record fills r from el: registry entries first, in declaration order, then
// every remaining child element goes to the Unmapped bag.
func (d *decoder) record(r Record, el *etree.Element, path PathRef) {
	reg := d.schema.registryFor(r)
	if t, ok := r.(discriminated); ok {
		*t.discriminator() = attr(el, typeAttr)
	}
	for _, e := range reg.entries {
		if e.Kind == KindCollection {
			d.collection(r, e, xmltree.Child(el, e.Name), path.Elem(e.Name))
			continue
		}
		e.set(r, readValue(e, el))
	}

	var found []BagEntry
	seen := Bag{}
	for _, c := range el.ChildElements() {
		name := xmltree.Name(c)
		if reg.Has(name) {
			continue
		}
		entry := capture(name, c)
		if !seen.add(entry) {
			d.issue(path.Elem(name).Issue(CodeDuplicateKey, "", "name", name))
			continue
		}
		found = append(found, entry)
		if d.opt.Unknown == UnknownPassthrough {
			r.fields().Unmapped.add(entry)
		}
	}
	if len(found) > 0 {
		d.reportUnmapped(r, path, found)
	}
}

func (d *decoder) collection(owner Record, e Entry, container *etree.Element, path PathRef) {
	var children []*etree.Element
	if container != nil {
		children = container.ChildElements()
	}
	if len(children) == 0 {
		// An absent and an empty container both decode to a nil slice.
		e.items.store(owner, nil)
		return
	}
	items := make([]Record, 0, len(children))
	for i, c := range children {
		it := e.items.alloc()
		d.record(it, c, path.Item(xmltree.Name(c), i))
		items = append(items, it)
	}
	e.items.store(owner, items)
}

// capture keeps a plain element as its text and anything richer as markup.
func capture(name string, c *etree.Element) BagEntry {
	if xmltree.IsLeaf(c) {
		return BagEntry{Name: name, Raw: c.Text()}
	}
	markup, err := xmltree.Capture(c)
	if err != nil {
		return BagEntry{Name: name, Raw: c.Text()}
	}
	return BagEntry{Name: name, Raw: markup, Markup: true}
}

// reportUnmapped surfaces unmapped elements. It only observes: the graph is
// already complete when it runs.
func (d *decoder) reportUnmapped(r Record, path PathRef, found []BagEntry) {
	if d.opt.IssueSink != nil {
		for _, e := range found {
			d.opt.IssueSink(path.Elem(e.Name).Issue(CodeUnknownKey,
				i18n.T(CodeUnknownKey, map[string]string{"name": e.Name}),
				"name", e.Name, "value", e.Raw))
		}
	}
	b, ok := r.(*Block)
	if !ok {
		d.log.Debug().Str("path", path.String()).Int("count", len(found)).Msg("record has fields outside the registry")
		return
	}
	ev := d.log.Warn()
	if !ev.Enabled() {
		return
	}
	unmapped := zerolog.Dict()
	for _, e := range found {
		unmapped.Str(e.Name, e.Raw)
	}
	ev = ev.Str("path", path.String())
	if b.SubtypeName != nil {
		ev = ev.Str("subtype", *b.SubtypeName)
	}
	if b.EntityID != nil {
		ev = ev.Int64("entity_id", *b.EntityID)
	}
	ev.Dict("unmapped", unmapped).Msg("block has fields outside the registry")
}

func (d *decoder) issue(it Issue) {
	if d.opt.IssueSink != nil {
		d.opt.IssueSink(it)
	}
}
