package blueprint

import (
	"github.com/beevik/etree"

	"github.com/reoring/blueprint/internal/xmltree"
)

// preserve appends r's Unmapped bag to el, one element per entry, in bag
// order:
//   - text entries become <Name>raw</Name>;
//   - markup entries are parsed and inserted as captured, renamed to Name;
//   - entries whose name the registry claims are skipped when that field is
//     populated or is a collection; an empty claimed field leaves the entry
//     to be written as captured.
func (e *encoder) preserve(r Record, reg *Registry, el *etree.Element, path PathRef) error {
	for _, ent := range r.fields().Unmapped.entries {
		if claimed(r, reg, ent.Name) {
			continue
		}
		if !ent.Markup {
			el.CreateElement(ent.Name).SetText(ent.Raw)
			continue
		}
		if _, err := xmltree.Replay(el, ent.Raw, ent.Name); err != nil {
			return singleIssue(CodeParseError, path.Elem(ent.Name).String(), "cannot replay unmapped markup", err)
		}
	}
	return nil
}

func claimed(r Record, reg *Registry, name string) bool {
	e, ok := reg.Lookup(name)
	if !ok {
		return false
	}
	if e.Kind == KindCollection {
		return true
	}
	return e.get != nil && e.get(r) != nil
}
