// Package export renders a decoded blueprint as a flat list of records for
// inspection in other tools.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/blueprint"
)

// Node is one record of the graph with its populated fields and unmapped bag.
type Node struct {
	Path     string            `json:"path" yaml:"path" cbor:"path"`
	Record   string            `json:"record" yaml:"record" cbor:"record"`
	Type     string            `json:"type,omitempty" yaml:"type,omitempty" cbor:"type,omitempty"`
	Fields   map[string]any    `json:"fields,omitempty" yaml:"fields,omitempty" cbor:"fields,omitempty"`
	Unmapped map[string]string `json:"unmapped,omitempty" yaml:"unmapped,omitempty" cbor:"unmapped,omitempty"`
}

// Flatten lists the records of doc parents first, in document order.
func Flatten(s *blueprint.Schema, doc *blueprint.Document) []Node {
	var out []Node
	s.Walk(doc, func(path blueprint.PathRef, r blueprint.Record) {
		n := Node{Path: path.String()}
		switch v := r.(type) {
		case *blueprint.Document:
			n.Record = "document"
		case *blueprint.Definition:
			n.Record, n.Type = "definition", v.Type
		case *blueprint.Grid:
			n.Record = "grid"
		case *blueprint.Block:
			n.Record, n.Type = "block", v.Type
		}
		if vals := s.Values(r); len(vals) > 0 {
			n.Fields = make(map[string]any, len(vals))
			for _, fv := range vals {
				n.Fields[fv.Name] = plain(fv.Value)
			}
		}
		if bag := blueprint.Unmapped(r); bag.Len() > 0 {
			n.Unmapped = bag.Map()
		}
		out = append(out, n)
	})
	return out
}

// plain converts opaque subtrees to strings so every encoder prints them as text.
func plain(v any) any {
	if o, ok := v.(blueprint.Opaque); ok {
		return string(o)
	}
	return v
}

// Render writes nodes to w in format. indent is the number of spaces per
// level for the text formats; zero or negative writes compact output.
func Render(w io.Writer, format string, indent int, nodes []Node) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		return enc.Encode(nodes)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		// Sorted map keys keep the output stable.
		opts := cbor.EncOptions{Sort: cbor.SortCoreDeterministic}
		em, err := opts.EncMode()
		if err != nil {
			return err
		}
		return em.NewEncoder(w).Encode(nodes)
	case "spew":
		cfg := spew.ConfigState{Indent: " ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
		if indent > 0 {
			cfg.Indent = strings.Repeat(" ", indent)
		}
		cfg.Fdump(w, nodes)
		return nil
	}
	return fmt.Errorf("export: unsupported format %q", format)
}
