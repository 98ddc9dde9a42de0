package blueprint

import (
	"github.com/beevik/etree"

	"github.com/reoring/blueprint/codec"
	"github.com/reoring/blueprint/internal/xmltree"
)

// readValue locates the element for e under el and coerces it. It returns nil
// for a missing element and for content the kind cannot represent.
func readValue(e Entry, el *etree.Element) any {
	c := xmltree.Child(el, e.Name)
	if c == nil {
		return nil
	}
	return coerceElement(e.Kind, c)
}

func coerceElement(kind Kind, c *etree.Element) any {
	text := c.Text()
	switch kind {
	case KindText:
		return scalar(text, codec.Text)
	case KindInteger:
		return scalar(text, codec.Int32)
	case KindFloat:
		return scalar(text, codec.Float32)
	case KindLong:
		return scalar(text, codec.Int64)
	case KindBoolean:
		return scalar(text, codec.Bool)
	case KindVector3:
		if v := readVector3(c); v != nil {
			return *v
		}
	case KindVector3Int:
		x, okx := codec.Int32(attr(c, "x"))
		y, oky := codec.Int32(attr(c, "y"))
		z, okz := codec.Int32(attr(c, "z"))
		if okx && oky && okz {
			return Vector3I{X: x, Y: y, Z: z}
		}
	case KindQuaternion:
		if q := readQuaternion(c); q != nil {
			return *q
		}
	case KindBlockOrientation:
		fwd, up := attr(c, "Forward"), attr(c, "Up")
		if fwd != "" && up != "" {
			return BlockOrientation{Forward: fwd, Up: up}
		}
	case KindComponentContainer:
		if s, err := xmltree.Capture(c); err == nil {
			return Opaque(s)
		}
	case KindIdentity:
		typ, okt := xmltree.Attr(c, "Type")
		sub, oks := xmltree.Attr(c, "Subtype")
		if okt || oks {
			return Identity{Type: typ, Subtype: sub}
		}
	case KindPlacement:
		p := Placement{
			Position:    readVector3(xmltree.Child(c, "Position")),
			Forward:     readVector3(xmltree.Child(c, "Forward")),
			Up:          readVector3(xmltree.Child(c, "Up")),
			Orientation: readQuaternion(xmltree.Child(c, "Orientation")),
		}
		if !p.empty() {
			return p
		}
	}
	return nil
}

func scalar[T any](text string, fn codec.Func[T]) any {
	v, ok := fn(text)
	if !ok {
		return nil
	}
	return v
}

func attr(el *etree.Element, name string) string {
	v, _ := xmltree.Attr(el, name)
	return v
}

func readVector3(c *etree.Element) *Vector3 {
	if c == nil {
		return nil
	}
	x, okx := codec.Float32(attr(c, "x"))
	y, oky := codec.Float32(attr(c, "y"))
	z, okz := codec.Float32(attr(c, "z"))
	if !okx || !oky || !okz {
		return nil
	}
	return &Vector3{X: x, Y: y, Z: z}
}

func readQuaternion(c *etree.Element) *Quaternion {
	if c == nil {
		return nil
	}
	var q Quaternion
	for _, part := range []struct {
		name string
		dst  *float32
	}{{"X", &q.X}, {"Y", &q.Y}, {"Z", &q.Z}, {"W", &q.W}} {
		raw := xmltree.ChildText(c, part.name)
		v := codec.Optional(raw, codec.Float32)
		if v == nil {
			return nil
		}
		*part.dst = *v
	}
	return &q
}

// writeValue appends the element for a non-empty value v of the given kind.
func writeValue(parent *etree.Element, name string, kind Kind, v any) error {
	switch kind {
	case KindText:
		parent.CreateElement(name).SetText(v.(string))
	case KindInteger:
		parent.CreateElement(name).SetText(codec.FormatInt32(v.(int32)))
	case KindFloat:
		parent.CreateElement(name).SetText(codec.FormatFloat32(v.(float32)))
	case KindLong:
		parent.CreateElement(name).SetText(codec.FormatInt64(v.(int64)))
	case KindBoolean:
		parent.CreateElement(name).SetText(codec.FormatBool(v.(bool)))
	case KindVector3:
		writeVector3(parent.CreateElement(name), v.(Vector3))
	case KindVector3Int:
		vi := v.(Vector3I)
		c := parent.CreateElement(name)
		c.CreateAttr("x", codec.FormatInt32(vi.X))
		c.CreateAttr("y", codec.FormatInt32(vi.Y))
		c.CreateAttr("z", codec.FormatInt32(vi.Z))
	case KindQuaternion:
		writeQuaternion(parent.CreateElement(name), v.(Quaternion))
	case KindBlockOrientation:
		o := v.(BlockOrientation)
		c := parent.CreateElement(name)
		c.CreateAttr("Forward", o.Forward)
		c.CreateAttr("Up", o.Up)
	case KindComponentContainer:
		if _, err := xmltree.Replay(parent, string(v.(Opaque)), name); err != nil {
			return err
		}
	case KindIdentity:
		id := v.(Identity)
		c := parent.CreateElement(name)
		c.CreateAttr("Type", id.Type)
		c.CreateAttr("Subtype", id.Subtype)
	case KindPlacement:
		p := v.(Placement)
		c := parent.CreateElement(name)
		if p.Position != nil {
			writeVector3(c.CreateElement("Position"), *p.Position)
		}
		if p.Forward != nil {
			writeVector3(c.CreateElement("Forward"), *p.Forward)
		}
		if p.Up != nil {
			writeVector3(c.CreateElement("Up"), *p.Up)
		}
		if p.Orientation != nil {
			writeQuaternion(c.CreateElement("Orientation"), *p.Orientation)
		}
	}
	return nil
}

func writeVector3(c *etree.Element, v Vector3) {
	c.CreateAttr("x", codec.FormatFloat32(v.X))
	c.CreateAttr("y", codec.FormatFloat32(v.Y))
	c.CreateAttr("z", codec.FormatFloat32(v.Z))
}

func writeQuaternion(c *etree.Element, q Quaternion) {
	c.CreateElement("X").SetText(codec.FormatFloat32(q.X))
	c.CreateElement("Y").SetText(codec.FormatFloat32(q.Y))
	c.CreateElement("Z").SetText(codec.FormatFloat32(q.Z))
	c.CreateElement("W").SetText(codec.FormatFloat32(q.W))
}
