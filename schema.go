package blueprint

// Schema groups the registries for each record level of a document.
type Schema struct {
	Document   *Registry
	Definition *Registry
	Grid       *Registry
	Block      *Registry
}

// Element names fixed by the document format.
const (
	RootElement       = "Definitions"
	DefinitionElement = "ShipBlueprint"
	GridElement       = "CubeGrid"
	BlockElement      = "MyObjectBuilder_CubeBlock"

	typeAttr = "xsi:type"
	nsXSD    = "http://www.w3.org/2001/XMLSchema"
	nsXSI    = "http://www.w3.org/2001/XMLSchema-instance"
)

var defaultSchema = &Schema{
	Document: MustRegistry(
		collectionOf("ShipBlueprints", DefinitionElement, func(s *Schema) *Registry { return s.Definition },
			func() *Definition { return &Definition{} },
			func(d *Document) *[]*Definition { return &d.ShipBlueprints }),
	),
	Definition: MustRegistry(
		Field("Id", KindIdentity, func(d *Definition) **Identity { return &d.ID }),
		Field("DisplayName", KindText, func(d *Definition) **string { return &d.DisplayName }),
		collectionOf("CubeGrids", GridElement, func(s *Schema) *Registry { return s.Grid },
			func() *Grid { return &Grid{} },
			func(d *Definition) *[]*Grid { return &d.CubeGrids }),
		Field("EnvironmentType", KindText, func(d *Definition) **string { return &d.EnvironmentType }),
		Field("WorkshopId", KindLong, func(d *Definition) **int64 { return &d.WorkshopID }),
		Field("OwnerSteamId", KindLong, func(d *Definition) **int64 { return &d.OwnerSteamID }),
		Field("Points", KindInteger, func(d *Definition) **int32 { return &d.Points }),
	),
	Grid: MustRegistry(
		Field("SubtypeName", KindText, func(g *Grid) **string { return &g.SubtypeName }),
		Field("EntityId", KindLong, func(g *Grid) **int64 { return &g.EntityID }),
		Field("PersistentFlags", KindText, func(g *Grid) **string { return &g.PersistentFlags }),
		Field("PositionAndOrientation", KindPlacement, func(g *Grid) **Placement { return &g.Placement }),
		Field("GridSizeEnum", KindText, func(g *Grid) **string { return &g.GridSizeEnum }),
		collectionOf("CubeBlocks", BlockElement, func(s *Schema) *Registry { return s.Block },
			func() *Block { return &Block{} },
			func(g *Grid) *[]*Block { return &g.CubeBlocks }),
		Field("IsStatic", KindBoolean, func(g *Grid) **bool { return &g.IsStatic }),
		Field("LinearVelocity", KindVector3, func(g *Grid) **Vector3 { return &g.LinearVelocity }),
		Field("AngularVelocity", KindVector3, func(g *Grid) **Vector3 { return &g.AngularVelocity }),
		Field("Handbrake", KindBoolean, func(g *Grid) **bool { return &g.Handbrake }),
		Field("DisplayName", KindText, func(g *Grid) **string { return &g.DisplayName }),
		Field("DestructibleBlocks", KindBoolean, func(g *Grid) **bool { return &g.DestructibleBlocks }),
		Field("IsRespawnGrid", KindBoolean, func(g *Grid) **bool { return &g.IsRespawnGrid }),
		Field("LocalCoordSys", KindInteger, func(g *Grid) **int32 { return &g.LocalCoordSys }),
		Field("IsPowered", KindBoolean, func(g *Grid) **bool { return &g.IsPowered }),
	),
	Block: MustRegistry(
		Field("SubtypeName", KindText, func(b *Block) **string { return &b.SubtypeName }),
		Field("EntityId", KindLong, func(b *Block) **int64 { return &b.EntityID }),
		Field("Min", KindVector3Int, func(b *Block) **Vector3I { return &b.Min }),
		Field("BlockOrientation", KindBlockOrientation, func(b *Block) **BlockOrientation { return &b.BlockOrientation }),
		Field("ColorMaskHSV", KindVector3, func(b *Block) **Vector3 { return &b.ColorMaskHSV }),
		Field("SkinSubtypeId", KindText, func(b *Block) **string { return &b.SkinSubtypeID }),
		Field("Owner", KindLong, func(b *Block) **int64 { return &b.Owner }),
		Field("BuiltBy", KindLong, func(b *Block) **int64 { return &b.BuiltBy }),
		Field("ShareMode", KindText, func(b *Block) **string { return &b.ShareMode }),
		Field("ComponentContainer", KindComponentContainer, func(b *Block) **Opaque { return &b.ComponentContainer }),
		Field("CustomName", KindText, func(b *Block) **string { return &b.CustomName }),
		Field("ShowOnHUD", KindBoolean, func(b *Block) **bool { return &b.ShowOnHUD }),
		Field("ShowInTerminal", KindBoolean, func(b *Block) **bool { return &b.ShowInTerminal }),
		Field("ShowInToolbarConfig", KindBoolean, func(b *Block) **bool { return &b.ShowInToolbarConfig }),
		Field("ShowInInventory", KindBoolean, func(b *Block) **bool { return &b.ShowInInventory }),
		Field("Enabled", KindBoolean, func(b *Block) **bool { return &b.Enabled }),
		Field("IntegrityPercent", KindFloat, func(b *Block) **float32 { return &b.IntegrityPercent }),
		Field("BuildPercent", KindFloat, func(b *Block) **float32 { return &b.BuildPercent }),
	),
}

// DefaultSchema returns the built-in registries. The value is shared and must
// not be modified; derive variants with the With* methods.
func DefaultSchema() *Schema { return defaultSchema }

// WithDefinition returns a copy of s whose definition registry is extended by entries.
func (s *Schema) WithDefinition(entries ...Entry) (*Schema, error) {
	r, err := s.Definition.With(entries...)
	if err != nil {
		return nil, err
	}
	out := *s
	out.Definition = r
	return &out, nil
}

// WithGrid returns a copy of s whose grid registry is extended by entries.
func (s *Schema) WithGrid(entries ...Entry) (*Schema, error) {
	r, err := s.Grid.With(entries...)
	if err != nil {
		return nil, err
	}
	out := *s
	out.Grid = r
	return &out, nil
}

// WithBlock returns a copy of s whose block registry is extended by entries.
func (s *Schema) WithBlock(entries ...Entry) (*Schema, error) {
	r, err := s.Block.With(entries...)
	if err != nil {
		return nil, err
	}
	out := *s
	out.Block = r
	return &out, nil
}

// registryFor returns the registry that maps records of r's type.
func (s *Schema) registryFor(r Record) *Registry {
	switch r.(type) {
	case *Document:
		return s.Document
	case *Definition:
		return s.Definition
	case *Grid:
		return s.Grid
	default:
		return s.Block
	}
}
