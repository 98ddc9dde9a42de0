package blueprint

// Vector3 is a float triple stored as x/y/z attributes.
type Vector3 struct{ X, Y, Z float32 }

// Vector3I is an integer triple stored as x/y/z attributes.
type Vector3I struct{ X, Y, Z int32 }

// Quaternion is a rotation stored as X/Y/Z/W child elements.
type Quaternion struct{ X, Y, Z, W float32 }

// BlockOrientation names the base directions a block faces.
type BlockOrientation struct {
	Forward string
	Up      string
}

// Identity is the kind/subtype pair of a definition (<Id Type=".." Subtype=".."/>).
type Identity struct {
	Type    string
	Subtype string
}

// Placement is a position with forward/up directions and a rotation. Every
// part is optional.
type Placement struct {
	Position    *Vector3
	Forward     *Vector3
	Up          *Vector3
	Orientation *Quaternion
}

func (p Placement) empty() bool {
	return p.Position == nil && p.Forward == nil && p.Up == nil && p.Orientation == nil
}

// Opaque is a subtree the codec carries without modeling: the serialized XML
// of the element, nested children included.
type Opaque string

// Record is implemented by every mapped node of the graph. The method set is
// closed: records are Document, Definition, Grid and Block.
type Record interface {
	fields() *Fields
}

// Fields is embedded in every record. Extended holds the values of registry
// entries that have no typed Go field; Unmapped holds the elements no registry
// entry claims.
type Fields struct {
	Extended map[string]any
	Unmapped Bag
}

func (f *Fields) fields() *Fields { return f }

// discriminated records carry an xsi:type attribute naming their concrete kind.
type discriminated interface {
	Record
	discriminator() *string
}

// Document is the root container.
type Document struct {
	Fields
	ShipBlueprints []*Definition
}

// Definition is one blueprint entry (a ship or station design).
type Definition struct {
	Fields
	// Type is the xsi:type discriminator.
	Type            string
	ID              *Identity
	DisplayName     *string
	CubeGrids       []*Grid
	EnvironmentType *string
	WorkshopID      *int64
	OwnerSteamID    *int64
	Points          *int32
}

func (d *Definition) discriminator() *string { return &d.Type }

// Grid is one rigid structure made of blocks.
type Grid struct {
	Fields
	SubtypeName        *string
	EntityID           *int64
	PersistentFlags    *string
	Placement          *Placement
	GridSizeEnum       *string
	CubeBlocks         []*Block
	IsStatic           *bool
	LinearVelocity     *Vector3
	AngularVelocity    *Vector3
	Handbrake          *bool
	DisplayName        *string
	DestructibleBlocks *bool
	IsRespawnGrid      *bool
	LocalCoordSys      *int32
	IsPowered          *bool
}

// Block is one placed component instance.
type Block struct {
	Fields
	// Type is the xsi:type discriminator.
	Type                string
	SubtypeName         *string
	EntityID            *int64
	Min                 *Vector3I
	BlockOrientation    *BlockOrientation
	ColorMaskHSV        *Vector3
	SkinSubtypeID       *string
	Owner               *int64
	BuiltBy             *int64
	ShareMode           *string
	ComponentContainer  *Opaque
	CustomName          *string
	ShowOnHUD           *bool
	ShowInTerminal      *bool
	ShowInToolbarConfig *bool
	ShowInInventory     *bool
	Enabled             *bool
	IntegrityPercent    *float32
	BuildPercent        *float32
}

func (b *Block) discriminator() *string { return &b.Type }

// Ptr returns a pointer to v. Handy when filling optional fields by hand.
func Ptr[T any](v T) *T { return &v }
