package blueprint

// Package blueprint provides:
//
// - Decoding of blueprint documents (bp.sbc) into a typed graph (Decode/LoadDir)
// - Encoding of the graph back into a document (Encode/Marshal/SaveDir)
// - A Registry per record level that both directions consult, so a field name
//   known to one side is known to the other
// - Lossless capture of elements outside the registries in each record's
//   Unmapped bag, re-emitted after the registry fields on encode
// - Opaque passthrough of component containers
//
// Design policy:
// - Decoding is forgiving. Empty or malformed values leave the field empty; the
//   only fatal condition is a missing document.
// - Unmapped block fields are reported as advisory warnings through zerolog and
//   the optional IssueSink; reporting never changes the returned graph.
// - Value coercers live in codec/, XML tree helpers in internal/xmltree, and the
//   CLI in cmd/blueprint.
//
// Typical usage:
//
//  bp, err := blueprint.LoadDir(ctx, "Blueprints/local/Shuttle")
//  blk := bp.Document.ShipBlueprints[0].CubeGrids[0].CubeBlocks[0]
//  blk.Enabled = blueprint.Ptr(false)
//  err = blueprint.SaveDir(ctx, bp, "Blueprints/local/Shuttle")
//
// Growing the schema moves a field from the bag into a typed slot:
//
//  s, _ := blueprint.DefaultSchema().WithBlock(blueprint.Extension("FooBar", blueprint.KindInteger))
//  doc, _ := blueprint.Decode(ctx, src, blueprint.DecodeOpt{Schema: s})
//  v, ok := s.Block.Get(doc.ShipBlueprints[0].CubeGrids[0].CubeBlocks[0], "FooBar")
//
