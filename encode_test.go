package blueprint_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/blueprint"
)

// Decoding the encoded form of a decoded document yields the same graph.
func TestRoundTrip_Idempotent(t *testing.T) {
	ctx := context.Background()
	blankLeaves := `<ComponentContainer><Name> </Name><X>1</X></ComponentContainer>` +
		`<Unknown a="1"><Label> </Label></Unknown><Spacer>  </Spacer>`
	samples := map[string][]byte{
		"shuttle":      readShuttle(t),
		"unknown":      docWithBlock(`<FooBar>42</FooBar><Nested a="1"><Deep>x</Deep></Nested>`),
		"malformed":    docWithBlock(`<Enabled>notabool</Enabled>`),
		"empty":        []byte(`<Definitions/>`),
		"blank leaves": docWithBlock(blankLeaves),
	}
	for name, data := range samples {
		t.Run(name, func(t *testing.T) {
			first := decodeBytes(t, data)
			out, err := blueprint.Marshal(ctx, first)
			require.NoError(t, err)
			second := decodeBytes(t, out)
			require.Equal(t, first, second)

			// A second encode is byte-stable.
			out2, err := blueprint.Marshal(ctx, second)
			require.NoError(t, err)
			require.Equal(t, string(out), string(out2))
		})
	}
}

// The unknown element is re-emitted under its block.
func TestEncode_ReemitsUnmappedVerbatim(t *testing.T) {
	doc := decodeBytes(t, docWithBlock(`<SubtypeName>X</SubtypeName><FooBar>42</FooBar>`))
	out, err := blueprint.Marshal(context.Background(), doc)
	require.NoError(t, err)
	s := string(out)

	blockStart := strings.Index(s, "<MyObjectBuilder_CubeBlock")
	blockEnd := strings.Index(s, "</MyObjectBuilder_CubeBlock>")
	require.Positive(t, blockStart)
	foo := strings.Index(s, "<FooBar>42</FooBar>")
	require.Greater(t, foo, blockStart)
	require.Less(t, foo, blockEnd)
}

func TestEncode_RegistryOrderThenBag(t *testing.T) {
	// Source order: bag field first, registry fields reversed.
	doc := decodeBytes(t, docWithBlock(`<Zeta>1</Zeta><Enabled>true</Enabled><CustomName>Door</CustomName><SubtypeName>LargeDoor</SubtypeName>`))
	out, err := blueprint.Marshal(context.Background(), doc)
	require.NoError(t, err)
	s := string(out)

	order := []string{"<SubtypeName>", "<CustomName>", "<Enabled>", "<Zeta>"}
	last := -1
	for _, tag := range order {
		i := strings.Index(s, tag)
		require.Greater(t, i, last, tag)
		last = i
	}
	require.NotContains(t, s, "<EntityId", "empty fields are omitted")
}

func TestEncode_OpaqueSubtreeAtRegistryPosition(t *testing.T) {
	doc := decodeBytes(t, readShuttle(t))
	reactor := doc.ShipBlueprints[0].CubeGrids[0].CubeBlocks[1]

	out, err := blueprint.Marshal(context.Background(), doc)
	require.NoError(t, err)
	s := string(out)
	share := strings.Index(s, "<ShareMode>None</ShareMode>")
	container := strings.Index(s, "<ComponentContainer>")
	custom := strings.Index(s, "<CustomName>Small Reactor</CustomName>")
	require.True(t, share < container && container < custom)
	require.Contains(t, s, `<Component xsi:type="MyObjectBuilder_TimerComponent">`)

	again := decodeBytes(t, out)
	require.Equal(t, *reactor.ComponentContainer, *again.ShipBlueprints[0].CubeGrids[0].CubeBlocks[1].ComponentContainer)
}

func TestEncode_ConsumerMutations(t *testing.T) {
	ctx := context.Background()
	doc := decodeBytes(t, readShuttle(t))
	grid := doc.ShipBlueprints[0].CubeGrids[0]
	armor := grid.CubeBlocks[0]

	armor.Enabled = blueprint.Ptr(false)
	armor.ColorMaskHSV = nil
	armor.Unmapped.Set("Note", "hand-added")
	grid.CubeBlocks[1].Unmapped.Delete("Inventory")
	grid.CubeBlocks = append(grid.CubeBlocks, &blueprint.Block{
		Type:        "MyObjectBuilder_CubeBlock",
		SubtypeName: blueprint.Ptr("SmallBlockArmorSlope"),
		Min:         &blueprint.Vector3I{X: 1, Y: 0, Z: 0},
	})

	out, err := blueprint.Marshal(ctx, doc)
	require.NoError(t, err)
	again := decodeBytes(t, out)
	blocks := again.ShipBlueprints[0].CubeGrids[0].CubeBlocks
	require.Len(t, blocks, 3)
	require.False(t, *blocks[0].Enabled)
	require.Nil(t, blocks[0].ColorMaskHSV)
	note, ok := blocks[0].Unmapped.Get("Note")
	require.True(t, ok)
	require.Equal(t, "hand-added", note)
	require.False(t, blocks[1].Unmapped.Has("Inventory"))
	require.Equal(t, "SmallBlockArmorSlope", *blocks[2].SubtypeName)
}

func TestEncode_BlankLeavesKeepTheirText(t *testing.T) {
	doc := decodeBytes(t, docWithBlock(`<ComponentContainer><Name> </Name><X>1</X></ComponentContainer><Unknown a="1"><Label> </Label></Unknown>`))
	out, err := blueprint.Marshal(context.Background(), doc)
	require.NoError(t, err)
	require.Contains(t, string(out), "<Name> </Name>")
	require.Contains(t, string(out), "<Label> </Label>")
	require.NotContains(t, string(out), "<Name/>")
}

// A bag entry survives encoding with a schema that gained its name after decode.
func TestEncode_GrownSchemaKeepsBagEntryForEmptyField(t *testing.T) {
	ctx := context.Background()
	doc := decodeBytes(t, docWithBlock(`<FooBar>42</FooBar>`))
	grown, err := blueprint.DefaultSchema().WithBlock(blueprint.Extension("FooBar", blueprint.KindInteger))
	require.NoError(t, err)

	out, err := blueprint.Marshal(ctx, doc, blueprint.EncodeOpt{Schema: grown})
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(out), "<FooBar>42</FooBar>"))

	again := decodeBytes(t, out, blueprint.DecodeOpt{Schema: grown})
	v, ok := grown.Block.Get(firstBlock(t, again), "FooBar")
	require.True(t, ok)
	require.Equal(t, int32(42), v)

	// Once the field is populated it owns the element.
	blk := firstBlock(t, doc)
	require.NoError(t, grown.Block.Set(blk, "FooBar", int32(7)))
	out, err = blueprint.Marshal(ctx, doc, blueprint.EncodeOpt{Schema: grown})
	require.NoError(t, err)
	require.Contains(t, string(out), "<FooBar>7</FooBar>")
	require.NotContains(t, string(out), "<FooBar>42</FooBar>")
}

func TestEncode_BagNameClaimedByRegistryIsSkipped(t *testing.T) {
	doc := decodeBytes(t, docWithBlock(`<Enabled>true</Enabled>`))
	blk := firstBlock(t, doc)
	blk.Unmapped.Set("enabled", "false")

	out, err := blueprint.Marshal(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(out), "<Enabled>"))
	require.NotContains(t, string(out), "<enabled>")
}

func TestEncode_StripAndIndent(t *testing.T) {
	ctx := context.Background()
	doc := decodeBytes(t, docWithBlock(`<FooBar>42</FooBar><Enabled>true</Enabled>`))

	out, err := blueprint.Marshal(ctx, doc, blueprint.EncodeOpt{Unknown: blueprint.UnknownStrip, Indent: -1})
	require.NoError(t, err)
	require.NotContains(t, string(out), "FooBar")
	require.NotContains(t, string(out), "\n  <")
	require.True(t, strings.HasPrefix(string(out), `<?xml version="1.0"?>`))
	require.Contains(t, string(out), `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)

	var buf bytes.Buffer
	require.NoError(t, blueprint.Write(ctx, &buf, doc))
	require.Contains(t, buf.String(), "\n  <ShipBlueprints>")
}

func TestEncode_BrokenOpaqueIsReported(t *testing.T) {
	doc := decodeBytes(t, docWithBlock(`<Enabled>true</Enabled>`))
	blk := firstBlock(t, doc)
	broken := blueprint.Opaque("not markup")
	blk.ComponentContainer = &broken

	_, err := blueprint.Marshal(context.Background(), doc)
	iss, ok := blueprint.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, blueprint.CodeParseError, iss[0].Code)
	require.True(t, strings.HasSuffix(iss[0].Path, "/ComponentContainer"))
}

func TestEncode_NilDocument(t *testing.T) {
	out, err := blueprint.Marshal(context.Background(), nil)
	require.NoError(t, err)
	doc := decodeBytes(t, out)
	require.Empty(t, doc.ShipBlueprints)
}
