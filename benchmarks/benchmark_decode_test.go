package blueprint_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/reoring/blueprint"
)

// ---- Helpers ----

// generateGrid returns a document with one grid of numBlocks blocks, each
// carrying extraFields elements the registry does not know.
func generateGrid(numBlocks, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numBlocks * (512 + extraFields*32))
	buf.WriteString(`<?xml version="1.0"?>
<Definitions xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><ShipBlueprints>
<ShipBlueprint xsi:type="MyObjectBuilder_ShipBlueprintDefinition"><CubeGrids><CubeGrid>
<GridSizeEnum>Large</GridSizeEnum><CubeBlocks>`)
	for i := 0; i < numBlocks; i++ {
		fmt.Fprintf(&buf, `<MyObjectBuilder_CubeBlock xsi:type="MyObjectBuilder_CubeBlock">`+
			`<SubtypeName>LargeBlockArmorBlock</SubtypeName><EntityId>%d</EntityId>`+
			`<Min x="%d" y="0" z="0"/><BlockOrientation Forward="Forward" Up="Up"/>`+
			`<ColorMaskHSV x="0" y="-0.8" z="0.55"/><Enabled>true</Enabled>`, 1000+i, i)
		for k := 0; k < extraFields; k++ {
			fmt.Fprintf(&buf, "<Extra%d>%d</Extra%d>", k, i, k)
		}
		buf.WriteString(`</MyObjectBuilder_CubeBlock>`)
	}
	buf.WriteString(`</CubeBlocks></CubeGrid></CubeGrids></ShipBlueprint></ShipBlueprints></Definitions>`)
	return buf.Bytes()
}

func BenchmarkDecode(b *testing.B) {
	ctx := context.Background()
	for _, tc := range []struct{ blocks, extra int }{{100, 0}, {1000, 0}, {1000, 8}} {
		data := generateGrid(tc.blocks, tc.extra)
		b.Run(fmt.Sprintf("blocks=%d/extra=%d", tc.blocks, tc.extra), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := blueprint.Unmarshal(ctx, data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	ctx := context.Background()
	data := generateGrid(1000, 4)
	doc, err := blueprint.Unmarshal(ctx, data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := blueprint.Marshal(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}
