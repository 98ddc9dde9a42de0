package blueprint_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blueprint"
)

const shuttleDir = "testdata/shuttle"

// docWithBlock wraps block content into a single-definition, single-grid document.
func docWithBlock(blockContent string) []byte {
	return []byte(`<?xml version="1.0"?>
<Definitions xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <ShipBlueprints>
    <ShipBlueprint xsi:type="MyObjectBuilder_ShipBlueprintDefinition">
      <Id Type="MyObjectBuilder_ShipBlueprintDefinition" Subtype="Probe" />
      <DisplayName>Probe</DisplayName>
      <CubeGrids>
        <CubeGrid>
          <GridSizeEnum>Large</GridSizeEnum>
          <CubeBlocks>
            <MyObjectBuilder_CubeBlock xsi:type="MyObjectBuilder_CubeBlock">
` + blockContent + `
            </MyObjectBuilder_CubeBlock>
          </CubeBlocks>
        </CubeGrid>
      </CubeGrids>
    </ShipBlueprint>
  </ShipBlueprints>
</Definitions>`)
}

func firstBlock(t *testing.T, doc *blueprint.Document) *blueprint.Block {
	t.Helper()
	require.Len(t, doc.ShipBlueprints, 1)
	require.Len(t, doc.ShipBlueprints[0].CubeGrids, 1)
	require.NotEmpty(t, doc.ShipBlueprints[0].CubeGrids[0].CubeBlocks)
	return doc.ShipBlueprints[0].CubeGrids[0].CubeBlocks[0]
}

func decodeBytes(t *testing.T, data []byte, opts ...blueprint.DecodeOpt) *blueprint.Document {
	t.Helper()
	doc, err := blueprint.Unmarshal(context.Background(), data, opts...)
	require.NoError(t, err)
	return doc
}

func readShuttle(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(shuttleDir, blueprint.DocumentFile))
	require.NoError(t, err)
	return data
}

// bufferLogger returns a JSON logger writing into the returned buffer.
func bufferLogger() (*zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := zerolog.New(buf)
	return &l, buf
}
