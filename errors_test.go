package blueprint_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/blueprint"
)

func TestPathRef(t *testing.T) {
	require.Equal(t, "/", blueprint.RootPath().String())
	p := blueprint.RootPath().Elem("Definitions").Elem("").Item("ShipBlueprint", 2)
	require.Equal(t, "/Definitions/ShipBlueprint[2]", p.String())

	// Elem never aliases the parent.
	a := p.Elem("A")
	b := p.Elem("B")
	require.Equal(t, "/Definitions/ShipBlueprint[2]/A", a.String())
	require.Equal(t, "/Definitions/ShipBlueprint[2]/B", b.String())

	it := p.Issue(blueprint.CodeUnknownKey, "", "name", "FooBar", "dangling")
	require.Equal(t, "field not in registry", it.Message)
	require.Equal(t, map[string]any{"name": "FooBar"}, it.Params)
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := blueprint.Issues{
		{Code: "a", Path: "/x", Message: "first"},
		{Code: "b"},
		{Code: "c", Path: "/z"},
		{Code: "d"},
	}
	require.Equal(t, "a at /x: first; b; c at /z; ... (total 4)", iss.Error())
	require.Empty(t, blueprint.Issues{}.Error())
}

func TestAsIssues(t *testing.T) {
	_, ok := blueprint.AsIssues(nil)
	require.False(t, ok)
	_, ok = blueprint.AsIssues(errors.New("plain"))
	require.False(t, ok)

	wrapped := fmt.Errorf("load: %w", blueprint.Issues{{Code: blueprint.CodeNotFound, Cause: blueprint.ErrNotFound}})
	iss, ok := blueprint.AsIssues(wrapped)
	require.True(t, ok)
	require.Len(t, iss, 1)
	require.ErrorIs(t, wrapped, blueprint.ErrNotFound)
}
