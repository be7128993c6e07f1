package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormationPlayerCounts(t *testing.T) {
	cases := []struct {
		playerNumber int
		want         int
	}{
		{3, 5},
		{5, 5},
		{7, 7},
		{8, 7},
		{9, 9},
		{10, 9},
		{11, 11},
		{12, 9},
	}
	for _, tc := range cases {
		formation := DefaultFormation(tc.playerNumber)
		assert.Equal(t, DefaultFormationName, formation.Name)
		assert.Equal(t, tc.want, formation.PlayerCount(), "playerNumber %d", tc.playerNumber)
	}
}

func TestDefaultFormationHasNoMovement(t *testing.T) {
	for _, p := range DefaultFormation(11).Players {
		assert.False(t, p.HasMovement())
		assert.Len(t, p.Role.ShortName(), 4)
	}
}

func TestDefaultRoutesAreUniqueAndDrawable(t *testing.T) {
	routes := DefaultRoutes()
	require.Len(t, routes, 14)

	seen := map[string]bool{}
	for _, r := range routes {
		assert.False(t, seen[r.Name.String()], "duplicate route %s", r.Name)
		seen[r.Name.String()] = true
		assert.Equal(t, 2, r.Movement.Len(), r.Name.String())
	}

	curved := 0
	for _, r := range routes {
		if r.Paths()[0].IsCurved() {
			curved++
		}
	}
	assert.Equal(t, 4, curved)
}
