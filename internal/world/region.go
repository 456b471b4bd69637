package world

import (
	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/gamedata"
)

// Region is a location on the map: the hub, a city to liberate, or the final castle.
type Region struct {
	Def       *gamedata.RegionDef // Narrative content, never mutated
	Enemy     *entity.Enemy       // nil for the hub
	Liberated bool
}

// NewRegion creates a region from its definition with a full-health enemy.
func NewRegion(def *gamedata.RegionDef) *Region {
	r := &Region{Def: def}
	if def.Enemy != nil {
		r.Enemy = entity.NewEnemyFromDef(def.Enemy)
	}
	return r
}

// ID returns the region id (0 for the hub).
func (r *Region) ID() int { return r.Def.ID }

// Name returns the region's display name.
func (r *Region) Name() string { return r.Def.Name }

// Description returns the region's flavour text.
func (r *Region) Description() string { return r.Def.Description }

// IsHub reports whether this is the safe hub.
func (r *Region) IsHub() bool { return r.Def.ID == 0 }

// IsFinal reports whether this is the gated end-game region.
func (r *Region) IsFinal() bool { return r.Def.Final }

// Clone returns a copy that shares the immutable definition but owns its
// liberation flag and enemy.
func (r *Region) Clone() *Region {
	return &Region{
		Def:       r.Def,
		Enemy:     r.Enemy.Clone(),
		Liberated: r.Liberated,
	}
}
