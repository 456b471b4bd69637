// Package world holds the fixed map of regions and the gate on the final region.
package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cincodedos/internal/gamedata"
	"github.com/samdwyer/cincodedos/internal/telemetry"
)

// Map is the registry of regions keyed by id.
type Map struct {
	hub         *Region
	regions     []*Region // Non-hub regions in id order
	byID        map[int]*Region
	finalID     int
	finalAttack int
}

// Build creates the map from a validated world definition.
func Build(ctx context.Context, def *gamedata.WorldDef) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	defer span.End()

	m := &Map{
		hub:         NewRegion(&def.Hub),
		regions:     make([]*Region, 0, len(def.Regions)),
		byID:        make(map[int]*Region, len(def.Regions)+1),
		finalAttack: def.FinalAttack,
	}
	m.byID[m.hub.ID()] = m.hub

	for i := range def.Regions {
		r := NewRegion(&def.Regions[i])
		m.regions = append(m.regions, r)
		m.byID[r.ID()] = r
		if r.IsFinal() {
			m.finalID = r.ID()
		}
	}

	span.SetAttributes(
		attribute.Int("world.regions", len(m.regions)),
		attribute.Int("world.final_id", m.finalID),
	)
	return m
}

// Default builds the map from the embedded world seed.
func Default(ctx context.Context) *Map {
	return Build(ctx, gamedata.MustLoadWorld())
}

// Hub returns the safe hub region.
func (m *Map) Hub() *Region { return m.hub }

// GetRegion returns the region with the given id. Id 0 is always the hub.
func (m *Map) GetRegion(id int) (*Region, bool) {
	r, ok := m.byID[id]
	return r, ok
}

// Regions returns every non-hub region in id order, the final one last.
func (m *Map) Regions() []*Region { return m.regions }

// Cities returns the regions that count toward the final gate.
func (m *Map) Cities() []*Region {
	cities := make([]*Region, 0, len(m.regions))
	for _, r := range m.regions {
		if !r.IsFinal() {
			cities = append(cities, r)
		}
	}
	return cities
}

// FinalID returns the id of the gated end-game region.
func (m *Map) FinalID() int { return m.finalID }

// FinalAttack returns the base attack granted on entering the final region.
func (m *Map) FinalAttack() int { return m.finalAttack }

// LiberatedCities counts liberated cities.
func (m *Map) LiberatedCities() int {
	count := 0
	for _, r := range m.Cities() {
		if r.Liberated {
			count++
		}
	}
	return count
}

// AllMainCitiesLiberated reports whether every region other than the hub and
// the final region has been liberated.
func (m *Map) AllMainCitiesLiberated() bool {
	for _, r := range m.Cities() {
		if !r.Liberated {
			return false
		}
	}
	return true
}

// CanEnter reports whether travel to the region is allowed by the final gate.
func (m *Map) CanEnter(r *Region) bool {
	return !r.IsFinal() || m.AllMainCitiesLiberated()
}

// Clone returns a deep copy: liberation flags and enemy HP are independent.
func (m *Map) Clone() *Map {
	cp := &Map{
		hub:         m.hub.Clone(),
		regions:     make([]*Region, 0, len(m.regions)),
		byID:        make(map[int]*Region, len(m.byID)),
		finalID:     m.finalID,
		finalAttack: m.finalAttack,
	}
	cp.byID[cp.hub.ID()] = cp.hub
	for _, r := range m.regions {
		rc := r.Clone()
		cp.regions = append(cp.regions, rc)
		cp.byID[rc.ID()] = rc
	}
	return cp
}
