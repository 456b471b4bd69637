package gamedata

import (
	"errors"
	"fmt"
)

// EnemyDef defines the lord that holds a region.
type EnemyDef struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	HP    int    `json:"hp"`
}

// RegionDef defines a region of the world map.
type RegionDef struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	NPCName     string    `json:"npcName"`
	NPCLine     string    `json:"npcLine"`
	Color       string    `json:"color"`           // Hex colour used by the console HUD
	Final       bool      `json:"final,omitempty"` // Gated end-game region
	Enemy       *EnemyDef `json:"enemy,omitempty"` // nil for the hub
}

// WorldDef represents the structure of world.json.
type WorldDef struct {
	FinalAttack int         `json:"finalAttack"` // Attack granted on entering the final region
	Hub         RegionDef   `json:"hub"`
	Regions     []RegionDef `json:"regions"`
}

// Validate checks the invariants the world map relies on: a hub with id 0,
// unique positive region ids, an enemy in every non-hub region and exactly
// one final region holding the highest id.
func (w *WorldDef) Validate() error {
	if w.Hub.ID != 0 {
		return fmt.Errorf("hub id must be 0, got %d", w.Hub.ID)
	}
	if w.Hub.Enemy != nil {
		return errors.New("hub must not have an enemy")
	}
	if len(w.Regions) == 0 {
		return errors.New("world has no regions")
	}

	seen := make(map[int]bool, len(w.Regions))
	finals := 0
	maxID := 0
	finalID := -1
	for _, r := range w.Regions {
		if r.ID <= 0 {
			return fmt.Errorf("region %q: id must be positive, got %d", r.Name, r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate region id %d", r.ID)
		}
		seen[r.ID] = true
		if r.Enemy == nil || r.Enemy.HP <= 0 {
			return fmt.Errorf("region %d: missing enemy or non-positive enemy hp", r.ID)
		}
		if r.ID > maxID {
			maxID = r.ID
		}
		if r.Final {
			finals++
			finalID = r.ID
		}
	}
	if finals != 1 {
		return fmt.Errorf("world must have exactly one final region, got %d", finals)
	}
	if finalID != maxID {
		return fmt.Errorf("final region must hold the highest id (%d), got %d", maxID, finalID)
	}
	if w.FinalAttack < 0 {
		return fmt.Errorf("finalAttack must not be negative, got %d", w.FinalAttack)
	}
	return nil
}

// LoadWorld loads and validates the world seed from the embedded world.json.
func LoadWorld() (*WorldDef, error) {
	def, err := Load[WorldDef]("world.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("world.json: %w", err)
	}
	return &def, nil
}

// MustLoadWorld loads the world seed, panicking on error.
func MustLoadWorld() *WorldDef {
	return mustLoad(LoadWorld)
}
