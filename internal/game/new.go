package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/gamedata"
	"github.com/samdwyer/cincodedos/internal/world"
)

// StartingPotions is the number of potions in a new hero's bag.
const StartingPotions = 1

// ErrNoClassDef is returned when the class table has no entry for a class.
var ErrNoClassDef = errors.New("no class definition")

// NewGame creates the state for a fresh session: a hero with the class's
// starting stats, one potion, the seeded world, standing at the hub.
func NewGame(ctx context.Context, name string, class entity.Class) (GameState, error) {
	classes, err := gamedata.LoadClassRegistry()
	if err != nil {
		return GameState{}, err
	}
	worldDef, err := gamedata.LoadWorld()
	if err != nil {
		return GameState{}, err
	}
	return NewGameFrom(classes, world.Build(ctx, worldDef), name, class)
}

// NewGameFrom creates a fresh session state from an explicit class table and map.
func NewGameFrom(classes *gamedata.ClassRegistry, m *world.Map, name string, class entity.Class) (GameState, error) {
	def := classes.GetByID(class.ID())
	if def == nil {
		return GameState{}, fmt.Errorf("%w: %s", ErrNoClassDef, class.ID())
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Viajante"
	}

	st := GameState{
		SessionID: uuid.NewString(),
		Player:    entity.NewCharacter(name, class, def),
		World:     m,
		Location:  0,
		Mode:      ModeExplore,
		Phase:     PhasePlayerTurn,
	}
	st.Inventory.AddPotions(StartingPotions)
	return st, nil
}
