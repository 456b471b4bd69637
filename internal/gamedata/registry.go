package gamedata

import (
	"errors"
	"strings"
)

// ClassRegistry holds loaded class definitions keyed by ID.
type ClassRegistry struct {
	classes map[string]*ClassDef
	all     []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		classes: make(map[string]*ClassDef, len(classes)),
		all:     classes,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// MustLoadClassRegistry loads a registry, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	return mustLoad(LoadClassRegistry)
}

// GetByID returns the class definition with the given ID, or nil if not found.
// Lookup is case-insensitive.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.classes[strings.ToLower(strings.TrimSpace(id))]
}

// All returns all class definitions in file order.
func (r *ClassRegistry) All() []ClassDef {
	return r.all
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.all)
}
