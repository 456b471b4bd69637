package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}

	return result, nil
}

// mustLoad panics when data the game cannot run without is missing.
func mustLoad[T any](load func() (T, error)) T {
	result, err := load()
	if err != nil {
		panic(err)
	}
	return result
}
