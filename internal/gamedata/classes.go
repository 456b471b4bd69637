package gamedata

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID      string `json:"id"`      // Unique identifier matching entity.Class (e.g., "knight")
	Name    string `json:"name"`    // Display name (e.g., "Cavaleiro")
	HP      int    `json:"hp"`      // Maximum hit points at creation
	Attack  int    `json:"attack"`  // Base attack at creation
	Ability string `json:"ability"` // Flavour text shown on the character sheet
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadClasses loads class definitions, panicking on error.
func MustLoadClasses() []ClassDef {
	return mustLoad(LoadClasses)
}
