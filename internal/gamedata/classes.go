package gamedata

// ClassDef defines a unit class loaded from JSON.
type ClassDef struct {
	ID       string `json:"id"`       // Unique identifier matching entity.Class (e.g., "beefy")
	Name     string `json:"name"`     // Display name (e.g., "Beefy")
	Symbol   string `json:"symbol"`   // Single character for rendering (e.g., "B")
	HP       int    `json:"hp"`       // Starting and maximum hit points
	Strength int    `json:"strength"` // Upper bound (exclusive) of the attack roll
	Defense  int    `json:"defense"`  // Upper bound (exclusive) of the defense roll
	Speed    int    `json:"speed"`    // Movement radius
	Range    int    `json:"range"`    // Attack radius
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
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
