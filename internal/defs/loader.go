// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadEnemyDefinitions reads an archetype file and replaces the EnemyLibrary.
// The file must describe every archetype exactly once.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	library, err := ParseEnemyDefinitions(file)
	if err != nil {
		return err
	}

	EnemyLibrary = library
	log.Printf("Loaded %d enemy definitions from %s", len(EnemyLibrary), path)
	return nil
}

// ParseEnemyDefinitions decodes and validates an archetype table, returning it in
// ArchetypeID order.
func ParseEnemyDefinitions(data []byte) ([]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	ordered := make([]EnemyDefinition, ArchetypeCount)
	seen := make([]bool, ArchetypeCount)
	for _, def := range enemyDefs {
		if !def.ID.Valid() {
			return nil, fmt.Errorf("%w: unknown archetype id %d", ErrInvalidDefinition, def.ID)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("%w: duplicate archetype %s", ErrInvalidDefinition, def.ID)
		}
		if def.Health <= 0 || def.Radius <= 0 {
			return nil, fmt.Errorf("%w: archetype %s needs positive health and radius", ErrInvalidDefinition, def.ID)
		}
		if def.SpawnWeight < 0 {
			return nil, fmt.Errorf("%w: archetype %s has negative spawn weight", ErrInvalidDefinition, def.ID)
		}
		seen[def.ID] = true
		ordered[def.ID] = def
	}
	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: archetype %s missing", ErrInvalidDefinition, ArchetypeID(id))
		}
	}
	return ordered, nil
}
