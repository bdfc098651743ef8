package gamedata

import "unicode/utf8"

// EnemyDef defines an enemy kind loaded from JSON.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "crawler")
	Name        string `json:"name"`        // Display name (e.g., "Crawler")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "c")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the first rune of the glyph, or '?' when the glyph is
// empty or not valid UTF-8.
func (e *EnemyDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(e.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
