// Package dye provides the dye catalog and the nearest match search
// built on top of the colour engine.
package dye

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// Dye is one catalog entry. Name, Category and Source are pass-through
// metadata owned by the surrounding application; the matcher only
// interprets ID and Hex.
type Dye struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
}

//go:embed dyes.json
var defaultCatalogJSON []byte

// DefaultCatalog returns the dye catalog bundled with the binary.
func DefaultCatalog() ([]Dye, error) {
	return parseCatalog(defaultCatalogJSON)
}

// LoadCatalog reads a dye catalog from a JSON file: an array of objects
// with at least "id" and "hex" fields.
func LoadCatalog(path string) ([]Dye, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	dyes, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return dyes, nil
}

func parseCatalog(data []byte) ([]Dye, error) {
	var dyes []Dye
	if err := json.Unmarshal(data, &dyes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return dyes, nil
}
