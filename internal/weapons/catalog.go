// Package weapons loads the signature weapon attack tables.
package weapons

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
)

//go:embed data/*.yaml
var embedded embed.FS

// Catalog is an immutable set of weapons keyed by id
type Catalog struct {
	weapons map[string]*Weapon
	order   []string
}

// Load reads the weapon tables compiled into the binary
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFrom(sub)
}

// MustLoad is Load for program start-up
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load weapon catalog: %v", err))
	}
	return c
}

// LoadFrom reads every *.yaml file at the root of fsys
func LoadFrom(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no weapon files found")
	}
	sort.Strings(files)

	c := &Catalog{weapons: make(map[string]*Weapon, len(files))}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		w, err := parseWeapon(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(file), err)
		}
		if _, exists := c.weapons[w.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate weapon id %q", path.Base(file), w.ID)
		}
		c.weapons[w.ID] = w
		c.order = append(c.order, w.ID)
	}
	return c, nil
}

func parseWeapon(data []byte) (*Weapon, error) {
	var w Weapon
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid weapon yaml: %w", err)
	}

	if w.ID == "" || w.Name == "" {
		return nil, fmt.Errorf("weapon requires id and name")
	}
	if w.ItemKey == "" {
		return nil, fmt.Errorf("weapon %s requires item_key", w.ID)
	}
	w.ItemKey = NormalizeItemName(w.ItemKey)
	switch w.Match {
	case "":
		w.Match = MatchContains
	case MatchContains, MatchExact:
	default:
		return nil, fmt.Errorf("weapon %s has unknown match rule %q", w.ID, w.Match)
	}
	if len(w.Attacks) == 0 {
		return nil, fmt.Errorf("weapon %s has no attacks", w.ID)
	}

	w.byID = make(map[string]*attack.Definition, len(w.Attacks))
	for _, a := range w.Attacks {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("weapon %s: %w", w.ID, err)
		}
		if _, exists := w.byID[a.ID]; exists {
			return nil, fmt.Errorf("weapon %s: duplicate attack id %q", w.ID, a.ID)
		}
		w.byID[a.ID] = a
	}
	return &w, nil
}

// Get returns the weapon with id, or nil
func (c *Catalog) Get(id string) *Weapon {
	return c.weapons[id]
}

// List returns weapons in file order
func (c *Catalog) List() []*Weapon {
	out := make([]*Weapon, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.weapons[id])
	}
	return out
}

// Warnings collects data authoring warnings from every attack
func (c *Catalog) Warnings() []string {
	var warnings []string
	for _, w := range c.List() {
		for _, a := range w.Attacks {
			warnings = append(warnings, a.Warnings()...)
		}
	}
	return warnings
}
