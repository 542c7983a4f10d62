// Package inventory is the item catalog: the library of item definitions that inventory
// entries reference by ID.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

// Registry holds loaded item definitions indexed by ID.
type Registry struct {
	items map[string]*character.ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*character.ItemDef)}
}

// RegisterItem adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) RegisterItem(d *character.ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %q already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// Item returns the ItemDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id string) (*character.ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// AllItems returns every registered definition sorted by ID.
func (r *Registry) AllItems() []*character.ItemDef {
	out := make([]*character.ItemDef, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve returns a copy of c whose inventory entries carry their catalog definitions.
// Entries that already embed a definition are left as they are. Entries whose ItemID is
// unknown keep a nil Item and contribute nothing to derived stats; their IDs are returned
// as missing.
func (r *Registry) Resolve(c character.Character) (character.Character, []string) {
	var missing []string
	inv := make([]character.InventoryItem, len(c.Inventory))
	copy(inv, c.Inventory)
	for i := range inv {
		if inv[i].Item != nil || inv[i].ItemID == "" {
			continue
		}
		if d, ok := r.items[inv[i].ItemID]; ok {
			inv[i].Item = d
			continue
		}
		missing = append(missing, inv[i].ItemID)
	}
	c.Inventory = inv
	return c, missing
}

// ValidateItem checks the catalog invariants of d.
//
// Postcondition: Returns nil iff ID and Name are set and BaseThresholds, when set, parses as
// "<major>/<severe>".
func ValidateItem(d *character.ItemDef) error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.BaseThresholds != "" {
		if _, _, ok := d.Thresholds(); !ok {
			errs = append(errs, fmt.Errorf("base_thresholds %q must have the form <major>/<severe>", d.BaseThresholds))
		}
	}
	return errors.Join(errs...)
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, and validates it.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all definitions in file name order, or the first error encountered.
func LoadItems(dir string) ([]*character.ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	items := []*character.ItemDef{}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		var d character.ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadItems: cannot parse file %q: %w", path, err)
		}
		if err := ValidateItem(&d); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", path, err)
		}
		items = append(items, &d)
	}
	return items, nil
}

// LoadRegistry loads every definition in dir into a new Registry.
//
// Postcondition: Returns a populated Registry, or an error for unreadable files, invalid
// definitions, or duplicate IDs.
func LoadRegistry(dir string) (*Registry, error) {
	items, err := LoadItems(dir)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, d := range items {
		if err := r.RegisterItem(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}
