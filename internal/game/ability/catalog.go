package ability

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AbilityInfo is the display metadata for one ability, loaded from a
// catalog YAML file. The engine never reads it; it exists for editor and
// UI tooling.
type AbilityInfo struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

// catalogFile is the on-disk shape of one per-category catalog file.
type catalogFile struct {
	Kind      string        `yaml:"kind"`
	Abilities []AbilityInfo `yaml:"abilities"`
}

// Catalog holds display metadata keyed by category kind and catalog id.
type Catalog struct {
	infos map[Kind]map[string]AbilityInfo
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{infos: make(map[Kind]map[string]AbilityInfo)}
}

// Register adds info under the given kind, overwriting any existing entry
// with the same id.
//
// Precondition: info.ID must resolve to an identifier of the kind's
// enumeration.
func (c *Catalog) Register(kind Kind, info AbilityInfo) error {
	if err := validateCatalogID(kind, info.ID); err != nil {
		return err
	}
	if c.infos[kind] == nil {
		c.infos[kind] = make(map[string]AbilityInfo)
	}
	c.infos[kind][info.ID] = info
	return nil
}

// Info returns the metadata registered for the given kind and id.
//
// Postcondition: ok is true iff the entry exists.
func (c *Catalog) Info(kind Kind, id string) (AbilityInfo, bool) {
	info, ok := c.infos[kind][id]
	return info, ok
}

// DisplayName returns the registered display name, falling back to the raw
// catalog id when no entry exists.
func (c *Catalog) DisplayName(kind Kind, id string) string {
	if info, ok := c.infos[kind][id]; ok && info.DisplayName != "" {
		return info.DisplayName
	}
	return id
}

// Count returns the number of entries registered for kind.
func (c *Catalog) Count(kind Kind) int {
	return len(c.infos[kind])
}

// LoadCatalog reads every *.yaml file in dir, parses each as one
// per-category catalog file, and returns a populated Catalog. Unknown YAML
// fields, unknown kinds, and ids that do not resolve to the kind's
// enumeration are all errors.
//
// Precondition: dir must be a readable directory.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir %q: %w", dir, err)
	}
	cat := NewCatalog()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var file catalogFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		kind, err := ParseKind(file.Kind)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", path, err)
		}
		for _, info := range file.Abilities {
			if err := cat.Register(kind, info); err != nil {
				return nil, fmt.Errorf("%q: %w", path, err)
			}
		}
	}
	return cat, nil
}

// validateCatalogID checks that id names an identifier of the kind's
// enumeration.
func validateCatalogID(kind Kind, id string) error {
	var err error
	switch kind {
	case KindMartial:
		_, err = ParseMartialID(id)
	case KindMagical:
		_, err = ParseMagicalID(id)
	case KindCrafting:
		_, err = ParseCraftingID(id)
	case KindSurvival:
		_, err = ParseSurvivalID(id)
	case KindStealth:
		_, err = ParseStealthID(id)
	default:
		err = fmt.Errorf("ability: unknown category kind %q", kind)
	}
	return err
}
