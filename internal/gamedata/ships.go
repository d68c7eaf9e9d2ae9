package gamedata

import "errors"

// Shields holds shield strength per facing.
type Shields struct {
	Fore      int `json:"fore"`
	Aft       int `json:"aft"`
	Port      int `json:"port"`
	Starboard int `json:"starboard"`
}

// Total returns the combined strength of all facings.
func (s Shields) Total() int {
	return s.Fore + s.Aft + s.Port + s.Starboard
}

// ShipDef defines a ship class loaded from JSON.
type ShipDef struct {
	ID      string  `json:"id"`      // Unique identifier (e.g., "cruiser")
	Name    string  `json:"name"`    // Display name (e.g., "Cruiser")
	Hull    int     `json:"hull"`    // Hull integrity
	Shields Shields `json:"shields"` // Shield strength per facing
	Weapons int     `json:"weapons"` // Base weapon rating
}

// ShipsFile represents the structure of ships.json.
type ShipsFile struct {
	Ships []ShipDef `json:"ships"`
}

// LoadShips loads ship definitions from the embedded ships.json file.
func LoadShips() ([]ShipDef, error) {
	file, err := Load[ShipsFile]("ships.json")
	if err != nil {
		return nil, err
	}
	return file.Ships, nil
}

// ShipRegistry holds loaded ship definitions and provides lookup.
type ShipRegistry struct {
	byID map[string]*ShipDef
	all  []ShipDef
}

// NewShipRegistry creates a registry from loaded ship definitions.
func NewShipRegistry(ships []ShipDef) *ShipRegistry {
	registry := &ShipRegistry{
		byID: make(map[string]*ShipDef),
		all:  ships,
	}
	for i := range ships {
		registry.byID[ships[i].ID] = &ships[i]
	}
	return registry
}

// LoadShipRegistry loads and creates a registry from the embedded ships.json.
func LoadShipRegistry() (*ShipRegistry, error) {
	ships, err := LoadShips()
	if err != nil {
		return nil, err
	}
	if len(ships) == 0 {
		return nil, errors.New("no ships loaded from ships.json")
	}
	return NewShipRegistry(ships), nil
}

// MustLoadShipRegistry loads a registry, panicking on error.
func MustLoadShipRegistry() *ShipRegistry {
	registry, err := LoadShipRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the ship definition with the given ID, or nil if not found.
func (r *ShipRegistry) GetByID(id string) *ShipDef {
	return r.byID[id]
}

// All returns all ship definitions.
func (r *ShipRegistry) All() []ShipDef {
	return r.all
}

// Count returns the number of ship classes in the registry.
func (r *ShipRegistry) Count() int {
	return len(r.all)
}
