// Package flow tracks which top-level screen or mode the game is in and
// validates transitions between them.
package flow

// GameFlowState represents the current screen/mode the game is in.
type GameFlowState int

const (
	// StateStartup is the initial loading/splash screen.
	StateStartup GameFlowState = iota
	// StateMainMenu is the main menu.
	StateMainMenu
	// StateNewGame is character creation.
	StateNewGame
	// StateLoadGame is the load save file screen.
	StateLoadGame
	// StateGalaxyMap is galaxy map navigation.
	StateGalaxyMap
	// StateSectorMap is sector-level navigation.
	StateSectorMap
	// StateCombat is tactical combat.
	StateCombat
	// StateStarbase is the starbase/station interface.
	StateStarbase
	// StateShipManagement is the ship loadout/upgrade screen.
	StateShipManagement
	// StateCrewManagement is crew assignment.
	StateCrewManagement
	// StateMissionBriefing shows mission details.
	StateMissionBriefing
	// StateDialogue is conversation/story scenes.
	StateDialogue
	// StateScanResults is the sensor scan display.
	StateScanResults
	// StateOptions is the settings menu.
	StateOptions
	// StatePaused is the game paused overlay.
	StatePaused
	// StateQuit is exiting the game.
	StateQuit
)

var stateNames = [...]string{
	StateStartup:         "Startup",
	StateMainMenu:        "Main Menu",
	StateNewGame:         "New Game",
	StateLoadGame:        "Load Game",
	StateGalaxyMap:       "Galaxy Map",
	StateSectorMap:       "Sector Map",
	StateCombat:          "Combat",
	StateStarbase:        "Starbase",
	StateShipManagement:  "Ship Management",
	StateCrewManagement:  "Crew Management",
	StateMissionBriefing: "Mission Briefing",
	StateDialogue:        "Dialogue",
	StateScanResults:     "Scan Results",
	StateOptions:         "Options",
	StatePaused:          "Paused",
	StateQuit:            "Quit",
}

// String returns the human-readable state name. This name appears in
// the "State transition: <A> -> <B>" log lines the combat monitor
// parses, so it must stay stable.
func (s GameFlowState) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s GameFlowState) Valid() bool {
	return s >= StateStartup && s <= StateQuit
}

// States returns all defined states in declaration order.
func States() []GameFlowState {
	out := make([]GameFlowState, 0, len(stateNames))
	for s := StateStartup; s <= StateQuit; s++ {
		out = append(out, s)
	}
	return out
}
