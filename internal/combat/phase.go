// Package combat defines the sequential phases of a combat turn and the
// outcome classification of an encounter. Combat resolution itself
// (damage, targeting, AI) lives outside this layer; this package only
// sequences when things happen.
package combat

// Phase is one sequential sub-stage within a single combat turn.
type Phase int

const (
	// PhaseInitiative - roll initiative to determine turn order
	PhaseInitiative Phase = iota
	// PhaseMovement - ships move on the map
	PhaseMovement
	// PhaseTargeting - ships select targets and firing arcs
	PhaseTargeting
	// PhaseFiring - ships fire weapons at targets
	PhaseFiring
	// PhaseDamage - apply damage, system effects, casualties
	PhaseDamage
	// PhaseHousekeeping - end of turn cleanup, cooldowns, regeneration
	PhaseHousekeeping
)

// String returns a human-readable phase name. This name appears in the
// "Combat phase advanced to: <phase>" log lines the monitor parses.
func (p Phase) String() string {
	switch p {
	case PhaseInitiative:
		return "Initiative"
	case PhaseMovement:
		return "Movement"
	case PhaseTargeting:
		return "Targeting"
	case PhaseFiring:
		return "Firing"
	case PhaseDamage:
		return "Damage"
	case PhaseHousekeeping:
		return "Housekeeping"
	default:
		return "Unknown"
	}
}

// Order returns the phases in their fixed turn order. This sequence is
// the sole source of truth for phase sequencing.
func Order() []Phase {
	return []Phase{
		PhaseInitiative,
		PhaseMovement,
		PhaseTargeting,
		PhaseFiring,
		PhaseDamage,
		PhaseHousekeeping,
	}
}

// Next returns the phase following p in turn order. ok is false when p
// is the last phase of the turn. A phase not found in the order also
// ends the turn rather than failing; an unrecognized value degrades
// gracefully to turn termination.
func Next(p Phase) (next Phase, ok bool) {
	order := Order()
	for i, candidate := range order {
		if candidate == p {
			if i+1 < len(order) {
				return order[i+1], true
			}
			return 0, false
		}
	}
	return 0, false
}
