package game

import (
	"math/rand"

	"github.com/SanguinemDe/starcommand/internal/combat"
	"github.com/SanguinemDe/starcommand/internal/gamedata"
	"github.com/SanguinemDe/starcommand/internal/gamelog"
)

// combatant tracks one ship's remaining strength during a skirmish.
type combatant struct {
	def     *gamedata.ShipDef
	hull    int
	shields int
	pending int // damage rolled in the firing phase, applied in the damage phase
}

func newCombatant(def *gamedata.ShipDef) *combatant {
	return &combatant{def: def, hull: def.Hull, shields: def.Shields.Total()}
}

func (c *combatant) alive() bool { return c.hull > 0 }

func (c *combatant) hullFrac() float64 {
	if c.def.Hull <= 0 {
		return 0
	}
	return float64(c.hull) / float64(c.def.Hull)
}

func (c *combatant) shieldFrac() float64 {
	total := c.def.Shields.Total()
	if total <= 0 {
		return 0
	}
	return float64(c.shields) / float64(total)
}

// skirmish is the resolver behind the combat drill. It rolls attacks
// during the firing phase, applies their damage in the damage phase,
// and reports an outcome once a hull gives out. Everything it knows
// about the fight it learns from the phase it is handed.
type skirmish struct {
	rng    *rand.Rand
	player *combatant
	enemy  *combatant
	log    gamelog.Logger
}

func newSkirmish(rng *rand.Rand, player, enemy *gamedata.ShipDef, log gamelog.Logger) *skirmish {
	if log == nil {
		log = gamelog.Nop{}
	}
	return &skirmish{
		rng:    rng,
		player: newCombatant(player),
		enemy:  newCombatant(enemy),
		log:    log,
	}
}

// resolve plays out the given phase and returns the outcome so far.
// Phases with no bookkeeping leave the encounter in progress.
func (s *skirmish) resolve(p combat.Phase) combat.Outcome {
	switch p {
	case combat.PhaseFiring:
		s.fire(s.player, s.enemy)
		s.fire(s.enemy, s.player)
	case combat.PhaseDamage:
		s.apply(s.enemy)
		s.apply(s.player)
	}

	switch {
	case !s.player.alive() && !s.enemy.alive():
		return combat.OutcomeDraw
	case !s.enemy.alive():
		return combat.OutcomePlayerVictory
	case !s.player.alive():
		return combat.OutcomeEnemyVictory
	default:
		return combat.OutcomeInProgress
	}
}

func (s *skirmish) fire(attacker, defender *combatant) {
	if !attacker.alive() {
		return
	}
	if s.rng.Float64() >= 0.7 {
		s.log.Infof("%s fires at %s - MISSED", attacker.def.Name, defender.def.Name)
		return
	}
	// Damage swings between half and full weapon rating.
	dmg := attacker.def.Weapons/2 + s.rng.Intn(attacker.def.Weapons/2+1)
	defender.pending += dmg
	s.log.Infof("%s fires at %s - HIT for %d damage", attacker.def.Name, defender.def.Name, dmg)
}

func (s *skirmish) apply(c *combatant) {
	if c.pending == 0 {
		return
	}
	dmg := c.pending
	c.pending = 0

	absorbed := dmg
	if absorbed > c.shields {
		absorbed = c.shields
	}
	if absorbed > 0 {
		c.shields -= absorbed
		dmg -= absorbed
		s.log.Infof("%s shields reduced to %d", c.def.Name, c.shields)
	}

	if dmg > 0 {
		c.hull -= dmg
		if c.hull < 0 {
			c.hull = 0
		}
		s.log.Infof("%s hull takes %d damage, %d remaining", c.def.Name, dmg, c.hull)
	}

	if c.hull == 0 {
		s.log.Infof("%s DESTROYED", c.def.Name)
	}
}
