// Package main is a data-tuning tool: it rescales every ship's shield
// facings in ships.json by a factor, rounding to the nearest 5.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/SanguinemDe/starcommand/internal/gamedata"
)

func main() {
	file := flag.String("file", "internal/gamedata/ships.json", "ship definitions file to rewrite")
	factor := flag.Float64("factor", 2.67, "multiplier applied to each shield facing")
	dryRun := flag.Bool("dry-run", false, "print the new values without writing the file")
	flag.Parse()

	if err := run(*file, *factor, *dryRun); err != nil {
		log.Fatalf("scaleshields: %v", err)
	}
}

func run(path string, factor float64, dryRun bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var ships gamedata.ShipsFile
	if err := json.Unmarshal(data, &ships); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for i := range ships.Ships {
		ship := &ships.Ships[i]
		old := ship.Shields
		ship.Shields = scale(ship.Shields, factor)
		fmt.Printf("%-14s fore %3d -> %3d   aft %3d -> %3d   port %3d -> %3d   starboard %3d -> %3d\n",
			ship.Name,
			old.Fore, ship.Shields.Fore,
			old.Aft, ship.Shields.Aft,
			old.Port, ship.Shields.Port,
			old.Starboard, ship.Shields.Starboard)
	}

	if dryRun {
		return nil
	}

	out, err := json.MarshalIndent(ships, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ships: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Rewrote %s (factor %.2f)\n", path, factor)
	return nil
}

// scale multiplies each facing and rounds to the nearest 5 so the data
// file stays readable.
func scale(s gamedata.Shields, factor float64) gamedata.Shields {
	return gamedata.Shields{
		Fore:      roundTo5(float64(s.Fore) * factor),
		Aft:       roundTo5(float64(s.Aft) * factor),
		Port:      roundTo5(float64(s.Port) * factor),
		Starboard: roundTo5(float64(s.Starboard) * factor),
	}
}

func roundTo5(v float64) int {
	return int(math.Round(v/5) * 5)
}
