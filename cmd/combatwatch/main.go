// Package main is the combat monitor: it tails the game log and prints
// combat events as they happen, or analyzes a finished log.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SanguinemDe/starcommand/internal/monitor"
)

func main() {
	logPath := flag.String("log", "logs/latest.log", "game log file to follow")
	analyze := flag.Bool("analyze", false, "read the whole log and print an after-action report")
	flag.Parse()

	if *analyze {
		if err := analyzeLog(*logPath); err != nil {
			log.Fatalf("Analyze failed: %v", err)
		}
		return
	}

	if err := watch(*logPath); err != nil {
		log.Fatalf("Monitor failed: %v", err)
	}
}

func watch(path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := monitor.NewPrinter(os.Stdout)
	printer.Banner(path)

	tailer := monitor.NewTailer(path)
	if err := tailer.WaitForFile(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			printer.Closing()
			return nil
		}
		return fmt.Errorf("wait for %s: %w", path, err)
	}

	err := tailer.Run(ctx, func(line string) {
		printer.Print(monitor.Classify(line))
	})
	if errors.Is(err, context.Canceled) {
		printer.Closing()
		return nil
	}
	return err
}

func analyzeLog(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	report, err := monitor.Analyze(f)
	if err != nil {
		return err
	}
	report.Write(os.Stdout)
	return nil
}
