package main

import (
	"flag"
	"log"

	"doomfire/internal/audio"
	"doomfire/internal/sims/fire"
	"doomfire/internal/term"
)

func main() {
	tps := flag.Int("tps", 60, "simulation ticks per second")
	seed := flag.Int64("seed", 42, "seed for the fire's random source")
	sound := flag.Bool("sound", false, "play crackle audio driven by the fire")
	cooling := flag.Int("cooling-max", 0, "override max per-cell cooling (0 keeps the default)")
	spark := flag.Int("spark-chance", 0, "override spark chance percent (0 keeps the default)")
	flag.Parse()

	cfg := fire.DefaultConfig()
	cfg.Seed = *seed
	if *cooling > 0 {
		cfg.Params.CoolingMax = *cooling
	}
	if *spark > 0 {
		cfg.Params.SparkChance = *spark
	}

	// Bring the speaker up before tcell owns the terminal so a failure can
	// still log cleanly. Missing audio is not fatal.
	var crackle *audio.Crackle
	if *sound {
		crackle = audio.NewCrackle(*seed)
		if err := audio.Start(crackle); err != nil {
			log.Printf("audio unavailable: %v", err)
			crackle = nil
		}
	}

	r, err := term.NewRenderer(cfg, *tps)
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	if crackle != nil {
		r.SetTickHook(func(f *fire.Field) {
			crackle.SetLevel(f.SourceHeat())
		})
	}

	if err := r.Run(); err != nil {
		log.Fatalf("render loop: %v", err)
	}
}
