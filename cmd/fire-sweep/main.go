package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"doomfire/internal/sims/fire"
)

type candidate struct {
	coolingMax  int
	sparkChance int
}

type result struct {
	candidate
	stats fire.FlameStats
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per candidate")
	width := flag.Int("width", 160, "field width for sweep runs")
	height := flag.Int("height", 100, "field height for sweep runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	flag.Parse()

	if *workers < 1 {
		*workers = 1
	}

	var candidates []candidate
	for _, cool := range []int{1, 2, 3, 4, 5} {
		for spark := 20; spark <= 90; spark += 10 {
			candidates = append(candidates, candidate{coolingMax: cool, sparkChance: spark})
		}
	}

	jobs := make(chan candidate)
	results := make(chan result, len(candidates))
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				cfg := fire.DefaultConfig()
				cfg.Width = *width
				cfg.Height = *height
				cfg.Seed = *seed
				cfg.Params.CoolingMax = cand.coolingMax
				cfg.Params.SparkChance = cand.sparkChance
				stats, err := fire.FlameProfile(cfg, *steps)
				if err != nil {
					continue
				}
				results <- result{candidate: cand, stats: stats}
			}
		}()
	}
	for _, cand := range candidates {
		jobs <- cand
	}
	close(jobs)
	wg.Wait()
	close(results)

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].coolingMax != all[j].coolingMax {
			return all[i].coolingMax < all[j].coolingMax
		}
		return all[i].sparkChance < all[j].sparkChance
	})

	fmt.Printf("%-12s %-13s %-12s %-12s %-10s\n",
		"cooling_max", "spark_chance", "mean_height", "peak_height", "lit_frac")
	for _, res := range all {
		fmt.Printf("%-12d %-13d %-12.2f %-12d %-10.3f\n",
			res.coolingMax, res.sparkChance,
			res.stats.MeanHeight, res.stats.PeakHeight, res.stats.LitFraction)
	}
}
