package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"conway/internal/sims/life"
)

func main() {
	steps := flag.Int("steps", 1000, "maximum generations per trial")
	trials := flag.Int("trials", 32, "number of seeded boards to run")
	firstSeed := flag.Int64("seed", 1, "seed of the first trial; later trials count up from it")
	workers := flag.Int("workers", runtime.NumCPU(), "number of boards simulated concurrently")
	width := flag.Int("width", 200, "grid columns")
	height := flag.Int("height", 200, "grid rows")
	density := flag.Float64("density", 0.3, "probability that a cell starts alive")
	flag.Parse()

	cfg := life.Config{Width: *width, Height: *height, Density: *density}
	seeds := make([]int64, *trials)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %d trials on %dx%d at density %.2f (%d workers, %d steps)\n",
		len(seeds), cfg.Width, cfg.Height, cfg.Density, *workers, *steps)
	start := time.Now()
	results, err := life.Sweep(ctx, cfg, seeds, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	settled := 0
	var finalSum, peakSum, settleSum int
	for _, res := range results {
		finalSum += res.FinalPopulation
		peakSum += res.PeakPopulation
		if res.Period != 0 {
			settled++
			settleSum += res.SettledAt
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].FinalPopulation > results[j].FinalPopulation })
	fmt.Printf("\nTop 5 by final population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d initial=%d final=%d peak=%d gens=%d settled=%d period=%d\n",
			i+1, res.Seed, res.InitialPopulation, res.FinalPopulation, res.PeakPopulation, res.Generations, res.SettledAt, res.Period)
	}

	if len(results) == 0 {
		return
	}
	n := float64(len(results))
	fmt.Printf("\nMean final population %.1f, mean peak %.1f\n", float64(finalSum)/n, float64(peakSum)/n)
	if settled > 0 {
		fmt.Printf("%d/%d boards settled, mean settle generation %.1f\n", settled, len(results), float64(settleSum)/float64(settled))
	} else {
		fmt.Printf("No board settled within %d generations\n", *steps)
	}
}
