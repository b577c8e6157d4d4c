// Command circuit-bench ticks seeded random circuits headlessly and reports
// throughput and the surviving population per seed.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"wireworld/internal/sims/wireworld"

	"golang.org/x/sync/errgroup"
)

type result struct {
	seed    int64
	ticks   int
	elapsed time.Duration
	pop     wireworld.Population
}

func main() {
	rows := flag.Int("rows", 128, "grid rows")
	cols := flag.Int("cols", 128, "grid columns")
	ticks := flag.Int("ticks", 1000, "ticks per run")
	seeds := flag.Int("seeds", 8, "number of seeds to run, starting at -seed")
	first := flag.Int64("seed", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent runs")
	flag.Parse()

	var (
		mu      sync.Mutex
		results []result
	)
	var group errgroup.Group
	group.SetLimit(*workers)
	for i := 0; i < *seeds; i++ {
		seed := *first + int64(i)
		group.Go(func() error {
			r, err := bench(*rows, *cols, *ticks, seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })
	fmt.Printf("%-6s %12s %8s %8s %10s\n", "seed", "ticks/s", "heads", "tails", "conductors")
	for _, r := range results {
		rate := float64(r.ticks) / r.elapsed.Seconds()
		fmt.Printf("%-6d %12.0f %8d %8d %10d\n", r.seed, rate, r.pop.Heads, r.pop.Tails, r.pop.Conductors)
	}
}

func bench(rows, cols, ticks int, seed int64) (result, error) {
	cfg := wireworld.DefaultConfig()
	cfg.Rows, cfg.Columns = rows, cols
	cfg.Pattern = "random"
	cfg.Seed = seed
	e, err := wireworld.NewWithConfig(cfg)
	if err != nil {
		return result{}, err
	}
	e.Reset(seed)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		e.Tick()
	}
	return result{seed: seed, ticks: ticks, elapsed: time.Since(start), pop: e.Population()}, nil
}
