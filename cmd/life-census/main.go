package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"life-canvas/internal/core"
	"life-canvas/internal/sims/life"
)

func main() {
	rows := flag.Int("rows", 64, "grid rows")
	cols := flag.Int("cols", 64, "grid columns")
	boards := flag.Int("boards", 16, "number of seeded boards to evaluate")
	seed := flag.Int64("seed", 1, "first seed; board i uses seed+i")
	generations := flag.Int("generations", 2000, "generation cap per board")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel board evaluations")
	boundaryName := flag.String("boundary", "toroidal", "edge policy: toroidal or clamped")
	fillName := flag.String("fill", "random", "initial fill: random or noise")
	flag.Parse()

	boundary, err := core.ParseBoundary(*boundaryName)
	if err != nil {
		log.Fatal(err)
	}
	fill, err := core.ParseFillPolicy(*fillName)
	if err != nil {
		log.Fatal(err)
	}

	results := make([]life.CensusResult, *boards)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i := range results {
		s := *seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			grid, err := core.Create(*rows, *cols, fill, s)
			if err != nil {
				return fmt.Errorf("board %d: %w", s, err)
			}
			res := life.Census(grid, boundary, *generations)
			res.Seed = s
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(a, b int) bool { return results[a].Generations > results[b].Generations })
	fmt.Printf("%d boards %dx%d (%s, %s fill, cap %d)\n", *boards, *rows, *cols, boundary, fill, *generations)
	tally := map[life.Fate]int{}
	for _, res := range results {
		tally[res.Fate]++
		fmt.Printf("seed=%-6d generations=%-5d population=%-5d peak=%-5d %s\n",
			res.Seed, res.Generations, res.Population, res.Peak, res.Fate)
	}
	for _, fate := range []life.Fate{life.FateExtinct, life.FateStill, life.FateOscillator, life.FateActive} {
		fmt.Printf("%-10s %d\n", fate, tally[fate])
	}
}
