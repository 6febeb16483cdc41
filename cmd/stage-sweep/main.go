package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"

	"ringjump/internal/app"
	"ringjump/internal/core"
	"ringjump/internal/render"
	"ringjump/internal/session"
	"ringjump/internal/stage"
)

func main() {
	stages := flag.Int("stages", 10, "sweep stage numbers 1..N")
	count := flag.Int("count", 200, "seeds per stage")
	seed := flag.Int64("seed", 1, "first seed")
	samples := flag.Int("samples", 24, "graph samples per stage")
	duration := flag.Float64("duration", 30, "seconds covered by the samples")
	threshold := flag.Int("threshold", 0, "node count below which a stage is sparse (0 = circle count)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel stage builds")
	pngPath := flag.String("png", "", "write a preview of the first stage for -seed to this file")
	var overrides app.KVList
	flag.Var(&overrides, "set", "stage parameter override in key=value form (repeatable)")
	flag.Parse()

	kv := overrides.Map()
	cfg := stage.FromMap(kv)

	fmt.Printf("%5s %7s %7s %5s %5s %8s %7s %8s\n", "stage", "circles", "mean", "min", "max", "pickups", "sparse", "isolated")
	for n := 1; n <= *stages; n++ {
		th := *threshold
		if th <= 0 {
			th = stage.CircleCount(cfg.Params, n)
		}
		res := stage.Sweep(cfg, n, *seed, *count, *samples, *duration, th, *workers)
		fmt.Printf("%5d %7d %7.1f %5d %5d %8.1f %6.1f%% %8d\n",
			res.Number, stage.CircleCount(cfg.Params, n), res.MeanNodes, res.MinNodes, res.MaxNodes,
			res.MeanPickups, 100*res.SparseRate(), res.Isolated)
	}

	if *pngPath != "" {
		if err := writePreview(*pngPath, kv, *seed); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\npreview written to %s\n", *pngPath)
	}
}

func writePreview(path string, kv map[string]string, seed int64) error {
	sc := session.FromMap(kv)
	sc.Seed = seed
	snap := session.New(sc).Snapshot()

	w, h := int(snap.Width), int(snap.Height)
	grid := core.NewByteGrid(w, h)
	render.Rasterize(grid, snap, render.Fit(snap.Width, snap.Height, w, h, 1))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, render.Image(grid, render.Palette)); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
