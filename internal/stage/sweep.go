package stage

import (
	"math"
	"sync"

	"ringjump/pkg/core"
)

// SweepResult aggregates graph statistics for many generated stages.
type SweepResult struct {
	Number  int
	Stages  int
	Samples int

	MeanNodes   float64
	MinNodes    int
	MaxNodes    int
	MeanPickups float64

	// Sparse counts stages whose live node count fell below the threshold
	// at any sampled time. Isolated counts stages where some circle had no
	// live node at t=0.
	Sparse   int
	Isolated int
}

// SparseRate returns the fraction of stages flagged as sparse.
func (r SweepResult) SparseRate() float64 {
	if r.Stages == 0 {
		return 0
	}
	return float64(r.Sparse) / float64(r.Stages)
}

type stageSample struct {
	minNodes int
	maxNodes int
	sumNodes int
	pickups  int
	isolated bool
}

// Sweep builds stage number for every seed in [firstSeed, firstSeed+count)
// and samples its node graph at `samples` evenly spaced times over
// `duration` seconds. Work runs on up to `workers` goroutines.
func Sweep(cfg Config, number int, firstSeed int64, count, samples int, duration float64, threshold, workers int) SweepResult {
	if count < 0 {
		count = 0
	}
	if samples < 1 {
		samples = 1
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]stageSample, count)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := 0; i < count; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			results[i] = sampleStage(cfg, number, firstSeed+int64(i), samples, duration)
			<-sem
		}(i)
	}
	wg.Wait()

	out := SweepResult{Number: clampStage(number), Stages: count, Samples: samples, MinNodes: math.MaxInt}
	if count == 0 {
		out.MinNodes = 0
		return out
	}
	var sumNodes, sumPickups int
	for _, s := range results {
		sumNodes += s.sumNodes
		sumPickups += s.pickups
		if s.minNodes < out.MinNodes {
			out.MinNodes = s.minNodes
		}
		if s.maxNodes > out.MaxNodes {
			out.MaxNodes = s.maxNodes
		}
		if s.minNodes < threshold {
			out.Sparse++
		}
		if s.isolated {
			out.Isolated++
		}
	}
	out.MeanNodes = float64(sumNodes) / float64(count*samples)
	out.MeanPickups = float64(sumPickups) / float64(count)
	return out
}

func sampleStage(cfg Config, number int, seed int64, samples int, duration float64) stageSample {
	st := Build(core.NewRNG(seed), cfg, number, 0)
	res := stageSample{minNodes: math.MaxInt, pickups: st.Graph.Pickups()}

	touched := make([]bool, len(st.Circles))
	for _, n := range st.Graph.Live() {
		touched[n.A] = true
		touched[n.B] = true
	}
	for _, ok := range touched {
		if !ok {
			res.isolated = true
			break
		}
	}

	for i := 0; i < samples; i++ {
		t := 0.0
		if samples > 1 {
			t = duration * float64(i) / float64(samples-1)
		}
		live := len(st.Graph.Rebuild(t))
		res.sumNodes += live
		if live < res.minNodes {
			res.minNodes = live
		}
		if live > res.maxNodes {
			res.maxNodes = live
		}
	}
	return res
}
