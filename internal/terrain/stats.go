package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the heights of a grid.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
	Points       int
}

// Stats computes min/max/mean/stddev over every grid point.
func (hf *Heightfield) Stats() Stats {
	if len(hf.Buf) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(hf.Buf))
	for i, h := range hf.Buf {
		xs[i] = float64(h)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	st := Stats{
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   mean,
		StdDev: std,
		Points: len(xs),
	}
	DebugLog("Heightfield stats: %+v", st)
	return st
}
