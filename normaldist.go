package main

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// runNormalScatter draws both coordinates of every point from the same normal distribution.
func runNormalScatter(cfg Config, src rand.Source, r Renderer) (*Points, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	points := newPoints(cfg.SampleCount)
	ND := distuv.Normal{Mu: cfg.SampleMean, Sigma: cfg.SampleStdDev, Src: src}
	for i := range points.Data {
		points.Data[i].X = ND.Rand()
		points.Data[i].Y = ND.Rand()
	}

	if err := r.DrawScatter(points, cfg.ScatterFile, "normal_dist"); err != nil {
		return nil, err
	}
	return points, nil
}
