package main

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every simulation and plotting parameter.
type Config struct {
	CtrlCycle           float64 // control cycle [s]
	SimTime             float64 // simulated duration [s]
	MeanSpeed           float64 // mean vehicle speed [m/s]
	SpeedNoiseVariance  float64 // variance of the true speed, sigma is its square root
	SensorNoiseVariance float64 // variance of the speed sensor noise, sigma is its square root

	PlotWidth  int // [px]
	PlotHeight int // [px]

	SampleCount  int
	SampleMean   float64
	SampleStdDev float64

	Seed uint64

	ScatterFile  string
	PositionFile string
	SpeedFile    string
}

// DefaultConfig returns the standard run. The noise values are variances,
// so the speed noise has sigma 0.316 and the sensor noise sigma 1.
func DefaultConfig() Config {
	return Config{
		CtrlCycle:           0.1,
		SimTime:             1000,
		MeanSpeed:           1.0,
		SpeedNoiseVariance:  0.1,
		SensorNoiseVariance: 1.0,

		PlotWidth:  500,
		PlotHeight: 500,

		SampleCount:  1000,
		SampleMean:   20,
		SampleStdDev: 5,

		Seed: 1,

		ScatterFile:  "normal_dist.png",
		PositionFile: "x_true.png",
		SpeedFile:    "spd_true.png",
	}
}

func (c Config) Validate() error {
	switch {
	case !finite(c.CtrlCycle, c.SimTime, c.MeanSpeed, c.SpeedNoiseVariance, c.SensorNoiseVariance):
		return fmt.Errorf("%w: simulation parameters must be finite", ErrInvalidConfig)
	case !finite(c.SampleMean, c.SampleStdDev):
		return fmt.Errorf("%w: sample parameters must be finite", ErrInvalidConfig)
	case !(c.CtrlCycle > 0):
		return fmt.Errorf("%w: control cycle %v must be positive", ErrInvalidConfig, c.CtrlCycle)
	case c.SimTime < 2*c.CtrlCycle:
		return fmt.Errorf("%w: sim time %v shorter than two cycles", ErrInvalidConfig, c.SimTime)
	case c.SpeedNoiseVariance < 0 || c.SensorNoiseVariance < 0:
		return fmt.Errorf("%w: negative noise variance", ErrInvalidConfig)
	case c.SampleStdDev < 0:
		return fmt.Errorf("%w: negative sample deviation", ErrInvalidConfig)
	case c.PlotWidth <= 0 || c.PlotHeight <= 0:
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, c.PlotWidth, c.PlotHeight)
	case c.SampleCount <= 0:
		return fmt.Errorf("%w: sample count %d", ErrInvalidConfig, c.SampleCount)
	}
	return nil
}


func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
