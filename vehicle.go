package main

import (
	"fmt"
	"log/slog"
	"math"

	odeint "github.com/Daniel-M/odeint/float64"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// VehicleResult is the outcome of one dead reckoning run.
type VehicleResult struct {
	TruePosition      *TimeSeries
	EstimatedPosition *TimeSeries
	TrueSpeed         *TimeSeries

	FinalTrue      float64 // [m]
	FinalEstimated float64 // [m]
	MaxError       float64 // [m]
	MaxErrorTime   float64 // [s]
}

func (vr *VehicleResult) String() string {
	return fmt.Sprintf("x_true = %v [m], x_est = %v [m], maxerror = %v [m] @ %v [s]",
		vr.FinalTrue, vr.FinalEstimated, vr.MaxError, vr.MaxErrorTime)
}

// runVehicleSimulation moves a vehicle along a line at a noisy speed and
// integrates a noisy speed sensor alongside it. Both positions start at 0.
func runVehicleSimulation(cfg Config, src rand.Source, r Renderer) (*VehicleResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	xTrue := newTimeSeries(cfg.CtrlCycle, cfg.SimTime, 0)
	xEst := newTimeSeries(cfg.CtrlCycle, cfg.SimTime, 0)
	spdTrue := newTimeSeries(cfg.CtrlCycle, cfg.SimTime, 0)

	speedNoise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(cfg.SpeedNoiseVariance), Src: src}
	sensorNoise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(cfg.SensorNoiseVariance), Src: src}

	// state is [true position, estimated position], derivatives are held for a whole cycle
	var spd, sensed float64
	odesys := func(x []float64, parameters []float64) []float64 {
		return []float64{spd, sensed}
	}
	system := odeint.NewSystem([]float64{0, 0}, nil, odesys)

	var integrator odeint.Midpoint
	if err := integrator.Set(cfg.CtrlCycle, *system); err != nil {
		return nil, fmt.Errorf("set integrator: %w", err)
	}

	for i := 0; i < xTrue.Cap()-1; i++ {
		spd = cfg.MeanSpeed + speedNoise.Rand()
		sensed = spd + sensorNoise.Rand()

		state, err := integrator.Step()
		if err != nil {
			return nil, fmt.Errorf("integrate step %d: %w", i, err)
		}

		if err := xTrue.Record(state[0]); err != nil {
			return nil, fmt.Errorf("true position: %w", err)
		}
		if err := spdTrue.Record(spd); err != nil {
			return nil, fmt.Errorf("true speed: %w", err)
		}
		if err := xEst.Record(state[1]); err != nil {
			return nil, fmt.Errorf("estimated position: %w", err)
		}
	}

	res := &VehicleResult{TruePosition: xTrue, EstimatedPosition: xEst, TrueSpeed: spdTrue}
	if err := res.measure(); err != nil {
		return nil, err
	}
	slog.Debug("vehicle simulation done", "steps", xTrue.Step(), "max_error", res.MaxError)

	if err := r.DrawTimeSeries([]*TimeSeries{xTrue, xEst}, cfg.PositionFile, "x_true"); err != nil {
		return nil, err
	}
	if err := r.DrawTimeSeries([]*TimeSeries{spdTrue}, cfg.SpeedFile, "spd_true"); err != nil {
		return nil, err
	}
	return res, nil
}

// measure fills the final positions and the largest absolute error over all recorded steps.
func (vr *VehicleResult) measure() error {
	last := vr.TruePosition.Step()
	var err error
	if vr.FinalTrue, err = vr.TruePosition.ValueAtStep(last); err != nil {
		return err
	}
	if vr.FinalEstimated, err = vr.EstimatedPosition.ValueAtStep(vr.EstimatedPosition.Step()); err != nil {
		return err
	}

	diff := mat.NewVecDense(last+1, nil)
	diff.SubVec(vr.TruePosition.Values(), vr.EstimatedPosition.Values())
	for i := 0; i < diff.Len(); i++ {
		e := math.Abs(diff.AtVec(i))
		if e <= vr.MaxError {
			continue
		}
		vr.MaxError = e
		if vr.MaxErrorTime, err = vr.TruePosition.TimeAtStep(i); err != nil {
			return err
		}
	}
	return nil
}
