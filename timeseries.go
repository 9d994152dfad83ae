package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// TimeValue is one recorded sample, t in seconds
type TimeValue struct {
	T, V float64
}

// TimeSeries is a preallocated series sampled every cycle seconds.
// Slot 0 holds the initial value, each Record fills the next slot.
type TimeSeries struct {
	data  []TimeValue
	cycle float64
	step  int
}

// newTimeSeries allocates ceil(duration/cycle) slots, at least one.
func newTimeSeries(cycle, duration, initValue float64) *TimeSeries {
	size := int(math.Ceil(duration / cycle))
	if size < 1 {
		size = 1
	}
	ts := &TimeSeries{data: make([]TimeValue, size), cycle: cycle}
	ts.data[0].V = initValue
	return ts
}

// Cap is the number of preallocated slots.
func (ts *TimeSeries) Cap() int {
	return len(ts.data)
}

// Step is the index of the last recorded slot.
func (ts *TimeSeries) Step() int {
	return ts.step
}

func (ts *TimeSeries) Cycle() float64 {
	return ts.cycle
}

// Record advances one cycle and stores value there.
func (ts *TimeSeries) Record(value float64) error {
	if ts.step >= len(ts.data)-1 {
		return fmt.Errorf("record at step %d of %d: %w", ts.step+1, len(ts.data), ErrCapacityExceeded)
	}
	now := ts.data[ts.step].T + ts.cycle
	ts.step++
	ts.data[ts.step] = TimeValue{T: now, V: value}
	return nil
}

func (ts *TimeSeries) checkStep(step int) error {
	if step < 0 || step > ts.step {
		return fmt.Errorf("read step %d, recorded up to %d: %w", step, ts.step, ErrNotRecorded)
	}
	return nil
}

func (ts *TimeSeries) ValueAtStep(step int) (float64, error) {
	if err := ts.checkStep(step); err != nil {
		return 0, err
	}
	return ts.data[step].V, nil
}

func (ts *TimeSeries) TimeAtStep(step int) (float64, error) {
	if err := ts.checkStep(step); err != nil {
		return 0, err
	}
	return ts.data[step].T, nil
}

// Values copies the recorded values, steps 0..Step(), into a vector.
func (ts *TimeSeries) Values() *mat.VecDense {
	vs := mat.NewVecDense(ts.step+1, nil)
	for i := 0; i <= ts.step; i++ {
		vs.SetVec(i, ts.data[i].V)
	}
	return vs
}

func (ts *TimeSeries) Len() int {
	return len(ts.data)
}

// XY lets a TimeSeries be drawn by plotter.NewScatter with time on x.
func (ts *TimeSeries) XY(i int) (x, y float64) {
	return ts.data[i].T, ts.data[i].V
}

// Extrema takes the time range from the first and last slot, which is
// only meaningful once the series is fully recorded. Values are scanned.
func (ts *TimeSeries) Extrema() (Extrema, error) {
	first := ts.data[0]
	e := Extrema{
		XMin: first.T,
		XMax: ts.data[len(ts.data)-1].T,
		YMin: first.V,
		YMax: first.V,
	}
	for _, tv := range ts.data[1:] {
		e.YMin, e.YMax = widen(e.YMin, e.YMax, tv.V)
	}
	return e, nil
}
