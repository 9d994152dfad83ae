package main

import "errors"

var (
	// ErrEmptySeries is returned when extrema are requested from a series without samples.
	ErrEmptySeries = errors.New("series is empty")
	// ErrCapacityExceeded is returned by TimeSeries.Record once every slot is written.
	ErrCapacityExceeded = errors.New("time series capacity exceeded")
	// ErrNotRecorded is returned when reading a step that has not been recorded yet.
	ErrNotRecorded = errors.New("step not recorded")
)

// Point is a single sample of a scatter plot
type Point struct {
	X, Y float64
}

// Extrema holds the axis ranges of a series
type Extrema struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Points is a fixed length set of samples. Data is exposed so callers can fill it in place.
type Points struct {
	Data []Point
}

func newPoints(size int) *Points {
	return &Points{Data: make([]Point, size)}
}

func (ps *Points) Len() int {
	return len(ps.Data)
}

// XY lets Points be drawn directly by plotter.NewScatter.
func (ps *Points) XY(i int) (x, y float64) {
	return ps.Data[i].X, ps.Data[i].Y
}

// Extrema scans the points once and returns the range of both axes.
func (ps *Points) Extrema() (Extrema, error) {
	if len(ps.Data) == 0 {
		return Extrema{}, ErrEmptySeries
	}
	first := ps.Data[0]
	e := Extrema{XMin: first.X, XMax: first.X, YMin: first.Y, YMax: first.Y}
	for _, pt := range ps.Data[1:] {
		e.XMin, e.XMax = widen(e.XMin, e.XMax, pt.X)
		e.YMin, e.YMax = widen(e.YMin, e.YMax, pt.Y)
	}
	return e, nil
}

func (ps *Points) XMin() (float64, error) {
	e, err := ps.Extrema()
	return e.XMin, err
}

func (ps *Points) XMax() (float64, error) {
	e, err := ps.Extrema()
	return e.XMax, err
}

func (ps *Points) YMin() (float64, error) {
	e, err := ps.Extrema()
	return e.YMin, err
}

func (ps *Points) YMax() (float64, error) {
	e, err := ps.Extrema()
	return e.YMax, err
}

// widen checks both bounds independently, one sample may move either.
func widen(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
