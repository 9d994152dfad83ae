package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSeries(t *testing.T) {
	ts := newTimeSeries(0.5, 10, 3)
	assert.Equal(t, 20, ts.Cap())
	assert.Equal(t, 0, ts.Step())
	assert.Equal(t, 0.5, ts.Cycle())

	v, err := ts.ValueAtStep(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	tm, err := ts.TimeAtStep(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tm)

	assert.Equal(t, 4, newTimeSeries(0.3, 1, 0).Cap(), "slots are rounded up")
	assert.Equal(t, 10000, newTimeSeries(0.1, 1000, 0).Cap())
	assert.Equal(t, 1, newTimeSeries(1, 0, 0).Cap())
}

func TestTimeSeriesCapacity(t *testing.T) {
	ts := newTimeSeries(0.5, 10, 0)
	for i := 1; i < ts.Cap(); i++ {
		require.NoError(t, ts.Record(float64(i)))
	}
	assert.Equal(t, ts.Cap()-1, ts.Step())

	err := ts.Record(99)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, ts.Cap()-1, ts.Step(), "failed record must not move the cursor")

	v, err := ts.ValueAtStep(ts.Step())
	require.NoError(t, err)
	assert.Equal(t, float64(ts.Cap()-1), v)
}

func TestTimeSeriesCumulativeTime(t *testing.T) {
	ts := newTimeSeries(0.1, 5, 0)
	for i := 0; i < 30; i++ {
		require.NoError(t, ts.Record(float64(i)*2))
	}
	for i := 1; i <= ts.Step(); i++ {
		prev, err := ts.TimeAtStep(i - 1)
		require.NoError(t, err)
		cur, err := ts.TimeAtStep(i)
		require.NoError(t, err)
		assert.InDelta(t, prev+0.1, cur, 1e-9)

		v, err := ts.ValueAtStep(i)
		require.NoError(t, err)
		assert.Equal(t, float64(i-1)*2, v)
	}
}

func TestTimeSeriesReadUnrecorded(t *testing.T) {
	ts := newTimeSeries(1, 10, 0)
	require.NoError(t, ts.Record(1))
	require.NoError(t, ts.Record(2))

	_, err := ts.ValueAtStep(3)
	assert.ErrorIs(t, err, ErrNotRecorded)
	_, err = ts.TimeAtStep(9)
	assert.ErrorIs(t, err, ErrNotRecorded)
	_, err = ts.ValueAtStep(-1)
	assert.ErrorIs(t, err, ErrNotRecorded)
	_, err = ts.TimeAtStep(100)
	assert.ErrorIs(t, err, ErrNotRecorded)

	v, err := ts.ValueAtStep(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestTimeSeriesValues(t *testing.T) {
	ts := newTimeSeries(1, 10, 4)
	require.NoError(t, ts.Record(5))
	require.NoError(t, ts.Record(6))

	vs := ts.Values()
	require.Equal(t, 3, vs.Len())
	assert.Equal(t, []float64{4, 5, 6}, []float64{vs.AtVec(0), vs.AtVec(1), vs.AtVec(2)})
}

func TestTimeSeriesExtrema(t *testing.T) {
	ts := newTimeSeries(0.5, 3, 1)
	for _, v := range []float64{-2, 7, 3, 0, 5} {
		require.NoError(t, ts.Record(v))
	}
	e, err := ts.Extrema()
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.XMin)
	assert.InDelta(t, 2.5, e.XMax, 1e-9)
	assert.Equal(t, -2.0, e.YMin)
	assert.Equal(t, 7.0, e.YMax)

	require.Equal(t, ts.Cap(), ts.Len())
	x, y := ts.XY(2)
	assert.InDelta(t, 1.0, x, 1e-9)
	assert.Equal(t, 7.0, y)
}
