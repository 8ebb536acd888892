package clock_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/clockface/clock"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		name      string
		value     float64
		min, max  float64
		precision int
		want      float64
	}{
		{name: "below range", value: -1, min: 0, max: 10, want: 0},
		{name: "above range", value: 11, min: 0, max: 10, want: 10},
		{name: "inside range", value: 7, min: 0, max: 10, want: 7},
		{name: "rounds to integer", value: 7.6, min: 0, max: 10, want: 8},
		{name: "two decimals", value: 1.2345, min: 0, max: 10, precision: 2, want: 1.23},
		{name: "font size default radius", value: 0.16 * 75, min: 12, max: 24, want: 12},
		{name: "font size large radius", value: 0.16 * 200, min: 12, max: 24, want: 24},
		{name: "font size mid radius", value: 0.16 * 100, min: 12, max: 24, want: 16},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clock.Clamp(tc.value, tc.min, tc.max, tc.precision))
		})
	}
}

func TestClampStaysInRange(t *testing.T) {
	for v := -50.0; v <= 50; v += 0.37 {
		got := clock.Clamp(v, -10, 10, 1)
		assert.GreaterOrEqual(t, got, -10.0)
		assert.LessOrEqual(t, got, 10.0)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 63.0, clock.Round(63.0000001, 2))
	assert.Equal(t, 31.5, clock.Round(31.499999, 2))
	assert.Equal(t, 0.0, math.Abs(clock.Round(1e-15, 2)))
	assert.Equal(t, -2.0, clock.Round(-1.5, 0))
}

func TestMergeShallow(t *testing.T) {
	radius := 100.0
	hidden := false
	roman := clock.NumberRoman
	stroke := "#ff0000"

	got := clock.MergeShallow(clock.Overrides{
		DialRadius:   &radius,
		NumberShow:   &hidden,
		NumberText:   &roman,
		SecondStroke: &stroke,
	}, clock.DefaultConfig())

	want := clock.DefaultConfig()
	want.DialRadius = 100
	want.NumberShow = false
	want.NumberText = clock.NumberRoman
	want.SecondStroke = "#ff0000"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged config mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeShallowEmptyOverrides(t *testing.T) {
	got := clock.MergeShallow(clock.Overrides{}, clock.DefaultConfig())
	if diff := cmp.Diff(clock.DefaultConfig(), got); diff != "" {
		t.Errorf("empty overrides changed defaults (-want +got):\n%s", diff)
	}
}

func TestMergeShallowZeroValuesOverride(t *testing.T) {
	zero := 0.0
	got := clock.MergeShallow(&clock.Overrides{HourPercent: &zero}, clock.DefaultConfig())
	assert.Equal(t, 0.0, got.HourPercent)
	assert.Equal(t, 0.6, got.MinutePercent)
}

func TestMergeShallowLeavesInputsUntouched(t *testing.T) {
	radius := 50.0
	overrides := clock.Overrides{DialRadius: &radius}
	defaults := clock.DefaultConfig()

	merged := clock.MergeShallow(overrides, defaults)
	merged.DialStroke = "#000000"

	assert.Equal(t, 75.0, defaults.DialRadius)
	assert.Equal(t, "#777777", defaults.DialStroke)
	assert.Equal(t, 50.0, *overrides.DialRadius)
	assert.Equal(t, "#777777", clock.DefaultConfig().DialStroke)
}
