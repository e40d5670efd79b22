package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrend(t *testing.T) {
	tests := []struct {
		name      string
		window    []float64
		direction Direction
		percent   float64
	}{
		{name: "empty window", window: nil, direction: DirectionNone, percent: 0},
		{name: "single point", window: []float64{100}, direction: DirectionNone, percent: 0},
		{name: "rising", window: []float64{100, 105}, direction: DirectionUp, percent: 5},
		{name: "falling", window: []float64{105, 100}, direction: DirectionDown, percent: -4.7619},
		{name: "flat", window: []float64{50, 50}, direction: DirectionFlat, percent: 0},
		{name: "only last two points matter", window: []float64{1, 2, 3, 100, 105}, direction: DirectionUp, percent: 5},
		{name: "zero base avoids division", window: []float64{0, 10}, direction: DirectionUp, percent: 0},
		{name: "falls to zero", window: []float64{10, 0}, direction: DirectionDown, percent: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := AnalyzeTrend(tt.window)
			assert.Equal(t, tt.direction, trend.Direction)
			assert.InDelta(t, tt.percent, trend.Percent, 0.001)
		})
	}
}

func TestSparklinePointsTooFewPoints(t *testing.T) {
	assert.Empty(t, SparklinePoints(nil, SparklineWidth, SparklineHeight))
	assert.Empty(t, SparklinePoints([]float64{100}, SparklineWidth, SparklineHeight))
}

func TestSparklinePointsTwoPoints(t *testing.T) {
	points := SparklinePoints([]float64{100, 105}, 120, 28)

	// Oldest point bottom-left, newest point top-right.
	assert.Equal(t, "1.00,27.00 119.00,1.00", points)
}

func TestSparklinePointsConstantWindowIsFlat(t *testing.T) {
	points := SparklinePoints([]float64{50, 50, 50}, 120, 28)

	// A zero-span window must not divide by zero and renders flat.
	assert.Equal(t, "1.00,27.00 60.00,27.00 119.00,27.00", points)
}

func TestSparklinePointsSpansViewport(t *testing.T) {
	points := SparklinePoints([]float64{1, 2, 3, 4, 5}, 120, 28)
	parts := strings.Split(points, " ")

	assert.Len(t, parts, 5)
	assert.True(t, strings.HasPrefix(parts[0], "1.00,"))
	assert.True(t, strings.HasPrefix(parts[4], "119.00,"))
}

func TestSparklinePointsIsDeterministic(t *testing.T) {
	window := []float64{103.2, 101.7, 104.9, 104.9, 99.5}

	first := SparklinePoints(window, 120, 28)
	second := SparklinePoints(window, 120, 28)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
