package ticket

import (
	"fmt"
	"strings"
)

// Direction is the short-term price direction derived from the last two
// points of a price window.
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Trend is the derived direction and percentage change.
type Trend struct {
	Direction Direction
	Percent   float64
}

// Default sparkline viewport dimensions.
const (
	SparklineWidth  = 120
	SparklineHeight = 28
)

// AnalyzeTrend compares the last two points of a chronological price
// window. Fewer than two points yields DirectionNone with 0%.
func AnalyzeTrend(window []float64) Trend {
	if len(window) < 2 {
		return Trend{Direction: DirectionNone, Percent: 0}
	}

	a := window[len(window)-2]
	b := window[len(window)-1]
	delta := b - a

	pct := 0.0
	if a != 0 {
		pct = delta / a * 100
	}

	direction := DirectionFlat

	switch {
	case delta > 0:
		direction = DirectionUp
	case delta < 0:
		direction = DirectionDown
	}

	return Trend{Direction: direction, Percent: pct}
}

// SparklinePoints maps a chronological price window onto polyline
// coordinates spanning a w-by-h viewport, newest point rightmost, higher
// prices higher up. Fewer than two points produces an empty string; a
// window of all-equal values renders a flat line (span is treated as 1 so
// scaling never divides by zero). The transform is pure: the same window
// always yields the same string.
func SparklinePoints(window []float64, w, h int) string {
	if len(window) < 2 {
		return ""
	}

	min, max := window[0], window[0]
	for _, v := range window {
		if v < min {
			min = v
		}

		if v > max {
			max = v
		}
	}

	span := max - min
	if span == 0 {
		span = 1
	}

	points := make([]string, 0, len(window))

	for i, v := range window {
		x := float64(i)/float64(len(window)-1)*float64(w-2) + 1
		y := float64(h) - (v-min)/span*float64(h-2) - 1
		points = append(points, fmt.Sprintf("%.2f,%.2f", x, y))
	}

	return strings.Join(points, " ")
}
