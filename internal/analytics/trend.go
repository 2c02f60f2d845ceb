package analytics

import (
	"sort"
	"time"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type TrendPoint struct {
	At   time.Time `json:"at"`
	Rate int       `json:"rate"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// Trend is the normalised rating series with its least squares line.
type Trend struct {
	Points    []TrendPoint `json:"points"`
	Slope     float64      `json:"slope"`
	Intercept float64      `json:"intercept"`
}

// RatingTrend maps rated, attended activities onto the unit square: X is the
// position in time between the first and last rating, Y is (rate-1)/4.
func RatingTrend(items []domain.ActivityHistoryItem) (Trend, error) {
	var points []TrendPoint
	for _, item := range items {
		rate, ok := item.Rated()
		if !ok {
			continue
		}
		points = append(points, TrendPoint{
			At:   item.Activity.BeginAt,
			Rate: rate,
			Y:    float64(rate-1) / 4,
		})
	}
	if len(points) < 2 {
		return Trend{}, domain.ErrInsufficientData
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].At.Before(points[j].At)
	})

	first, last := points[0].At, points[len(points)-1].At
	span := last.Sub(first)
	for i := range points {
		if span <= 0 {
			points[i].X = float64(i) / float64(len(points)-1)
			continue
		}
		points[i].X = float64(points[i].At.Sub(first)) / float64(span)
	}

	slope, intercept := leastSquares(points)

	return Trend{Points: points, Slope: slope, Intercept: intercept}, nil
}

func leastSquares(points []TrendPoint) (slope, intercept float64) {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	return slope, intercept
}
