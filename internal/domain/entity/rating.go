package entity

import "math"

// averageRating returns the arithmetic mean of the accumulated rating values,
// rounded to one decimal place. An empty list averages to 0.
func averageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	for _, r := range ratings {
		sum += r
	}

	return math.Round(sum/float64(len(ratings))*10) / 10
}
