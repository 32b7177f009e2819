package game

import (
	"math"
	"slices"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / float64(len(data))
}

// Median returns the middle value of data, averaging the two middle values for
// an even count. The slice passed is not reordered.
func Median(data []float64) float64 {
	count := len(data)
	if count == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if count%2 != 0 {
		return sorted[count/2]
	}
	return (sorted[count/2-1] + sorted[count/2]) * 0.5
}

// Variance returns the population variance of data.
func Variance(data []float64) (variance float64) {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	for _, number := range data {
		variance += math.Pow(number-mean, 2)
	}
	return variance / float64(len(data))
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Floats converts integer samples, such as rally lengths in frames, into the
// form accepted by the functions above.
func Floats(data []int) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Distribution summarises a set of samples.
type Distribution struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Describe builds a Distribution from data, rounded to two decimals.
func Describe(data []float64) Distribution {
	d := Distribution{Count: len(data)}
	if len(data) == 0 {
		return d
	}
	d.Mean = Round64(Mean(data), 2)
	d.Median = Round64(Median(data), 2)
	d.Variance = Round64(Variance(data), 2)
	d.StdDev = Round64(StandardDeviation(data), 2)
	d.Min, d.Max = slices.Min(data), slices.Max(data)
	return d
}
