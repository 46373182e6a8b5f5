package desserts

import (
	"fmt"

	"github.com/agentstation/dessertshop/pkg/constants"
)

// PriceHistogram counts desserts per price band, always in the order
// [0,10], (10,20], (20,∞). A boundary price belongs to the lower band.
type PriceHistogram [3]int

// Bucket is one labelled band of a PriceHistogram.
type Bucket struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// bucketIndex returns the band for price, or -1 for a negative price.
func bucketIndex(price float64) int {
	switch {
	case price < 0:
		return -1
	case price <= constants.LowPriceCeiling:
		return 0
	case price <= constants.MidPriceCeiling:
		return 1
	default:
		return 2
	}
}

// Low returns the count of the [0,10] band.
func (h PriceHistogram) Low() int { return h[0] }

// Mid returns the count of the (10,20] band.
func (h PriceHistogram) Mid() int { return h[1] }

// High returns the count of the (20,∞) band.
func (h PriceHistogram) High() int { return h[2] }

// Total returns the number of desserts counted.
func (h PriceHistogram) Total() int { return h[0] + h[1] + h[2] }

// Buckets returns the bands with human-readable labels.
func (h PriceHistogram) Buckets() []Bucket {
	low := FormatPrice(constants.LowPriceCeiling)
	mid := FormatPrice(constants.MidPriceCeiling)
	return []Bucket{
		{Label: fmt.Sprintf("$0-%s", low), Count: h[0]},
		{Label: fmt.Sprintf("$%s-%s", low, mid), Count: h[1]},
		{Label: fmt.Sprintf("over $%s", mid), Count: h[2]},
	}
}
