package pricing

import (
	"math"
	"testing"

	"product_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestComputeProductPrice_FixedIgnoresArea(t *testing.T) {
	p := entities.PricedProduct{ProductID: "b", PricingMethod: entities.PricingMethodFixed, MinPrice: 15, MaxPrice: 30}

	for _, area := range []float64{-3, 0, 0.5, 20, 1000} {
		got := ComputeProductPrice(p, area)
		assert.Equal(t, 15.0, got.MinTotal, "area %v", area)
		assert.Equal(t, 30.0, got.MaxTotal, "area %v", area)
		assert.Equal(t, entities.PricingMethodFixed, got.PricingMethod)
	}
}

func TestComputeProductPrice_PerArea(t *testing.T) {
	p := entities.PricedProduct{ProductID: "a", PricingMethod: entities.PricingMethodPerArea, MinPrice: 10, MaxPrice: 20}

	got := ComputeProductPrice(p, 20)
	assert.Equal(t, 200.0, got.MinTotal)
	assert.Equal(t, 400.0, got.MaxTotal)

	zero := ComputeProductPrice(p, 0)
	assert.Equal(t, 0.0, zero.MinTotal)
	assert.Equal(t, 0.0, zero.MaxTotal)

	negative := ComputeProductPrice(p, -4)
	assert.Equal(t, 0.0, negative.MinTotal)
	assert.Equal(t, 0.0, negative.MaxTotal)
}

func TestComputeProductPrice_MethodFallback(t *testing.T) {
	legacy := entities.PricedProduct{ProductID: "x", MinPrice: 5, MaxPrice: 7}
	got := ComputeProductPrice(legacy, 12)
	assert.Equal(t, entities.PricingMethodFixed, got.PricingMethod)
	assert.Equal(t, 5.0, got.MinTotal)
	assert.Equal(t, 7.0, got.MaxTotal)

	unknown := entities.PricedProduct{ProductID: "y", PricingMethod: "per_linear_meter", MinPrice: 5, MaxPrice: 7}
	got = ComputeProductPrice(unknown, 12)
	assert.Equal(t, entities.PricingMethodFixed, got.PricingMethod)
	assert.Equal(t, 5.0, got.MinTotal)
}

func TestComputeProductPrice_Monotonic(t *testing.T) {
	cases := []entities.PricedProduct{
		{PricingMethod: entities.PricingMethodFixed, MinPrice: 1, MaxPrice: 1},
		{PricingMethod: entities.PricingMethodFixed, MinPrice: 0, MaxPrice: 99.99},
		{PricingMethod: entities.PricingMethodPerArea, MinPrice: 3.3, MaxPrice: 3.31},
		{PricingMethod: entities.PricingMethodPerArea, MinPrice: 12, MaxPrice: 40},
		// inverted bounds are normalized
		{PricingMethod: entities.PricingMethodPerArea, MinPrice: 50, MaxPrice: 10},
	}
	for _, p := range cases {
		for _, area := range []float64{0, 1, 7.25, 130} {
			got := ComputeProductPrice(p, area)
			assert.LessOrEqual(t, got.MinTotal, got.MaxTotal, "%+v area %v", p, area)
		}
	}
}

func TestComputeProductPrice_EqualBoundsCollapse(t *testing.T) {
	got := ComputeProductPrice(entities.PricedProduct{PricingMethod: entities.PricingMethodFixed, MinPrice: 100, MaxPrice: 100}, 9)
	assert.True(t, got.Totals().IsSinglePrice())
}

func TestComputeProductPrice_NonFiniteInputs(t *testing.T) {
	perArea := entities.PricedProduct{ProductID: "a", PricingMethod: entities.PricingMethodPerArea, MinPrice: 10, MaxPrice: 20}

	got := ComputeProductPrice(perArea, math.Inf(1))
	assert.Equal(t, 0.0, got.MinTotal)
	assert.Equal(t, 0.0, got.MaxTotal)

	got = ComputeProductPrice(perArea, math.NaN())
	assert.Equal(t, 0.0, got.MinTotal)
	assert.Equal(t, 0.0, got.MaxTotal)

	huge := entities.PricedProduct{ProductID: "h", PricingMethod: entities.PricingMethodPerArea, MinPrice: 1e300, MaxPrice: 1e300}
	got = ComputeProductPrice(huge, 1e10)
	assert.Equal(t, 0.0, got.MinTotal)
	assert.Equal(t, 0.0, got.MaxTotal)
}
