package pricing

import (
	"math"
	"testing"

	"product_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flooringLine(id string) entities.ProductLine {
	return entities.ProductLine{
		ID:            id,
		ProductID:     "A",
		Name:          "Oak flooring",
		PricingMethod: entities.PricingMethodPerArea,
		MinPrice:      10,
		MaxPrice:      20,
		AdditionalProducts: []entities.PricedProduct{
			{ProductID: "B", Name: "Underlay", PricingMethod: entities.PricingMethodFixed, MinPrice: 15, MaxPrice: 15},
		},
	}
}

func TestRecomputeRoom_Example(t *testing.T) {
	room := entities.Room{
		ID:     "r1",
		Name:   "Lounge",
		Width:  4,
		Length: 5,
		Items: []entities.RoomItem{
			entities.NewProductItem(flooringLine("i1")),
			entities.NewNoteItem(entities.Note{ID: "n1", Text: "measure skirting"}),
		},
	}

	got := RecomputeRoom(room)

	assert.Equal(t, 20.0, got.Area)
	assert.Equal(t, 215.0, got.MinTotal)
	assert.Equal(t, 415.0, got.MaxTotal)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "i1", got.Lines[0].ItemID)
	require.Len(t, got.Lines[0].Entries, 2)
}

func TestRecomputeRoom_UnsetWidth(t *testing.T) {
	room := entities.Room{ID: "r1", Width: 0, Length: 5, Items: []entities.RoomItem{entities.NewProductItem(flooringLine("i1"))}}

	got := RecomputeRoom(room)

	assert.Equal(t, 15.0, got.MinTotal)
	assert.Equal(t, 15.0, got.MaxTotal)
	assert.Equal(t, 0.0, got.Lines[0].Entries[0].MinTotal)
	assert.Equal(t, 0.0, got.Lines[0].Entries[0].MaxTotal)
	assert.True(t, got.IsSinglePrice())
}

func TestRecomputeRoom_SkipsNotesAndMalformedItems(t *testing.T) {
	room := entities.Room{
		Width:  2,
		Length: 2,
		Items: []entities.RoomItem{
			{Kind: entities.ItemKindNote, Note: &entities.Note{ID: "n"}},
			{Kind: entities.ItemKindProduct},
			{Kind: "bundle"},
		},
	}

	got := RecomputeRoom(room)

	assert.Empty(t, got.Lines)
	assert.Equal(t, Totals{}, got.Totals)
}

func TestRecomputeRoom_SingleFixedProduct(t *testing.T) {
	room := entities.Room{Width: 3, Length: 3, Items: []entities.RoomItem{
		entities.NewProductItem(entities.ProductLine{ID: "i", ProductID: "P", PricingMethod: entities.PricingMethodFixed, MinPrice: 100, MaxPrice: 100}),
	}}

	got := RecomputeRoom(room)

	assert.Equal(t, 100.0, got.MinTotal)
	assert.Equal(t, 100.0, got.MaxTotal)
	assert.True(t, got.IsSinglePrice())
}

func TestRecomputeEstimate_SumsRooms(t *testing.T) {
	est := entities.Estimate{Rooms: []entities.Room{
		{ID: "r1", Width: 4, Length: 5, Items: []entities.RoomItem{entities.NewProductItem(flooringLine("i1"))}},
		{ID: "r2", Width: 3, Length: 2.5, Items: []entities.RoomItem{entities.NewProductItem(flooringLine("i2"))}},
		{ID: "r3"},
	}}

	got := RecomputeEstimate(est)

	var sum Totals
	for _, room := range est.Rooms {
		sum = sum.Add(RecomputeRoom(room).Totals)
	}
	assert.Equal(t, sum, got.Totals)
	assert.Equal(t, 215.0+90.0, got.MinTotal)
	require.Len(t, got.Rooms, 3)

	r2, ok := got.Room("r2")
	require.True(t, ok)
	assert.Equal(t, 7.5, r2.Area)
	_, ok = got.Room("nope")
	assert.False(t, ok)
}

func TestRecomputeEstimate_NoRooms(t *testing.T) {
	got := RecomputeEstimate(entities.Estimate{})
	assert.Empty(t, got.Rooms)
	assert.Equal(t, Totals{}, got.Totals)
}

func TestRecomputeRoom_OverflowingAreaRendersAsUndimensioned(t *testing.T) {
	room := entities.Room{ID: "r1", Width: 1e200, Length: 1e200, Items: []entities.RoomItem{entities.NewProductItem(flooringLine("i1"))}}
	require.True(t, math.IsInf(room.Area(), 1))

	got := RecomputeRoom(room)

	assert.Equal(t, 0.0, got.Area)
	assert.Equal(t, 15.0, got.MinTotal)
	assert.Equal(t, 15.0, got.MaxTotal)
	assert.NotPanics(t, func() { Display(got.Totals, 10) })
}
