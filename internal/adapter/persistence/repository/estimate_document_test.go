package repository

import (
	"testing"

	"product_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRooms() []entities.Room {
	return []entities.Room{
		{
			ID: "room-1", Name: "Lounge", Width: 4, Length: 5,
			Items: []entities.RoomItem{
				entities.NewProductItem(entities.ProductLine{
					ID: "item-1", ProductID: "A", Name: "Oak flooring", PricingMethod: entities.PricingMethodPerArea,
					MinPrice: 10, MaxPrice: 20,
					AdditionalProducts: []entities.PricedProduct{{ProductID: "B", Name: "Underlay", MinPrice: 15, MaxPrice: 15}},
				}),
				entities.NewNoteItem(entities.Note{ID: "note-1", Text: "check skirting"}),
			},
		},
		{ID: "room-2", Name: "Hall", Width: 1, Length: 3},
	}
}

func TestEstimateData_RoundTrip(t *testing.T) {
	raw, err := encodeEstimateData(sampleRooms())
	require.NoError(t, err)
	assert.Contains(t, raw, `"version":1`)

	rooms := decodeEstimateData("est-1", raw)
	assert.Equal(t, sampleRooms(), rooms)
}

func TestEstimateData_EmptyRooms(t *testing.T) {
	raw, err := encodeEstimateData(nil)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1,"rooms":[]}`, raw)
	assert.Empty(t, decodeEstimateData("est-1", raw))
	assert.Nil(t, decodeEstimateData("est-1", ""))
}

func TestEstimateData_KeyedRoomsKeepOrder(t *testing.T) {
	raw := `{"rooms":{"z-room":{"name":"Zeta","width":2,"length":2},"a-room":{"id":"explicit","name":"Alpha"}}}`

	rooms := decodeEstimateData("est-1", raw)
	require.Len(t, rooms, 2)
	assert.Equal(t, "z-room", rooms[0].ID)
	assert.Equal(t, "Zeta", rooms[0].Name)
	assert.Equal(t, "explicit", rooms[1].ID)
}

func TestEstimateData_BareList(t *testing.T) {
	rooms := decodeEstimateData("est-1", `[{"id":"r1","name":"Attic"}]`)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Attic", rooms[0].Name)
}

func TestEstimateData_MalformedReadsAsEmpty(t *testing.T) {
	for name, raw := range map[string]string{
		"truncated":      `{"version":1,"rooms":[{"id":"r1"`,
		"rooms scalar":   `{"version":1,"rooms":42}`,
		"future version": `{"version":7,"rooms":[]}`,
		"not json":       `rooms`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, decodeEstimateData("est-1", raw))
		})
	}
}
