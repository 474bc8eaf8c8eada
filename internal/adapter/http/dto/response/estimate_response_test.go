package response

import (
	"testing"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/domain/pricing"
)

func pricedFixture() (entities.Estimate, pricing.EstimateTotals) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:            "est-1",
		Name:          "Ground floor",
		Customer:      entities.Customer{Name: "Ana", Phone: "0400"},
		Status:        entities.EstimateStatusSaved,
		DefaultMarkup: 10,
		Rooms: []entities.Room{{
			ID: "room-1", Name: "Lounge", Width: 4, Length: 5,
			Items: []entities.RoomItem{
				entities.NewProductItem(entities.ProductLine{
					ID: "item-1", ProductID: "A", Name: "Oak flooring", PricingMethod: entities.PricingMethodPerArea,
					MinPrice: 10, MaxPrice: 20,
					AdditionalProducts: []entities.PricedProduct{{ProductID: "B", Name: "Underlay", PricingMethod: entities.PricingMethodFixed, MinPrice: 15, MaxPrice: 15}},
				}),
				entities.NewNoteItem(entities.Note{ID: "note-1", Text: "check skirting"}),
			},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return e, pricing.RecomputeEstimate(e)
}

func TestFromEstimate(t *testing.T) {
	e, totals := pricedFixture()
	res := FromEstimate(e, totals)

	if res.ID != "est-1" || res.Status != "saved" || res.Customer.PhoneNumber != "0400" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.TotalMin != 215 || res.TotalMax != 415 {
		t.Fatalf("unexpected totals: %v-%v", res.TotalMin, res.TotalMax)
	}
	if res.Display.Min != 236.5 || res.Display.Max != 456.5 || res.Display.Single {
		t.Fatalf("unexpected display: %+v", res.Display)
	}
	if res.CreatedAt == nil || !res.CreatedAt.Equal(e.CreatedAt) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	room := res.Rooms[0]
	if room.Area != 20 || len(room.Items) != 2 || room.TotalMin != 215 {
		t.Fatalf("unexpected room: %+v", room)
	}
	line := room.Items[0].Product
	if line == nil || len(line.Breakdown) != 2 || !line.Breakdown[1].AutoAdded || line.TotalMax != 415 {
		t.Fatalf("unexpected product line: %+v", line)
	}
	if room.Items[1].Note == nil || room.Items[1].Note.Text != "check skirting" {
		t.Fatalf("unexpected note: %+v", room.Items[1])
	}
}

func TestFromEstimate_RepeatedIDsKeepTheirOwnTotals(t *testing.T) {
	fixed := func(id string, price float64) entities.RoomItem {
		return entities.NewProductItem(entities.ProductLine{
			ID: id, ProductID: id, Name: id, PricingMethod: entities.PricingMethodFixed, MinPrice: price, MaxPrice: price,
		})
	}
	e := entities.Estimate{
		Status: entities.EstimateStatusSaved,
		Rooms: []entities.Room{
			{ID: "r", Name: "Kitchen", Items: []entities.RoomItem{fixed("l", 100)}},
			{ID: "r", Name: "Bath", Items: []entities.RoomItem{fixed("l", 5), fixed("l", 7)}},
		},
	}
	res := FromEstimate(e, pricing.RecomputeEstimate(e))

	if len(res.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(res.Rooms))
	}
	if res.Rooms[0].TotalMin != 100 || res.Rooms[1].TotalMin != 12 {
		t.Fatalf("unexpected room totals: %v, %v", res.Rooms[0].TotalMin, res.Rooms[1].TotalMin)
	}
	bath := res.Rooms[1].Items
	if bath[0].Product.TotalMin != 5 || bath[1].Product.TotalMin != 7 {
		t.Fatalf("unexpected line totals: %v, %v", bath[0].Product.TotalMin, bath[1].Product.TotalMin)
	}
	if res.TotalMin != 112 {
		t.Fatalf("unexpected estimate total: %v", res.TotalMin)
	}
}

func TestFromEstimate_StaleTotalsAreRecomputed(t *testing.T) {
	e, _ := pricedFixture()
	res := FromEstimate(e, pricing.EstimateTotals{})

	room := res.Rooms[0]
	if room.TotalMin != 215 || room.TotalMax != 415 {
		t.Fatalf("unexpected room totals: %+v", room)
	}
	if room.Items[0].Product.TotalMin != 215 {
		t.Fatalf("unexpected line: %+v", room.Items[0].Product)
	}
}

func TestFromEstimate_DraftOmitsTimestamps(t *testing.T) {
	res := FromEstimate(entities.Estimate{Status: entities.EstimateStatusDraft}, pricing.EstimateTotals{})
	if res.CreatedAt != nil || res.UpdatedAt != nil {
		t.Fatalf("expected no timestamps on a draft")
	}
	if !res.Display.Single || res.Display.Min != 0 {
		t.Fatalf("unexpected display: %+v", res.Display)
	}
}

func TestFromEstimateSummaries(t *testing.T) {
	e, totals := pricedFixture()
	e.MinTotal, e.MaxTotal = totals.MinTotal, totals.MaxTotal

	rows := FromEstimateSummaries([]entities.Estimate{e})
	if len(rows) != 1 || rows[0].RoomCount != 1 || rows[0].TotalMax != 415 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].Display.Max != 456.5 {
		t.Fatalf("unexpected display: %+v", rows[0].Display)
	}
}

func TestFromBreakdown(t *testing.T) {
	b := pricing.BuildBreakdown(
		entities.PricedProduct{ProductID: "A", PricingMethod: entities.PricingMethodFixed, MinPrice: 100, MaxPrice: 100},
		nil, 12,
	)
	res := FromBreakdown("A", 12, b, 0)
	if len(res.Entries) != 1 || res.TotalMin != 100 || !res.Display.Single || res.Display.Min != 100 {
		t.Fatalf("unexpected breakdown: %+v", res)
	}
}
