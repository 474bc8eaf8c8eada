package response

import (
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/domain/pricing"
)

// DisplayRangeResponse is what the storefront shows. Min is rounded down and
// max rounded up after markup; Single is decided on raw totals.
type DisplayRangeResponse struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Single bool    `json:"single"`
}

func FromTotals(t pricing.Totals, markup float64) DisplayRangeResponse {
	d := pricing.Display(t, markup)
	return DisplayRangeResponse{Min: d.Min, Max: d.Max, Single: d.Single}
}

type CustomerResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Postcode    string `json:"postcode"`
}

type PricedProductResponse struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	PricingMethod string  `json:"pricing_method"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

type ProductPriceResponse struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	PricingMethod string  `json:"pricing_method"`
	TotalMin      float64 `json:"total_min"`
	TotalMax      float64 `json:"total_max"`
	AutoAdded     bool    `json:"auto_added"`
}

type ProductLineResponse struct {
	ID                 string                  `json:"id"`
	ProductID          string                  `json:"product_id"`
	Name               string                  `json:"name"`
	PricingMethod      string                  `json:"pricing_method"`
	MinPrice           float64                 `json:"min_price"`
	MaxPrice           float64                 `json:"max_price"`
	AdditionalProducts []PricedProductResponse `json:"additional_products"`
	Breakdown          []ProductPriceResponse  `json:"breakdown"`
	TotalMin           float64                 `json:"total_min"`
	TotalMax           float64                 `json:"total_max"`
	Display            DisplayRangeResponse    `json:"display"`
}

type NoteResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type RoomItemResponse struct {
	Type    string               `json:"type"`
	Product *ProductLineResponse `json:"product,omitempty"`
	Note    *NoteResponse        `json:"note,omitempty"`
}

type RoomResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Width    float64              `json:"width"`
	Length   float64              `json:"length"`
	Area     float64              `json:"area"`
	Items    []RoomItemResponse   `json:"items"`
	TotalMin float64              `json:"total_min"`
	TotalMax float64              `json:"total_max"`
	Display  DisplayRangeResponse `json:"display"`
}

type EstimateResponse struct {
	ID            string               `json:"id,omitempty"`
	Name          string               `json:"name"`
	Customer      CustomerResponse     `json:"customer"`
	Status        string               `json:"status"`
	DefaultMarkup float64              `json:"default_markup"`
	Notes         string               `json:"notes"`
	Rooms         []RoomResponse       `json:"rooms"`
	TotalMin      float64              `json:"total_min"`
	TotalMax      float64              `json:"total_max"`
	Display       DisplayRangeResponse `json:"display"`
	CreatedAt     *time.Time           `json:"created_at,omitempty"`
	UpdatedAt     *time.Time           `json:"updated_at,omitempty"`
}

// FromEstimate renders an estimate with its computed totals. Markup is the
// estimate's default markup and only affects display ranges.
func FromEstimate(e entities.Estimate, totals pricing.EstimateTotals) EstimateResponse {
	rooms := make([]RoomResponse, 0, len(e.Rooms))
	// totals are paired by position; ids alone may repeat in stored estimates
	for i, room := range e.Rooms {
		var rt pricing.RoomTotals
		if i < len(totals.Rooms) && totals.Rooms[i].RoomID == room.ID {
			rt = totals.Rooms[i]
		} else {
			rt = pricing.RecomputeRoom(room)
		}
		rooms = append(rooms, fromRoom(room, rt, e.DefaultMarkup))
	}

	return EstimateResponse{
		ID:            e.ID,
		Name:          e.Name,
		Customer:      fromCustomer(e.Customer),
		Status:        string(e.Status),
		DefaultMarkup: e.DefaultMarkup,
		Notes:         e.Notes,
		Rooms:         rooms,
		TotalMin:      totals.MinTotal,
		TotalMax:      totals.MaxTotal,
		Display:       FromTotals(totals.Totals, e.DefaultMarkup),
		CreatedAt:     timePtr(e.CreatedAt),
		UpdatedAt:     timePtr(e.UpdatedAt),
	}
}

func fromRoom(room entities.Room, rt pricing.RoomTotals, markup float64) RoomResponse {
	items := make([]RoomItemResponse, 0, len(room.Items))
	k := 0
	for _, it := range room.Items {
		switch {
		case it.Kind == entities.ItemKindProduct && it.Product != nil:
			var b pricing.Breakdown
			if k < len(rt.Lines) && rt.Lines[k].ItemID == it.Product.ID {
				b = rt.Lines[k].Breakdown
			} else {
				b = pricing.LineBreakdown(*it.Product, rt.Area)
			}
			k++
			line := fromProductLine(*it.Product, b, markup)
			items = append(items, RoomItemResponse{Type: string(it.Kind), Product: &line})
		case it.Kind == entities.ItemKindNote && it.Note != nil:
			items = append(items, RoomItemResponse{Type: string(it.Kind), Note: &NoteResponse{ID: it.Note.ID, Text: it.Note.Text}})
		}
	}

	return RoomResponse{
		ID:       room.ID,
		Name:     room.Name,
		Width:    room.Width,
		Length:   room.Length,
		Area:     rt.Area,
		Items:    items,
		TotalMin: rt.MinTotal,
		TotalMax: rt.MaxTotal,
		Display:  FromTotals(rt.Totals, markup),
	}
}

func fromProductLine(line entities.ProductLine, b pricing.Breakdown, markup float64) ProductLineResponse {
	additions := make([]PricedProductResponse, 0, len(line.AdditionalProducts))
	for _, a := range line.AdditionalProducts {
		additions = append(additions, PricedProductResponse{
			ProductID:     a.ProductID,
			Name:          a.Name,
			PricingMethod: string(a.PricingMethod),
			MinPrice:      a.MinPrice,
			MaxPrice:      a.MaxPrice,
		})
	}
	return ProductLineResponse{
		ID:                 line.ID,
		ProductID:          line.ProductID,
		Name:               line.Name,
		PricingMethod:      string(line.PricingMethod),
		MinPrice:           line.MinPrice,
		MaxPrice:           line.MaxPrice,
		AdditionalProducts: additions,
		Breakdown:          fromEntries(b.Entries),
		TotalMin:           b.MinTotal,
		TotalMax:           b.MaxTotal,
		Display:            FromTotals(b.Totals, markup),
	}
}

func fromEntries(entries []pricing.ProductPrice) []ProductPriceResponse {
	out := make([]ProductPriceResponse, 0, len(entries))
	for _, p := range entries {
		out = append(out, ProductPriceResponse{
			ProductID:     p.ProductID,
			Name:          p.Name,
			PricingMethod: string(p.PricingMethod),
			TotalMin:      p.MinTotal,
			TotalMax:      p.MaxTotal,
			AutoAdded:     p.AutoAdded,
		})
	}
	return out
}

func fromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{Name: c.Name, Email: c.Email, PhoneNumber: c.Phone, Postcode: c.Postcode}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// EstimateSummaryResponse is one row of the admin listing.
type EstimateSummaryResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Customer  CustomerResponse     `json:"customer"`
	Status    string               `json:"status"`
	TotalMin  float64              `json:"total_min"`
	TotalMax  float64              `json:"total_max"`
	Display   DisplayRangeResponse `json:"display"`
	RoomCount int                  `json:"room_count"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// FromEstimateSummaries uses the stored summary totals; rooms are not repriced.
func FromEstimateSummaries(estimates []entities.Estimate) []EstimateSummaryResponse {
	out := make([]EstimateSummaryResponse, 0, len(estimates))
	for _, e := range estimates {
		s := e.Summary()
		out = append(out, EstimateSummaryResponse{
			ID:        s.ID,
			Name:      s.Name,
			Customer:  fromCustomer(s.Customer),
			Status:    string(s.Status),
			TotalMin:  s.MinTotal,
			TotalMax:  s.MaxTotal,
			Display:   FromTotals(pricing.Totals{MinTotal: s.MinTotal, MaxTotal: s.MaxTotal}, e.DefaultMarkup),
			RoomCount: len(e.Rooms),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return out
}

// BreakdownResponse previews a product and its companions for a room area.
type BreakdownResponse struct {
	ProductID string                 `json:"product_id"`
	Area      float64                `json:"area"`
	Entries   []ProductPriceResponse `json:"entries"`
	TotalMin  float64                `json:"total_min"`
	TotalMax  float64                `json:"total_max"`
	Display   DisplayRangeResponse   `json:"display"`
}

func FromBreakdown(productID string, area float64, b pricing.Breakdown, markup float64) BreakdownResponse {
	return BreakdownResponse{
		ProductID: productID,
		Area:      area,
		Entries:   fromEntries(b.Entries),
		TotalMin:  b.MinTotal,
		TotalMax:  b.MaxTotal,
		Display:   FromTotals(b.Totals, markup),
	}
}
