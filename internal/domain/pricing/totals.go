package pricing

import (
	"product_estimator/internal/domain/entities"

	"github.com/rs/zerolog/log"
)

// Totals is a raw min/max pair. Markup is never part of it.
type Totals struct {
	MinTotal float64
	MaxTotal float64
}

func (t Totals) Add(o Totals) Totals {
	return Totals{MinTotal: t.MinTotal + o.MinTotal, MaxTotal: t.MaxTotal + o.MaxTotal}
}

// IsSinglePrice reports whether the range collapses to one value. The
// comparison is exact and must be made on raw totals, not display values.
func (t Totals) IsSinglePrice() bool {
	return t.MinTotal == t.MaxTotal
}

// Breakdown is the ordered list of priced entries (primary first, then
// companions) and their sum.
type Breakdown struct {
	Entries []ProductPrice
	Totals
}

func BuildBreakdown(primary entities.PricedProduct, additions []entities.PricedProduct, roomArea float64) Breakdown {
	b := Breakdown{Entries: make([]ProductPrice, 0, 1+len(additions))}

	first := ComputeProductPrice(primary, roomArea)
	b.Entries = append(b.Entries, first)
	b.Totals = b.Totals.Add(first.Totals())

	for _, a := range additions {
		p := ComputeProductPrice(a, roomArea)
		p.AutoAdded = true
		b.Entries = append(b.Entries, p)
		b.Totals = b.Totals.Add(p.Totals())
	}
	return b
}

// LineBreakdown prices a stored product line with the companions that were
// snapshotted when it was added.
func LineBreakdown(line entities.ProductLine, roomArea float64) Breakdown {
	return BuildBreakdown(line.Priced(), line.AdditionalProducts, roomArea)
}

type LineTotals struct {
	ItemID string
	Breakdown
}

type RoomTotals struct {
	RoomID string
	Area   float64
	Lines  []LineTotals
	Totals
}

type EstimateTotals struct {
	Rooms []RoomTotals
	Totals
}

// RecomputeRoom sums the breakdowns of every product in the room. Notes and
// malformed items contribute nothing.
func RecomputeRoom(room entities.Room) RoomTotals {
	area := room.Area()
	if !isFinite(area) {
		log.Warn().Str("room_id", room.ID).Msg("[pricing][totals] non-finite room area; treating as undimensioned")
		area = 0
	}
	if area < 0 {
		area = 0
	}

	out := RoomTotals{RoomID: room.ID, Area: area}
	for _, it := range room.Items {
		if it.Kind != entities.ItemKindProduct || it.Product == nil {
			continue
		}
		b := LineBreakdown(*it.Product, area)
		out.Lines = append(out.Lines, LineTotals{ItemID: it.Product.ID, Breakdown: b})
		out.Totals = out.Totals.Add(b.Totals)
	}
	return out
}

func RecomputeEstimate(est entities.Estimate) EstimateTotals {
	out := EstimateTotals{Rooms: make([]RoomTotals, 0, len(est.Rooms))}
	for _, room := range est.Rooms {
		rt := RecomputeRoom(room)
		out.Rooms = append(out.Rooms, rt)
		out.Totals = out.Totals.Add(rt.Totals)
	}
	return out
}

// Room returns the totals for roomID, if present.
func (e EstimateTotals) Room(roomID string) (RoomTotals, bool) {
	for _, r := range e.Rooms {
		if r.RoomID == roomID {
			return r, true
		}
	}
	return RoomTotals{}, false
}
