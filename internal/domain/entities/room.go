package entities

// ItemKind discriminates the entries stored in a room.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindNote    ItemKind = "note"
)

// Room is a dimensioned space within an estimate. Width and Length are meters.
type Room struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Width  float64    `json:"width"`
	Length float64    `json:"length"`
	Items  []RoomItem `json:"items"`
}

// Area is width * length. Unset dimensions yield a non-positive area, which
// the pricing core treats as zero.
func (r Room) Area() float64 {
	return r.Width * r.Length
}

// ItemIndex returns the index of the item with the given id, or -1.
func (r *Room) ItemIndex(itemID string) int {
	for i := range r.Items {
		if r.Items[i].ID() == itemID {
			return i
		}
	}
	return -1
}

// HasProduct reports whether productID is already a primary product of the room.
func (r Room) HasProduct(productID string) bool {
	for _, it := range r.Items {
		if it.Kind == ItemKindProduct && it.Product != nil && it.Product.ProductID == productID {
			return true
		}
	}
	return false
}

// RoomItem is a tagged variant: exactly one of Product or Note is set,
// according to Kind.
type RoomItem struct {
	Kind    ItemKind     `json:"type"`
	Product *ProductLine `json:"product,omitempty"`
	Note    *Note        `json:"note,omitempty"`
}

func NewProductItem(p ProductLine) RoomItem {
	return RoomItem{Kind: ItemKindProduct, Product: &p}
}

func NewNoteItem(n Note) RoomItem {
	return RoomItem{Kind: ItemKindNote, Note: &n}
}

// ID returns the id of whichever variant is set.
func (it RoomItem) ID() string {
	switch it.Kind {
	case ItemKindProduct:
		if it.Product != nil {
			return it.Product.ID
		}
	case ItemKindNote:
		if it.Note != nil {
			return it.Note.ID
		}
	}
	return ""
}

// ProductLine is a product the customer selected, with the companion products
// that category relations auto-added at selection time. Only unit prices are
// stored; totals depend on the room area and are recomputed on read.
type ProductLine struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"product_id"`
	Name               string          `json:"name"`
	PricingMethod      PricingMethod   `json:"pricing_method,omitempty"`
	MinPrice           float64         `json:"min_price"`
	MaxPrice           float64         `json:"max_price"`
	AdditionalProducts []PricedProduct `json:"additional_products,omitempty"`
}

func (l ProductLine) Priced() PricedProduct {
	return PricedProduct{
		ProductID:     l.ProductID,
		Name:          l.Name,
		PricingMethod: l.PricingMethod,
		MinPrice:      l.MinPrice,
		MaxPrice:      l.MaxPrice,
	}
}

type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
