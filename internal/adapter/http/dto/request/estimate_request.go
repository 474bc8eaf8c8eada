package request

import (
	"strings"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase"
)

type CustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Postcode    string `json:"postcode"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.PhoneNumber,
		Postcode: r.Postcode,
	}
}

type PricedProductRequest struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	PricingMethod string  `json:"pricing_method"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

type ProductLineRequest struct {
	ID                 string                 `json:"id"`
	ProductID          string                 `json:"product_id"`
	Name               string                 `json:"name"`
	PricingMethod      string                 `json:"pricing_method"`
	MinPrice           float64                `json:"min_price"`
	MaxPrice           float64                `json:"max_price"`
	AdditionalProducts []PricedProductRequest `json:"additional_products"`
}

type NoteRequest struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// RoomItemRequest is a tagged item: type "product" carries product, type
// "note" carries note.
type RoomItemRequest struct {
	Type    string              `json:"type" binding:"required"`
	Product *ProductLineRequest `json:"product"`
	Note    *NoteRequest        `json:"note"`
}

type RoomRequest struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Width  float64           `json:"width"`
	Length float64           `json:"length"`
	Items  []RoomItemRequest `json:"items" binding:"dive"`
}

// EstimateRequest is a client-held draft, used both for stateless
// calculation and for saving.
type EstimateRequest struct {
	Name          string          `json:"name"`
	Customer      CustomerRequest `json:"customer"`
	DefaultMarkup *float64        `json:"default_markup"`
	Notes         string          `json:"notes"`
	Rooms         []RoomRequest   `json:"rooms" binding:"dive"`
}

func (r EstimateRequest) ToCommand() usecase.SaveEstimateCommand {
	rooms := make([]entities.Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, room.toEntity())
	}
	return usecase.SaveEstimateCommand{
		Name:          r.Name,
		Customer:      r.Customer.ToEntity(),
		DefaultMarkup: r.DefaultMarkup,
		Notes:         r.Notes,
		Rooms:         rooms,
	}
}

func (r RoomRequest) toEntity() entities.Room {
	items := make([]entities.RoomItem, 0, len(r.Items))
	for _, it := range r.Items {
		item := entities.RoomItem{Kind: entities.ItemKind(strings.ToLower(strings.TrimSpace(it.Type)))}
		if it.Product != nil {
			line := it.Product.toEntity()
			item.Product = &line
		}
		if it.Note != nil {
			item.Note = &entities.Note{ID: it.Note.ID, Text: it.Note.Text}
		}
		items = append(items, item)
	}
	return entities.Room{
		ID:     r.ID,
		Name:   r.Name,
		Width:  r.Width,
		Length: r.Length,
		Items:  items,
	}
}

func (r ProductLineRequest) toEntity() entities.ProductLine {
	var additions []entities.PricedProduct
	for _, a := range r.AdditionalProducts {
		additions = append(additions, entities.PricedProduct{
			ProductID:     a.ProductID,
			Name:          a.Name,
			PricingMethod: entities.PricingMethod(a.PricingMethod),
			MinPrice:      a.MinPrice,
			MaxPrice:      a.MaxPrice,
		})
	}
	return entities.ProductLine{
		ID:                 r.ID,
		ProductID:          r.ProductID,
		Name:               r.Name,
		PricingMethod:      entities.PricingMethod(r.PricingMethod),
		MinPrice:           r.MinPrice,
		MaxPrice:           r.MaxPrice,
		AdditionalProducts: additions,
	}
}

// UpdateEstimateRequest changes only the fields present in the body.
type UpdateEstimateRequest struct {
	Name          *string          `json:"name"`
	Customer      *CustomerRequest `json:"customer"`
	DefaultMarkup *float64         `json:"default_markup"`
	Notes         *string          `json:"notes"`
}

func (r UpdateEstimateRequest) ToCommand() usecase.UpdateEstimateCommand {
	cmd := usecase.UpdateEstimateCommand{
		Name:          r.Name,
		DefaultMarkup: r.DefaultMarkup,
		Notes:         r.Notes,
	}
	if r.Customer != nil {
		c := r.Customer.ToEntity()
		cmd.Customer = &c
	}
	return cmd
}

func (r UpdateEstimateRequest) Empty() bool {
	return r.Name == nil && r.Customer == nil && r.DefaultMarkup == nil && r.Notes == nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RoomDimensionsRequest struct {
	Name   string  `json:"name" binding:"required"`
	Width  float64 `json:"width" binding:"gte=0,lte=10000"`
	Length float64 `json:"length" binding:"gte=0,lte=10000"`
}

func (r RoomDimensionsRequest) ToCommand() usecase.RoomCommand {
	return usecase.RoomCommand{Name: r.Name, Width: r.Width, Length: r.Length}
}

type AddProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// ListEstimatesQuery holds the admin listing query string.
type ListEstimatesQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (q ListEstimatesQuery) ToFilter() entities.EstimateListFilter {
	return entities.EstimateListFilter{
		Status: entities.EstimateStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		Search: q.Search,
		SortBy: strings.ToLower(strings.TrimSpace(q.Sort)),
		Desc:   q.Order == "desc",
	}
}
