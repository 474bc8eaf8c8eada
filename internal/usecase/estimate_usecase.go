package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/domain/pricing"
	"product_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateName  = errors.New("invalid estimate name")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidMarkup        = errors.New("invalid markup")
	ErrInvalidStatus        = errors.New("invalid estimate status")
	ErrRoomNotFound         = errors.New("room not found")
	ErrInvalidRoom          = errors.New("invalid room")
	ErrItemNotFound         = errors.New("room item not found")
	ErrInvalidNote          = errors.New("invalid note")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyInRoom = errors.New("product already in room")
)

// IProductSelector resolves catalog products and their auto-added companions.
// *pricing.AdditionResolver satisfies it.
type IProductSelector interface {
	Select(ctx context.Context, productID string) (pricing.Selection, error)
	ResolveAdditions(ctx context.Context, productID string, roomArea float64) pricing.Breakdown
}

// PricedEstimate is an estimate with totals freshly computed from its rooms.
type PricedEstimate struct {
	Estimate entities.Estimate
	Totals   pricing.EstimateTotals
}

type SaveEstimateCommand struct {
	Name          string
	Customer      entities.Customer
	DefaultMarkup *float64
	Notes         string
	Rooms         []entities.Room
}

// UpdateEstimateCommand changes only the fields that are set.
type UpdateEstimateCommand struct {
	Name          *string
	Customer      *entities.Customer
	DefaultMarkup *float64
	Notes         *string
}

type RoomCommand struct {
	Name   string
	Width  float64
	Length float64
}

// IEstimateUseCase exposes estimate operations.
//
//   - Calculate prices a client-held draft without storing it.
//   - Save persists a draft and assigns its ID.
//   - room and item operations mutate a stored estimate; each one rewrites the
//     document and summary columns in a single write.

type IEstimateUseCase interface {
	Calculate(ctx context.Context, cmd SaveEstimateCommand) (PricedEstimate, error)
	Save(ctx context.Context, cmd SaveEstimateCommand) (PricedEstimate, error)
	GetByID(ctx context.Context, id string) (PricedEstimate, error)
	List(ctx context.Context, filter entities.EstimateListFilter) ([]entities.Estimate, error)
	UpdateDetails(ctx context.Context, id string, cmd UpdateEstimateCommand) (PricedEstimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (PricedEstimate, error)
	Delete(ctx context.Context, id string) error
	AddRoom(ctx context.Context, id string, cmd RoomCommand) (PricedEstimate, error)
	UpdateRoom(ctx context.Context, id, roomID string, cmd RoomCommand) (PricedEstimate, error)
	RemoveRoom(ctx context.Context, id, roomID string) (PricedEstimate, error)
	AddProduct(ctx context.Context, id, roomID, productID string) (PricedEstimate, error)
	ReplaceProduct(ctx context.Context, id, roomID, itemID, productID string) (PricedEstimate, error)
	AddNote(ctx context.Context, id, roomID, text string) (PricedEstimate, error)
	RemoveItem(ctx context.Context, id, roomID, itemID string) (PricedEstimate, error)
	PreviewBreakdown(ctx context.Context, productID string, roomArea float64) (pricing.Breakdown, error)
	DefaultMarkup() float64
}

type EstimateUseCase struct {
	repo          interfaces.IEstimateRepository
	selector      IProductSelector
	publisher     interfaces.IEventPublisher
	defaultMarkup float64

	now   func() time.Time
	newID func() string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, selector IProductSelector, publisher interfaces.IEventPublisher, defaultMarkup float64) *EstimateUseCase {
	return &EstimateUseCase{
		repo:          repo,
		selector:      selector,
		publisher:     publisher,
		defaultMarkup: defaultMarkup,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
	}
}

func (u *EstimateUseCase) DefaultMarkup() float64 {
	return u.defaultMarkup
}

func (u *EstimateUseCase) Calculate(_ context.Context, cmd SaveEstimateCommand) (PricedEstimate, error) {
	e, err := u.buildEstimate(cmd)
	if err != nil {
		return PricedEstimate{}, err
	}
	e.Status = entities.EstimateStatusDraft
	return price(e), nil
}

func (u *EstimateUseCase) Save(ctx context.Context, cmd SaveEstimateCommand) (PricedEstimate, error) {
	e, err := u.buildEstimate(cmd)
	if err != nil {
		return PricedEstimate{}, err
	}
	if e.Name == "" {
		return PricedEstimate{}, ErrInvalidEstimateName
	}

	now := u.now()
	e.ID = u.newID()
	e.Status = entities.EstimateStatusSaved
	e.CreatedAt = now
	e.UpdatedAt = now

	priced := price(e)
	created, err := u.repo.Create(ctx, priced.Estimate)
	if err != nil {
		log.Error().Err(err).Str("estimate_id", e.ID).Msg("[estimate][usecase] save failed")
		return PricedEstimate{}, err
	}
	log.Info().Str("estimate_id", created.ID).Int("rooms", len(created.Rooms)).
		Float64("total_min", created.MinTotal).Float64("total_max", created.MaxTotal).
		Msg("[estimate][usecase] saved")

	u.publish(ctx, entities.EstimateEventSaved, created)
	return PricedEstimate{Estimate: created, Totals: priced.Totals}, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (PricedEstimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return PricedEstimate{}, err
	}
	return price(e), nil
}

func (u *EstimateUseCase) List(ctx context.Context, filter entities.EstimateListFilter) ([]entities.Estimate, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !filter.ValidSort() {
		filter.SortBy = entities.SortByCreatedAt
	}
	return u.repo.List(ctx, filter)
}

func (u *EstimateUseCase) UpdateDetails(ctx context.Context, id string, cmd UpdateEstimateCommand) (PricedEstimate, error) {
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		if cmd.Name != nil {
			name := strings.TrimSpace(*cmd.Name)
			if name == "" {
				return ErrInvalidEstimateName
			}
			e.Name = name
		}
		if cmd.Customer != nil {
			customer, err := normalizeCustomer(*cmd.Customer)
			if err != nil {
				return err
			}
			e.Customer = customer
		}
		if cmd.DefaultMarkup != nil {
			if !validMarkup(*cmd.DefaultMarkup) {
				return ErrInvalidMarkup
			}
			e.DefaultMarkup = *cmd.DefaultMarkup
		}
		if cmd.Notes != nil {
			e.Notes = strings.TrimSpace(*cmd.Notes)
		}
		return nil
	})
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (PricedEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PricedEstimate{}, ErrInvalidEstimateID
	}
	if !status.Valid() {
		return PricedEstimate{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status, u.now())
	if err != nil {
		return PricedEstimate{}, err
	}
	if updated.ID == "" {
		return PricedEstimate{}, ErrEstimateNotFound
	}
	log.Info().Str("estimate_id", id).Str("status", string(status)).Msg("[estimate][usecase] status changed")

	u.publish(ctx, entities.EstimateEventStatusChanged, updated)
	return price(updated), nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateNotFound
	}
	log.Info().Str("estimate_id", id).Msg("[estimate][usecase] deleted")

	u.publish(ctx, entities.EstimateEventDeleted, entities.Estimate{ID: id})
	return nil
}

func (u *EstimateUseCase) AddRoom(ctx context.Context, id string, cmd RoomCommand) (PricedEstimate, error) {
	room, err := u.newRoom(cmd)
	if err != nil {
		return PricedEstimate{}, err
	}
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		e.Rooms = append(e.Rooms, room)
		return nil
	})
}

func (u *EstimateUseCase) UpdateRoom(ctx context.Context, id, roomID string, cmd RoomCommand) (PricedEstimate, error) {
	name, err := validateRoom(cmd)
	if err != nil {
		return PricedEstimate{}, err
	}
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		room, err := findRoom(e, roomID)
		if err != nil {
			return err
		}
		room.Name = name
		room.Width = cmd.Width
		room.Length = cmd.Length
		return nil
	})
}

func (u *EstimateUseCase) RemoveRoom(ctx context.Context, id, roomID string) (PricedEstimate, error) {
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		idx := e.RoomIndex(strings.TrimSpace(roomID))
		if idx < 0 {
			return ErrRoomNotFound
		}
		e.Rooms = append(e.Rooms[:idx], e.Rooms[idx+1:]...)
		return nil
	})
}

func (u *EstimateUseCase) AddProduct(ctx context.Context, id, roomID, productID string) (PricedEstimate, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return PricedEstimate{}, ErrInvalidProductID
	}
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		room, err := findRoom(e, roomID)
		if err != nil {
			return err
		}
		if room.HasProduct(productID) {
			return ErrProductAlreadyInRoom
		}
		line, err := u.selectLine(ctx, productID)
		if err != nil {
			return err
		}
		line.ID = u.newID()
		room.Items = append(room.Items, entities.NewProductItem(line))
		return nil
	})
}

func (u *EstimateUseCase) ReplaceProduct(ctx context.Context, id, roomID, itemID, productID string) (PricedEstimate, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return PricedEstimate{}, ErrInvalidProductID
	}
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		room, err := findRoom(e, roomID)
		if err != nil {
			return err
		}
		idx := room.ItemIndex(strings.TrimSpace(itemID))
		if idx < 0 || room.Items[idx].Kind != entities.ItemKindProduct || room.Items[idx].Product == nil {
			return ErrItemNotFound
		}
		current := room.Items[idx].Product
		if current.ProductID != productID && room.HasProduct(productID) {
			return ErrProductAlreadyInRoom
		}
		line, err := u.selectLine(ctx, productID)
		if err != nil {
			return err
		}
		line.ID = current.ID
		room.Items[idx] = entities.NewProductItem(line)
		return nil
	})
}

func (u *EstimateUseCase) AddNote(ctx context.Context, id, roomID, text string) (PricedEstimate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return PricedEstimate{}, ErrInvalidNote
	}
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		room, err := findRoom(e, roomID)
		if err != nil {
			return err
		}
		room.Items = append(room.Items, entities.NewNoteItem(entities.Note{ID: u.newID(), Text: text}))
		return nil
	})
}

func (u *EstimateUseCase) RemoveItem(ctx context.Context, id, roomID, itemID string) (PricedEstimate, error) {
	return u.mutate(ctx, id, entities.EstimateEventUpdated, func(e *entities.Estimate) error {
		room, err := findRoom(e, roomID)
		if err != nil {
			return err
		}
		idx := room.ItemIndex(strings.TrimSpace(itemID))
		if idx < 0 {
			return ErrItemNotFound
		}
		room.Items = append(room.Items[:idx], room.Items[idx+1:]...)
		return nil
	})
}

func (u *EstimateUseCase) PreviewBreakdown(ctx context.Context, productID string, roomArea float64) (pricing.Breakdown, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return pricing.Breakdown{}, ErrInvalidProductID
	}
	if u.selector == nil {
		return pricing.Breakdown{}, ErrProductNotFound
	}
	b := u.selector.ResolveAdditions(ctx, productID, roomArea)
	if len(b.Entries) == 0 {
		return pricing.Breakdown{}, ErrProductNotFound
	}
	return b, nil
}

// mutate loads an estimate, applies fn, reprices it and writes it back whole.
func (u *EstimateUseCase) mutate(ctx context.Context, id string, event entities.EstimateEventType, fn func(e *entities.Estimate) error) (PricedEstimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return PricedEstimate{}, err
	}
	if err := fn(&e); err != nil {
		return PricedEstimate{}, err
	}

	e.UpdatedAt = u.now()
	priced := price(e)
	updated, err := u.repo.Replace(ctx, priced.Estimate)
	if err != nil {
		log.Error().Err(err).Str("estimate_id", e.ID).Msg("[estimate][usecase] write failed")
		return PricedEstimate{}, err
	}
	if updated.ID == "" {
		return PricedEstimate{}, ErrEstimateNotFound
	}

	u.publish(ctx, event, updated)
	return PricedEstimate{Estimate: updated, Totals: priced.Totals}, nil
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) selectLine(ctx context.Context, productID string) (entities.ProductLine, error) {
	if u.selector == nil {
		return entities.ProductLine{}, ErrProductNotFound
	}
	sel, err := u.selector.Select(ctx, productID)
	if err != nil {
		if errors.Is(err, pricing.ErrProductUnavailable) {
			log.Warn().Err(err).Str("product_id", productID).Msg("[estimate][usecase] product unavailable")
			return entities.ProductLine{}, ErrProductNotFound
		}
		return entities.ProductLine{}, err
	}
	return entities.ProductLine{
		ProductID:          sel.Primary.ProductID,
		Name:               sel.Primary.Name,
		PricingMethod:      sel.Primary.PricingMethod,
		MinPrice:           sel.Primary.MinPrice,
		MaxPrice:           sel.Primary.MaxPrice,
		AdditionalProducts: sel.Additions,
	}, nil
}

func (u *EstimateUseCase) buildEstimate(cmd SaveEstimateCommand) (entities.Estimate, error) {
	customer, err := normalizeCustomer(cmd.Customer)
	if err != nil {
		return entities.Estimate{}, err
	}

	markup := u.defaultMarkup
	if cmd.DefaultMarkup != nil {
		markup = *cmd.DefaultMarkup
	}
	if !validMarkup(markup) {
		return entities.Estimate{}, ErrInvalidMarkup
	}

	seen := make(map[string]struct{})
	rooms := make([]entities.Room, 0, len(cmd.Rooms))
	for _, r := range cmd.Rooms {
		room, err := u.normalizeRoom(r, seen)
		if err != nil {
			return entities.Estimate{}, err
		}
		rooms = append(rooms, room)
	}

	return entities.Estimate{
		Name:          strings.TrimSpace(cmd.Name),
		Customer:      customer,
		DefaultMarkup: markup,
		Notes:         strings.TrimSpace(cmd.Notes),
		Rooms:         rooms,
	}, nil
}

// normalizeRoom validates a room coming from a client draft and assigns ids
// to the room and its items where missing. seen collects room and item ids
// across the whole draft; a repeated id is rejected.
func (u *EstimateUseCase) normalizeRoom(r entities.Room, seen map[string]struct{}) (entities.Room, error) {
	name, err := validateRoom(RoomCommand{Name: r.Name, Width: r.Width, Length: r.Length})
	if err != nil {
		return entities.Room{}, err
	}
	r.Name = name
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		r.ID = u.newID()
	}
	if err := claimID(seen, r.ID); err != nil {
		return entities.Room{}, err
	}

	products := make(map[string]struct{}, len(r.Items))
	items := make([]entities.RoomItem, 0, len(r.Items))
	for _, it := range r.Items {
		switch {
		case it.Kind == entities.ItemKindProduct && it.Product != nil:
			line := *it.Product
			line.ProductID = strings.TrimSpace(line.ProductID)
			if line.ProductID == "" {
				return entities.Room{}, ErrInvalidProductID
			}
			if _, dup := products[line.ProductID]; dup {
				return entities.Room{}, ErrProductAlreadyInRoom
			}
			products[line.ProductID] = struct{}{}
			if !validPrice(line.Priced()) {
				return entities.Room{}, ErrInvalidRoom
			}
			for _, a := range line.AdditionalProducts {
				if !validPrice(a) {
					return entities.Room{}, ErrInvalidRoom
				}
			}
			if line.ID == "" {
				line.ID = u.newID()
			}
			if err := claimID(seen, line.ID); err != nil {
				return entities.Room{}, err
			}
			items = append(items, entities.NewProductItem(line))
		case it.Kind == entities.ItemKindNote && it.Note != nil:
			note := *it.Note
			note.Text = strings.TrimSpace(note.Text)
			if note.Text == "" {
				return entities.Room{}, ErrInvalidNote
			}
			if note.ID == "" {
				note.ID = u.newID()
			}
			if err := claimID(seen, note.ID); err != nil {
				return entities.Room{}, err
			}
			items = append(items, entities.NewNoteItem(note))
		default:
			return entities.Room{}, ErrInvalidRoom
		}
	}
	r.Items = items
	return r, nil
}

func claimID(seen map[string]struct{}, id string) error {
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidRoom, id)
	}
	seen[id] = struct{}{}
	return nil
}

func (u *EstimateUseCase) newRoom(cmd RoomCommand) (entities.Room, error) {
	name, err := validateRoom(cmd)
	if err != nil {
		return entities.Room{}, err
	}
	return entities.Room{ID: u.newID(), Name: name, Width: cmd.Width, Length: cmd.Length}, nil
}

func (u *EstimateUseCase) publish(ctx context.Context, eventType entities.EstimateEventType, e entities.Estimate) {
	if u.publisher == nil {
		return
	}
	event := entities.EstimateEvent{
		Type:       eventType,
		EstimateID: e.ID,
		Name:       e.Name,
		Email:      e.Customer.Email,
		Status:     e.Status,
		MinTotal:   e.MinTotal,
		MaxTotal:   e.MaxTotal,
		OccurredAt: u.now(),
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("estimate_id", e.ID).Str("event", string(eventType)).Msg("[estimate][usecase] event publish failed")
	}
}

// price recomputes totals and refreshes the denormalized summary columns.
func price(e entities.Estimate) PricedEstimate {
	totals := pricing.RecomputeEstimate(e)
	e.MinTotal = totals.MinTotal
	e.MaxTotal = totals.MaxTotal
	return PricedEstimate{Estimate: e, Totals: totals}
}

func findRoom(e *entities.Estimate, roomID string) (*entities.Room, error) {
	idx := e.RoomIndex(strings.TrimSpace(roomID))
	if idx < 0 {
		return nil, ErrRoomNotFound
	}
	return &e.Rooms[idx], nil
}

// MaxRoomDimension caps width and length, in meters.
const MaxRoomDimension = 10000

// MaxUnitPrice caps prices carried in client drafts.
const MaxUnitPrice = 1e9

func validateRoom(cmd RoomCommand) (string, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" || !validDimension(cmd.Width) || !validDimension(cmd.Length) {
		return "", ErrInvalidRoom
	}
	return name, nil
}

func validMarkup(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func validDimension(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= MaxRoomDimension
}

func validPrice(p entities.PricedProduct) bool {
	for _, v := range []float64{p.MinPrice, p.MaxPrice} {
		if math.IsNaN(v) || v < 0 || v > MaxUnitPrice {
			return false
		}
	}
	return true
}

func normalizeCustomer(c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Postcode = strings.TrimSpace(c.Postcode)
	if c.Email != "" {
		addr, err := mail.ParseAddress(c.Email)
		if err != nil || addr.Name != "" || addr.Address != c.Email {
			return entities.Customer{}, ErrInvalidEmail
		}
	}
	return c, nil
}
