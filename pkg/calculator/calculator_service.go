package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/PinjaMari/earn-to-own/internal/event_bus"
	"github.com/PinjaMari/earn-to-own/internal/utils"
	"github.com/PinjaMari/earn-to-own/pkg/progress"
	"github.com/PinjaMari/earn-to-own/pkg/suggestions"
	"github.com/PinjaMari/earn-to-own/pkg/translations"
	"github.com/PinjaMari/earn-to-own/pkg/wishlist"
	log "github.com/sirupsen/logrus"
)

// WorkingInput is the live, uncommitted session state. Numeric fields stay
// raw text while the user edits them; they are parsed tolerantly at the point
// of computation.
type WorkingInput struct {
	Language     translations.Language
	Currency     translations.Currency
	HourlyWage   string
	ProductPrice string
	ProductName  string
	HoursWorked  string
}

// Result is a breakdown together with its translated motivational message.
type Result struct {
	Breakdown
	Motivation string
}

// Snapshot is the read-only view state handed to the presentation layer.
// Result and Progress are nil while the input is not yet valid.
type Snapshot struct {
	Input          WorkingInput
	CurrencySymbol string
	Labels         map[translations.LabelKey]string
	Result         *Result
	Progress       *progress.Progress
	Wishlist       []wishlist.Item
}

type Service interface {
	SetLanguage(lang translations.Language) error
	SetCurrency(currency translations.Currency) error
	SetHourlyWage(raw string)
	SetProductPrice(raw string)
	SetProductName(name string)
	SetHoursWorked(raw string)
	SelectSuggestion(name string) bool
	AddToWishlist() (wishlist.Item, bool)
	RemoveFromWishlist(id string) bool
	SelectWishlistItem(id string) bool
	Wishlist() []wishlist.Item
	Snapshot() Snapshot
}

// ServiceImpl owns the working input and the wishlist store. Derived values
// are recomputed from the current input on every Snapshot call, never cached.
type ServiceImpl struct {
	mu    sync.Mutex
	input WorkingInput
	store *wishlist.Store
	bus   *event_bus.EventBus
}

func NewService(store *wishlist.Store, bus *event_bus.EventBus, language translations.Language, currency translations.Currency) *ServiceImpl {
	if !translations.IsSupported(language) {
		language = translations.DefaultLanguage
	}
	if !translations.IsSupportedCurrency(currency) {
		currency = translations.DefaultCurrency
	}
	return &ServiceImpl{
		input: WorkingInput{Language: language, Currency: currency},
		store: store,
		bus:   bus,
	}
}

func (s *ServiceImpl) SetLanguage(lang translations.Language) error {
	if !translations.IsSupported(lang) {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	s.mu.Lock()
	s.input.Language = lang
	s.mu.Unlock()
	s.publishInputChange("language", string(lang))
	return nil
}

func (s *ServiceImpl) SetCurrency(currency translations.Currency) error {
	if !translations.IsSupportedCurrency(currency) {
		return fmt.Errorf("unsupported currency: %s", currency)
	}
	s.mu.Lock()
	s.input.Currency = currency
	s.mu.Unlock()
	s.publishInputChange("currency", string(currency))
	return nil
}

func (s *ServiceImpl) SetHourlyWage(raw string) {
	s.mu.Lock()
	s.input.HourlyWage = raw
	s.mu.Unlock()
	s.publishInputChange("hourlyWage", raw)
}

func (s *ServiceImpl) SetProductPrice(raw string) {
	s.mu.Lock()
	s.input.ProductPrice = raw
	s.mu.Unlock()
	s.publishInputChange("productPrice", raw)
}

func (s *ServiceImpl) SetProductName(name string) {
	s.mu.Lock()
	s.input.ProductName = name
	s.mu.Unlock()
	s.publishInputChange("productName", name)
}

func (s *ServiceImpl) SetHoursWorked(raw string) {
	s.mu.Lock()
	s.input.HoursWorked = raw
	s.mu.Unlock()
	s.publishInputChange("hoursWorked", raw)
}

// SelectSuggestion copies a catalog product's name and reference price into
// the working input. Returns false when the active language's list has no
// product with that name.
func (s *ServiceImpl) SelectSuggestion(name string) bool {
	s.mu.Lock()
	lang := s.input.Language
	s.mu.Unlock()

	product, found := suggestions.Find(lang, name)
	if !found {
		log.Debugf("suggestion not found for language %s: %s", lang, name)
		return false
	}

	priceRaw := strconv.FormatFloat(product.Price, 'f', -1, 64)
	s.mu.Lock()
	s.input.ProductName = product.Name
	s.input.ProductPrice = priceRaw
	s.mu.Unlock()
	s.publishInputChange("productName", product.Name)
	s.publishInputChange("productPrice", priceRaw)
	return true
}

// AddToWishlist commits the current calculation. It is a no-op (ok=false)
// when the product name is empty or when no valid breakdown exists.
func (s *ServiceImpl) AddToWishlist() (wishlist.Item, bool) {
	s.mu.Lock()
	name := strings.TrimSpace(s.input.ProductName)
	wage := utils.ParseDecimal(s.input.HourlyWage)
	price := utils.ParseDecimal(s.input.ProductPrice)
	s.mu.Unlock()

	breakdown, ok := Compute(wage, price)
	if !ok {
		log.Warn("rejected wishlist add: no valid calculation")
		return wishlist.Item{}, false
	}
	if name == "" {
		log.Warn("rejected wishlist add: no product name")
		return wishlist.Item{}, false
	}

	item, ok := s.store.Add(name, price, breakdown.Hours)
	if !ok {
		return wishlist.Item{}, false
	}
	s.bus.Publish(event_bus.NewEvent(event_bus.WishlistItemAdded, event_bus.WishlistChange{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		HoursNeeded: item.HoursNeeded,
	}))
	return item, true
}

func (s *ServiceImpl) RemoveFromWishlist(id string) bool {
	removed := s.store.Remove(id)
	if removed {
		s.bus.Publish(event_bus.NewEvent(event_bus.WishlistItemRemoved, event_bus.WishlistChange{ID: id}))
	}
	return removed
}

// SelectWishlistItem copies a saved item's price and name back into the
// working input. The item stays in the wishlist.
func (s *ServiceImpl) SelectWishlistItem(id string) bool {
	item, found := s.store.Get(id)
	if !found {
		return false
	}

	priceRaw := strconv.FormatFloat(item.Price, 'f', -1, 64)
	s.mu.Lock()
	s.input.ProductName = item.Name
	s.input.ProductPrice = priceRaw
	s.mu.Unlock()
	s.publishInputChange("productName", item.Name)
	s.publishInputChange("productPrice", priceRaw)
	return true
}

func (s *ServiceImpl) Wishlist() []wishlist.Item {
	return s.store.List()
}

// Snapshot recomputes all derived view state from the current input.
func (s *ServiceImpl) Snapshot() Snapshot {
	s.mu.Lock()
	input := s.input
	s.mu.Unlock()

	snapshot := Snapshot{
		Input:          input,
		CurrencySymbol: translations.CurrencyFor(input.Currency).Symbol,
		Labels:         translations.LabelsFor(input.Language),
		Wishlist:       s.store.List(),
	}

	wage := utils.ParseDecimal(input.HourlyWage)
	price := utils.ParseDecimal(input.ProductPrice)
	breakdown, ok := Compute(wage, price)
	if !ok {
		return snapshot
	}

	snapshot.Result = &Result{
		Breakdown:  breakdown,
		Motivation: snapshot.Labels[MotivationKey(breakdown.Hours)],
	}

	worked := utils.ParseDecimal(input.HoursWorked)
	if worked < 0 {
		worked = 0
	}
	p := progress.Track(worked, breakdown.Hours)
	snapshot.Progress = &p

	return snapshot
}

func (s *ServiceImpl) publishInputChange(field, value string) {
	s.bus.Publish(event_bus.NewEvent(event_bus.InputChanged, event_bus.InputChange{Field: field, Value: value}))
}
