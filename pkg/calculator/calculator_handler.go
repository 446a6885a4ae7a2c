package calculator

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/PinjaMari/earn-to-own/pkg/translations"
	"github.com/PinjaMari/earn-to-own/pkg/wishlist"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ValueDTO struct {
	Value string `json:"value"`
}

type LanguageSelectionDTO struct {
	Language string `json:"language"`
}

type CurrencySelectionDTO struct {
	Currency string `json:"currency"`
}

type SuggestionSelectionDTO struct {
	Name string `json:"name"`
}

type ResultDTO struct {
	Hours          float64 `json:"hours"`
	Days           float64 `json:"days"`
	Weeks          float64 `json:"weeks"`
	Minutes        float64 `json:"minutes"`
	HoursDisplay   string  `json:"hoursDisplay"`
	DaysDisplay    string  `json:"daysDisplay"`
	WeeksDisplay   string  `json:"weeksDisplay"`
	MinutesDisplay string  `json:"minutesDisplay"`
	Motivation     string  `json:"motivation"`
}

type ProgressDTO struct {
	Percentage        float64 `json:"percentage"`
	RemainingHours    float64 `json:"remainingHours"`
	PercentageDisplay string  `json:"percentageDisplay"`
	RemainingDisplay  string  `json:"remainingDisplay"`
}

type WishlistItemDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	HoursNeeded float64   `json:"hoursNeeded"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SnapshotDTO struct {
	Language       string            `json:"language"`
	LanguageName   string            `json:"languageName"`
	Currency       string            `json:"currency"`
	CurrencySymbol string            `json:"currencySymbol"`
	HourlyWage     string            `json:"hourlyWage"`
	ProductPrice   string            `json:"productPrice"`
	ProductName    string            `json:"productName"`
	HoursWorked    string            `json:"hoursWorked"`
	Labels         map[string]string `json:"labels"`
	Result         *ResultDTO        `json:"result,omitempty"`
	Progress       *ProgressDTO      `json:"progress,omitempty"`
	Wishlist       []WishlistItemDTO `json:"wishlist"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetSnapshot returns the full derived view state.
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	h.writeSnapshot(w)
}

func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var dto LanguageSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SetLanguage(translations.Language(dto.Language)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeSnapshot(w)
}

func (h *Handler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	var dto CurrencySelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SetCurrency(translations.Currency(dto.Currency)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeSnapshot(w)
}

func (h *Handler) SetHourlyWage(w http.ResponseWriter, r *http.Request) {
	h.setTextField(w, r, h.service.SetHourlyWage)
}

func (h *Handler) SetProductPrice(w http.ResponseWriter, r *http.Request) {
	h.setTextField(w, r, h.service.SetProductPrice)
}

func (h *Handler) SetProductName(w http.ResponseWriter, r *http.Request) {
	h.setTextField(w, r, h.service.SetProductName)
}

func (h *Handler) SetHoursWorked(w http.ResponseWriter, r *http.Request) {
	h.setTextField(w, r, h.service.SetHoursWorked)
}

// SelectSuggestion pre-fills the input with a catalog product of the active
// language.
func (h *Handler) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	var dto SuggestionSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.service.SelectSuggestion(dto.Name) {
		http.Error(w, "suggestion not found", http.StatusNotFound)
		return
	}
	h.writeSnapshot(w)
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items := h.service.Wishlist()
	dtos := make([]WishlistItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// AddToWishlist commits the current calculation as a wishlist item.
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding current calculation to wishlist")
	w.Header().Set("Content-Type", "application/json")

	item, ok := h.service.AddToWishlist()
	if !ok {
		http.Error(w, "a product name and a valid calculation are required", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(itemToDTO(item)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	itemId := mux.Vars(r)["itemId"]

	if !h.service.RemoveFromWishlist(itemId) {
		http.Error(w, "Wishlist item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectWishlistItem copies a saved item back into the working input.
func (h *Handler) SelectWishlistItem(w http.ResponseWriter, r *http.Request) {
	itemId := mux.Vars(r)["itemId"]

	if !h.service.SelectWishlistItem(itemId) {
		http.Error(w, "Wishlist item not found", http.StatusNotFound)
		return
	}
	h.writeSnapshot(w)
}

func (h *Handler) setTextField(w http.ResponseWriter, r *http.Request, set func(string)) {
	var dto ValueDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	set(dto.Value)
	h.writeSnapshot(w)
}

func (h *Handler) writeSnapshot(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshotToDTO(h.service.Snapshot())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func snapshotToDTO(s Snapshot) SnapshotDTO {
	labels := make(map[string]string, len(s.Labels))
	for k, v := range s.Labels {
		labels[string(k)] = v
	}

	dto := SnapshotDTO{
		Language:       string(s.Input.Language),
		LanguageName:   translations.Name(s.Input.Language),
		Currency:       string(s.Input.Currency),
		CurrencySymbol: s.CurrencySymbol,
		HourlyWage:     s.Input.HourlyWage,
		ProductPrice:   s.Input.ProductPrice,
		ProductName:    s.Input.ProductName,
		HoursWorked:    s.Input.HoursWorked,
		Labels:         labels,
		Wishlist:       make([]WishlistItemDTO, 0, len(s.Wishlist)),
	}
	for _, item := range s.Wishlist {
		dto.Wishlist = append(dto.Wishlist, itemToDTO(item))
	}

	if s.Result != nil {
		dto.Result = &ResultDTO{
			Hours:          s.Result.Hours,
			Days:           s.Result.Days,
			Weeks:          s.Result.Weeks,
			Minutes:        s.Result.Minutes,
			HoursDisplay:   FormatValue(s.Result.Hours, 1),
			DaysDisplay:    FormatValue(s.Result.Days, 1),
			WeeksDisplay:   FormatValue(s.Result.Weeks, 1),
			MinutesDisplay: FormatValue(s.Result.Minutes, 0),
			Motivation:     s.Result.Motivation,
		}
	}
	if s.Progress != nil {
		dto.Progress = &ProgressDTO{
			Percentage:        s.Progress.Percentage,
			RemainingHours:    s.Progress.RemainingHours,
			PercentageDisplay: strconv.FormatFloat(s.Progress.Percentage, 'f', 1, 64),
			RemainingDisplay:  strconv.FormatFloat(s.Progress.RemainingHours, 'f', 1, 64),
		}
	}
	return dto
}

func itemToDTO(item wishlist.Item) WishlistItemDTO {
	return WishlistItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		HoursNeeded: item.HoursNeeded,
		CreatedAt:   item.CreatedAt,
	}
}
