package event_bus

// Event types published by the calculator service.
const (
	InputChanged        EventType = "calculator.input.changed"
	WishlistItemAdded   EventType = "wishlist.item.added"
	WishlistItemRemoved EventType = "wishlist.item.removed"
)

// InputChange describes a single working-input field update.
type InputChange struct {
	Field string
	Value string
}

// WishlistChange describes a wishlist mutation.
type WishlistChange struct {
	ID          string
	Name        string
	Price       float64
	HoursNeeded float64
}
