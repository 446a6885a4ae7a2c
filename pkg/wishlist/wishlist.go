package wishlist

import "time"

// Item is a saved calculation: a named purchase, its price, and the work
// hours it costs at the wage it was saved with. The id is an opaque unique
// string; ordering comes from the store, not from the id.
type Item struct {
	ID          string
	Name        string
	Price       float64
	HoursNeeded float64
	CreatedAt   time.Time
}
