package suggestions

import (
	"github.com/PinjaMari/earn-to-own/pkg/translations"
)

// Product is a catalog entry used to pre-fill the calculator inputs with a
// translated example purchase and its reference price.
type Product struct {
	Name  string
	Price float64
}

// Reference prices are shared across languages; only the names are localized.
var catalog = map[translations.Language][]Product{
	translations.English: {
		{Name: "Coffee", Price: 4.50},
		{Name: "Restaurant Meal", Price: 35.00},
		{Name: "Nice Shirt", Price: 49.99},
		{Name: "Concert Ticket", Price: 89.00},
		{Name: "New Phone", Price: 499.99},
	},
	translations.Finnish: {
		{Name: "Kahvi", Price: 4.50},
		{Name: "Ravintola-ateria", Price: 35.00},
		{Name: "Hieno Paita", Price: 49.99},
		{Name: "Konserttilippu", Price: 89.00},
		{Name: "Uusi Puhelin", Price: 499.99},
	},
	translations.Swedish: {
		{Name: "Kaffe", Price: 4.50},
		{Name: "Restaurangmiddag", Price: 35.00},
		{Name: "Fin skjorta", Price: 49.99},
		{Name: "Konsertbiljett", Price: 89.00},
		{Name: "Ny telefon", Price: 499.99},
	},
	translations.German: {
		{Name: "Kaffee", Price: 4.50},
		{Name: "Restaurantbesuch", Price: 35.00},
		{Name: "Schönes Hemd", Price: 49.99},
		{Name: "Konzertkarte", Price: 89.00},
		{Name: "Neues Handy", Price: 499.99},
	},
	translations.Spanish: {
		{Name: "Café", Price: 4.50},
		{Name: "Comida en restaurante", Price: 35.00},
		{Name: "Camisa bonita", Price: 49.99},
		{Name: "Entrada de concierto", Price: 89.00},
		{Name: "Teléfono nuevo", Price: 499.99},
	},
	translations.Polish: {
		{Name: "Kawa", Price: 4.50},
		{Name: "Obiad w restauracji", Price: 35.00},
		{Name: "Ładna koszula", Price: 49.99},
		{Name: "Bilet na koncert", Price: 89.00},
		{Name: "Nowy telefon", Price: 499.99},
	},
}

// ForLanguage returns the ordered suggestion list for lang. Unknown languages
// fall back to the default language so the lookup stays total.
func ForLanguage(lang translations.Language) []Product {
	list, ok := catalog[lang]
	if !ok {
		list = catalog[translations.DefaultLanguage]
	}
	out := make([]Product, len(list))
	copy(out, list)
	return out
}

// Find looks up a suggestion by its translated name within lang's list.
func Find(lang translations.Language, name string) (Product, bool) {
	for _, p := range ForLanguage(lang) {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
