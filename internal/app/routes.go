package app

import (
	"github.com/PinjaMari/earn-to-own/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calculator state
	r.HandleFunc("/api/calculator", deps.CalculatorHandler.GetSnapshot).Methods("GET")
	r.HandleFunc("/api/calculator/language", deps.CalculatorHandler.SetLanguage).Methods("PUT")
	r.HandleFunc("/api/calculator/currency", deps.CalculatorHandler.SetCurrency).Methods("PUT")
	r.HandleFunc("/api/calculator/wage", deps.CalculatorHandler.SetHourlyWage).Methods("PUT")
	r.HandleFunc("/api/calculator/price", deps.CalculatorHandler.SetProductPrice).Methods("PUT")
	r.HandleFunc("/api/calculator/name", deps.CalculatorHandler.SetProductName).Methods("PUT")
	r.HandleFunc("/api/calculator/hours-worked", deps.CalculatorHandler.SetHoursWorked).Methods("PUT")
	r.HandleFunc("/api/calculator/suggestion", deps.CalculatorHandler.SelectSuggestion).Methods("POST")

	// Wishlist
	r.HandleFunc("/api/wishlist", deps.CalculatorHandler.GetWishlist).Methods("GET")
	r.HandleFunc("/api/wishlist", deps.CalculatorHandler.AddToWishlist).Methods("POST")
	r.HandleFunc("/api/wishlist/{itemId}", deps.CalculatorHandler.RemoveFromWishlist).Methods("DELETE")
	r.HandleFunc("/api/wishlist/{itemId}/select", deps.CalculatorHandler.SelectWishlistItem).Methods("POST")

	// Catalogs
	r.HandleFunc("/api/suggestions", deps.SuggestionsHandler.GetSuggestions).Methods("GET")
	r.HandleFunc("/api/translations", deps.TranslationsHandler.GetTranslations).Methods("GET")
	r.HandleFunc("/api/currencies", deps.TranslationsHandler.GetCurrencies).Methods("GET")
}
