package app

import (
	"github.com/PinjaMari/earn-to-own/internal/config"
	"github.com/PinjaMari/earn-to-own/internal/event_bus"
	"github.com/PinjaMari/earn-to-own/internal/utils"
	"github.com/PinjaMari/earn-to-own/pkg/calculator"
	"github.com/PinjaMari/earn-to-own/pkg/suggestions"
	"github.com/PinjaMari/earn-to-own/pkg/translations"
	"github.com/PinjaMari/earn-to-own/pkg/wishlist"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	WishlistStore *wishlist.Store

	CalculatorService calculator.Service
	CalculatorHandler *calculator.Handler

	TranslationsHandler *translations.Handler
	SuggestionsHandler  *suggestions.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = utils.SystemClock{}

	deps.WishlistStore = wishlist.NewStore(deps.Clock)
	deps.CalculatorService = calculator.NewService(
		deps.WishlistStore,
		deps.Bus,
		translations.Language(cfg.Defaults.Language),
		translations.Currency(cfg.Defaults.Currency),
	)
	deps.CalculatorHandler = calculator.NewHandler(deps.CalculatorService)

	deps.TranslationsHandler = translations.NewHandler()
	deps.SuggestionsHandler = suggestions.NewHandler()

	subscribeStateLogging(deps.Bus)

	return deps
}

// subscribeStateLogging mirrors every state change onto the debug log.
func subscribeStateLogging(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.InputChanged, func(e event_bus.Event) {
		if change, ok := e.Data.(event_bus.InputChange); ok {
			log.Debugf("input changed: %s = %q", change.Field, change.Value)
		}
	})
	bus.Subscribe(event_bus.WishlistItemAdded, func(e event_bus.Event) {
		if change, ok := e.Data.(event_bus.WishlistChange); ok {
			log.Debugf("wishlist item added: %s (%.1fh)", change.Name, change.HoursNeeded)
		}
	})
	bus.Subscribe(event_bus.WishlistItemRemoved, func(e event_bus.Event) {
		if change, ok := e.Data.(event_bus.WishlistChange); ok {
			log.Debugf("wishlist item removed: %s", change.ID)
		}
	})
}
