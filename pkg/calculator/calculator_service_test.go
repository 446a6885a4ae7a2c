package calculator

import (
	"testing"
	"time"

	"github.com/PinjaMari/earn-to-own/internal/event_bus"
	"github.com/PinjaMari/earn-to-own/internal/utils"
	"github.com/PinjaMari/earn-to-own/pkg/translations"
	"github.com/PinjaMari/earn-to-own/pkg/wishlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}

func setup(t *testing.T) (*ServiceImpl, *event_bus.EventBus) {
	bus := event_bus.NewEventBus()
	store := wishlist.NewStore(clock)
	service := NewService(store, bus, translations.DefaultLanguage, translations.DefaultCurrency)
	return service, bus
}

func TestService_SnapshotWithoutValidInputHasNoResult(t *testing.T) {
	service, _ := setup(t)

	// given
	service.SetHourlyWage("0")
	service.SetProductPrice("50")

	// when
	snapshot := service.Snapshot()

	// then
	assert.Nil(t, snapshot.Result)
	assert.Nil(t, snapshot.Progress)
	assert.Equal(t, translations.DefaultLanguage, snapshot.Input.Language)
	assert.NotEmpty(t, snapshot.Labels[translations.LabelEnterDetails])
}

func TestService_SnapshotComputesBreakdown(t *testing.T) {
	service, _ := setup(t)

	// given
	service.SetHourlyWage("25.00")
	service.SetProductPrice("499.99")

	// when
	snapshot := service.Snapshot()

	// then
	require.NotNil(t, snapshot.Result)
	assert.InDelta(t, 19.9996, snapshot.Result.Hours, 1e-9)
	assert.InDelta(t, 2.49995, snapshot.Result.Days, 1e-9)
	assert.InDelta(t, 0.49999, snapshot.Result.Weeks, 1e-6)
	assert.InDelta(t, 1199.976, snapshot.Result.Minutes, 1e-9)
	// 19.9996 hours falls into the "few days" message bucket
	assert.Equal(t, snapshot.Labels[translations.MotivationFewDays], snapshot.Result.Motivation)
}

func TestService_SnapshotRecomputesOnEveryChange(t *testing.T) {
	service, _ := setup(t)
	service.SetHourlyWage("25")
	service.SetProductPrice("100")
	require.InDelta(t, 4.0, service.Snapshot().Result.Hours, 1e-9)

	// when the wage changes, the derived state follows immediately
	service.SetHourlyWage("50")

	assert.InDelta(t, 2.0, service.Snapshot().Result.Hours, 1e-9)
}

func TestService_SnapshotToleratesPartialInput(t *testing.T) {
	service, _ := setup(t)

	service.SetHourlyWage("25.")
	service.SetProductPrice("abc")

	// "abc" parses to 0 so there is no result rather than an error
	assert.Nil(t, service.Snapshot().Result)
}

func TestService_ProgressFollowsHoursWorked(t *testing.T) {
	service, _ := setup(t)
	service.SetHourlyWage("25")
	service.SetProductPrice("500") // 20 hours

	// given
	service.SetHoursWorked("5")

	// when
	snapshot := service.Snapshot()

	// then
	require.NotNil(t, snapshot.Progress)
	assert.InDelta(t, 25.0, snapshot.Progress.Percentage, 1e-9)
	assert.InDelta(t, 15.0, snapshot.Progress.RemainingHours, 1e-9)
}

func TestService_SetLanguageSwitchesLabels(t *testing.T) {
	service, _ := setup(t)

	require.NoError(t, service.SetLanguage(translations.Finnish))

	snapshot := service.Snapshot()
	assert.Equal(t, translations.Finnish, snapshot.Input.Language)
	assert.Equal(t, "Toivelista", snapshot.Labels[translations.LabelWishlist])
}

func TestService_SetLanguageRejectsUnknownLanguage(t *testing.T) {
	service, _ := setup(t)

	err := service.SetLanguage(translations.Language("xx"))

	assert.Error(t, err)
	assert.Equal(t, translations.DefaultLanguage, service.Snapshot().Input.Language)
}

func TestService_SetCurrencyIsCosmeticOnly(t *testing.T) {
	service, _ := setup(t)
	service.SetHourlyWage("25")
	service.SetProductPrice("100")
	before := service.Snapshot()

	require.NoError(t, service.SetCurrency(translations.USD))

	after := service.Snapshot()
	assert.Equal(t, "$", after.CurrencySymbol)
	assert.Equal(t, before.Result.Hours, after.Result.Hours)
}

func TestService_SetCurrencyRejectsUnknownCurrency(t *testing.T) {
	service, _ := setup(t)

	assert.Error(t, service.SetCurrency(translations.Currency("BTC")))
}

func TestService_SelectSuggestionPrefillsInput(t *testing.T) {
	service, _ := setup(t)
	require.NoError(t, service.SetLanguage(translations.Finnish))

	// when
	ok := service.SelectSuggestion("Kahvi")

	// then
	require.True(t, ok)
	snapshot := service.Snapshot()
	assert.Equal(t, "Kahvi", snapshot.Input.ProductName)
	assert.Equal(t, "4.5", snapshot.Input.ProductPrice)
}

func TestService_SelectSuggestionUnknownNameIsRejected(t *testing.T) {
	service, _ := setup(t)

	assert.False(t, service.SelectSuggestion("Spaceship"))
	assert.Empty(t, service.Snapshot().Input.ProductName)
}

func TestService_AddToWishlist(t *testing.T) {
	service, _ := setup(t)
	service.SetHourlyWage("25.00")
	service.SetProductPrice("499.99")
	service.SetProductName("Phone")

	// when
	item, ok := service.AddToWishlist()

	// then
	require.True(t, ok)
	assert.Equal(t, "Phone", item.Name)
	assert.Equal(t, 499.99, item.Price)
	assert.InDelta(t, 19.9996, item.HoursNeeded, 1e-9)

	items := service.Wishlist()
	require.Len(t, items, 1)
	assert.Equal(t, "Phone", items[0].Name)

	// and the removal brings the list back to empty
	require.True(t, service.RemoveFromWishlist(item.ID))
	assert.Empty(t, service.Wishlist())
}

func TestService_AddToWishlistRequiresAName(t *testing.T) {
	service, _ := setup(t)
	service.SetHourlyWage("25")
	service.SetProductPrice("100")
	service.SetProductName("   ")

	_, ok := service.AddToWishlist()

	assert.False(t, ok)
	assert.Empty(t, service.Wishlist())
}

func TestService_AddToWishlistRequiresAValidCalculation(t *testing.T) {
	service, _ := setup(t)
	service.SetProductName("Phone")
	service.SetProductPrice("100")
	// wage left empty

	_, ok := service.AddToWishlist()

	assert.False(t, ok)
	assert.Empty(t, service.Wishlist())
}

func TestService_SelectWishlistItemCopiesInputBack(t *testing.T) {
	service, _ := setup(t)
	service.SetHourlyWage("25.00")
	service.SetProductPrice("499.99")
	service.SetProductName("Phone")
	item, ok := service.AddToWishlist()
	require.True(t, ok)

	// given a different working input
	service.SetProductName("Coffee")
	service.SetProductPrice("4.50")

	// when
	require.True(t, service.SelectWishlistItem(item.ID))

	// then the saved values are back, and the item is still saved
	snapshot := service.Snapshot()
	assert.Equal(t, "Phone", snapshot.Input.ProductName)
	assert.Equal(t, "499.99", snapshot.Input.ProductPrice)
	assert.Len(t, service.Wishlist(), 1)
}

func TestService_SelectWishlistItemUnknownId(t *testing.T) {
	service, _ := setup(t)

	assert.False(t, service.SelectWishlistItem("no-such-id"))
}

func TestService_SelectionsPublishBothChangedFields(t *testing.T) {
	service, bus := setup(t)
	service.SetHourlyWage("25.00")
	service.SetProductPrice("499.99")
	service.SetProductName("Phone")
	item, ok := service.AddToWishlist()
	require.True(t, ok)

	var changes []event_bus.InputChange
	bus.Subscribe(event_bus.InputChanged, func(e event_bus.Event) {
		if change, isChange := e.Data.(event_bus.InputChange); isChange {
			changes = append(changes, change)
		}
	})

	// when a suggestion is selected, both prefilled fields are announced
	require.True(t, service.SelectSuggestion("Coffee"))
	require.Len(t, changes, 2)
	assert.Equal(t, event_bus.InputChange{Field: "productName", Value: "Coffee"}, changes[0])
	assert.Equal(t, event_bus.InputChange{Field: "productPrice", Value: "4.5"}, changes[1])

	// and the same holds for selecting a saved wishlist item
	changes = nil
	require.True(t, service.SelectWishlistItem(item.ID))
	require.Len(t, changes, 2)
	assert.Equal(t, event_bus.InputChange{Field: "productName", Value: "Phone"}, changes[0])
	assert.Equal(t, event_bus.InputChange{Field: "productPrice", Value: "499.99"}, changes[1])
}

func TestService_PublishesEventsOnChanges(t *testing.T) {
	service, bus := setup(t)

	var inputEvents []event_bus.Event
	unsubscribe := bus.Subscribe(event_bus.InputChanged, func(e event_bus.Event) {
		inputEvents = append(inputEvents, e)
	})
	defer unsubscribe()

	var added []event_bus.Event
	bus.Subscribe(event_bus.WishlistItemAdded, func(e event_bus.Event) {
		added = append(added, e)
	})

	// when
	service.SetHourlyWage("25")
	service.SetProductPrice("100")
	service.SetProductName("Phone")
	_, ok := service.AddToWishlist()
	require.True(t, ok)

	// then
	assert.Len(t, inputEvents, 3)
	require.Len(t, added, 1)
	change, isChange := added[0].Data.(event_bus.WishlistChange)
	require.True(t, isChange)
	assert.Equal(t, "Phone", change.Name)
}
