package translations

// Currency identifies one of the supported display currencies. Currencies are
// cosmetic labels only: switching currency never rescales amounts.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	SEK Currency = "SEK"
	NOK Currency = "NOK"
	DKK Currency = "DKK"
	PLN Currency = "PLN"
	CHF Currency = "CHF"
)

// DefaultCurrency is used when no currency has been selected yet.
const DefaultCurrency = EUR

// CurrencyInfo is the display metadata of a currency.
type CurrencyInfo struct {
	Symbol string
	Name   string
}

var currencies = map[Currency]CurrencyInfo{
	EUR: {Symbol: "€", Name: "Euro"},
	USD: {Symbol: "$", Name: "US Dollar"},
	GBP: {Symbol: "£", Name: "British Pound"},
	SEK: {Symbol: "kr", Name: "Swedish Krona"},
	NOK: {Symbol: "kr", Name: "Norwegian Krone"},
	DKK: {Symbol: "kr", Name: "Danish Krone"},
	PLN: {Symbol: "zł", Name: "Polish Złoty"},
	CHF: {Symbol: "CHF", Name: "Swiss Franc"},
}

// SupportedCurrencies returns all currencies in picker order.
func SupportedCurrencies() []Currency {
	return []Currency{EUR, USD, GBP, SEK, NOK, DKK, PLN, CHF}
}

// IsSupportedCurrency reports whether c is part of the closed currency set.
func IsSupportedCurrency(c Currency) bool {
	_, ok := currencies[c]
	return ok
}

// CurrencyFor returns the display metadata for c, falling back to the default
// currency for unknown codes so the lookup stays total.
func CurrencyFor(c Currency) CurrencyInfo {
	info, ok := currencies[c]
	if !ok {
		return currencies[DefaultCurrency]
	}
	return info
}
