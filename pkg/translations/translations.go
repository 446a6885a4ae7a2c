package translations

// Language identifies one of the supported UI languages.
type Language string

const (
	English Language = "en"
	Finnish Language = "fi"
	Swedish Language = "sv"
	German  Language = "de"
	Spanish Language = "es"
	Polish  Language = "pl"
)

// DefaultLanguage is used when no language has been selected yet.
const DefaultLanguage = English

// LabelKey identifies a single translatable UI label.
type LabelKey string

const (
	LabelHourlyWage         LabelKey = "hourlyWage"
	LabelProductPrice       LabelKey = "productPrice"
	LabelProductName        LabelKey = "productName"
	LabelSuggestions        LabelKey = "productSuggestions"
	LabelYouNeedToWork      LabelKey = "youNeedToWork"
	LabelHour               LabelKey = "hour"
	LabelHours              LabelKey = "hours"
	LabelToAfford           LabelKey = "toAfford"
	LabelMinutes            LabelKey = "minutes"
	LabelWorkDays           LabelKey = "workDays"
	LabelWeeks              LabelKey = "weeks"
	LabelEnterDetails       LabelKey = "enterDetails"
	LabelProgress           LabelKey = "progress"
	LabelHoursWorked        LabelKey = "hoursWorked"
	LabelRemaining          LabelKey = "remaining"
	LabelWishlist           LabelKey = "wishlist"
	LabelEmptyWishlist      LabelKey = "emptyWishlist"
	LabelAddToWishlist      LabelKey = "addToWishlist"
	LabelRemove             LabelKey = "remove"
	MotivationQuickWin      LabelKey = "motivationQuickWin"
	MotivationDayOrLess     LabelKey = "motivationDayOrLess"
	MotivationFewDays       LabelKey = "motivationFewDays"
	MotivationSolidGoal     LabelKey = "motivationSolidGoal"
	MotivationBigPurchase   LabelKey = "motivationBigPurchase"
)

// languageNames holds the self-describing name shown in the language picker.
var languageNames = map[Language]string{
	English: "English",
	Finnish: "Suomi",
	Swedish: "Svenska",
	German:  "Deutsch",
	Spanish: "Español",
	Polish:  "Polski",
}

var labels = map[Language]map[LabelKey]string{
	English: {
		LabelHourlyWage:       "Your Hourly Wage",
		LabelProductPrice:     "Product Price",
		LabelProductName:      "Product Name",
		LabelSuggestions:      "Suggestions",
		LabelYouNeedToWork:    "You need to work",
		LabelHour:             "hour",
		LabelHours:            "hours",
		LabelToAfford:         "to afford this purchase",
		LabelMinutes:          "minutes",
		LabelWorkDays:         "work days",
		LabelWeeks:            "weeks",
		LabelEnterDetails:     "Enter your wage and product price to see the calculation",
		LabelProgress:         "Progress",
		LabelHoursWorked:      "Hours worked",
		LabelRemaining:        "left",
		LabelWishlist:         "Wishlist",
		LabelEmptyWishlist:    "No saved items yet",
		LabelAddToWishlist:    "Add to wishlist",
		LabelRemove:           "Remove",
		MotivationQuickWin:    "🎉 Quick win! Less than an hour of work!",
		MotivationDayOrLess:   "💪 A day's work or less - totally doable!",
		MotivationFewDays:     "📅 A few days of hustle will get you there!",
		MotivationSolidGoal:   "🎯 A solid goal - keep grinding!",
		MotivationBigPurchase: "🚀 Big purchase! Maybe start a savings plan?",
	},
	Finnish: {
		LabelHourlyWage:       "Tuntipalkkasi",
		LabelProductPrice:     "Tuotteen hinta",
		LabelProductName:      "Tuotteen nimi",
		LabelSuggestions:      "Ehdotukset",
		LabelYouNeedToWork:    "Sinun täytyy työskennellä",
		LabelHour:             "tunti",
		LabelHours:            "tuntia",
		LabelToAfford:         "ostaaksesi tämän",
		LabelMinutes:          "minuuttia",
		LabelWorkDays:         "työpäivää",
		LabelWeeks:            "viikkoa",
		LabelEnterDetails:     "Syötä palkkasi ja tuotteen hinta nähdäksesi laskelman",
		LabelProgress:         "Edistyminen",
		LabelHoursWorked:      "Tehdyt tunnit",
		LabelRemaining:        "jäljellä",
		LabelWishlist:         "Toivelista",
		LabelEmptyWishlist:    "Ei tallennettuja kohteita",
		LabelAddToWishlist:    "Lisää toivelistalle",
		LabelRemove:           "Poista",
		MotivationQuickWin:    "🎉 Nopea voitto! Alle tunnin työ!",
		MotivationDayOrLess:   "💪 Päivän työ tai vähemmän - täysin mahdollista!",
		MotivationFewDays:     "📅 Muutama päivä ahkerointia riittää!",
		MotivationSolidGoal:   "🎯 Kunnon tavoite - jatka samaan malliin!",
		MotivationBigPurchase: "🚀 Iso ostos! Ehkä kannattaa aloittaa säästäminen?",
	},
	Swedish: {
		LabelHourlyWage:       "Din timlön",
		LabelProductPrice:     "Produktpris",
		LabelProductName:      "Produktnamn",
		LabelSuggestions:      "Förslag",
		LabelYouNeedToWork:    "Du behöver arbeta",
		LabelHour:             "timme",
		LabelHours:            "timmar",
		LabelToAfford:         "för att ha råd med köpet",
		LabelMinutes:          "minuter",
		LabelWorkDays:         "arbetsdagar",
		LabelWeeks:            "veckor",
		LabelEnterDetails:     "Ange din lön och produktens pris för att se beräkningen",
		LabelProgress:         "Framsteg",
		LabelHoursWorked:      "Arbetade timmar",
		LabelRemaining:        "kvar",
		LabelWishlist:         "Önskelista",
		LabelEmptyWishlist:    "Inga sparade objekt ännu",
		LabelAddToWishlist:    "Lägg till i önskelistan",
		LabelRemove:           "Ta bort",
		MotivationQuickWin:    "🎉 Snabb vinst! Mindre än en timmes arbete!",
		MotivationDayOrLess:   "💪 En dags arbete eller mindre - fullt möjligt!",
		MotivationFewDays:     "📅 Några dagars slit tar dig dit!",
		MotivationSolidGoal:   "🎯 Ett rejält mål - fortsätt kämpa!",
		MotivationBigPurchase: "🚀 Stort köp! Kanske dags att börja spara?",
	},
	German: {
		LabelHourlyWage:       "Dein Stundenlohn",
		LabelProductPrice:     "Produktpreis",
		LabelProductName:      "Produktname",
		LabelSuggestions:      "Vorschläge",
		LabelYouNeedToWork:    "Du musst arbeiten",
		LabelHour:             "Stunde",
		LabelHours:            "Stunden",
		LabelToAfford:         "um dir diesen Kauf zu leisten",
		LabelMinutes:          "Minuten",
		LabelWorkDays:         "Arbeitstage",
		LabelWeeks:            "Wochen",
		LabelEnterDetails:     "Gib deinen Lohn und den Produktpreis ein, um die Berechnung zu sehen",
		LabelProgress:         "Fortschritt",
		LabelHoursWorked:      "Gearbeitete Stunden",
		LabelRemaining:        "übrig",
		LabelWishlist:         "Wunschliste",
		LabelEmptyWishlist:    "Noch keine gespeicherten Einträge",
		LabelAddToWishlist:    "Zur Wunschliste hinzufügen",
		LabelRemove:           "Entfernen",
		MotivationQuickWin:    "🎉 Schneller Erfolg! Weniger als eine Stunde Arbeit!",
		MotivationDayOrLess:   "💪 Ein Arbeitstag oder weniger - machbar!",
		MotivationFewDays:     "📅 Ein paar Tage Einsatz bringen dich ans Ziel!",
		MotivationSolidGoal:   "🎯 Ein solides Ziel - bleib dran!",
		MotivationBigPurchase: "🚀 Große Anschaffung! Vielleicht einen Sparplan starten?",
	},
	Spanish: {
		LabelHourlyWage:       "Tu salario por hora",
		LabelProductPrice:     "Precio del producto",
		LabelProductName:      "Nombre del producto",
		LabelSuggestions:      "Sugerencias",
		LabelYouNeedToWork:    "Necesitas trabajar",
		LabelHour:             "hora",
		LabelHours:            "horas",
		LabelToAfford:         "para permitirte esta compra",
		LabelMinutes:          "minutos",
		LabelWorkDays:         "días laborables",
		LabelWeeks:            "semanas",
		LabelEnterDetails:     "Introduce tu salario y el precio del producto para ver el cálculo",
		LabelProgress:         "Progreso",
		LabelHoursWorked:      "Horas trabajadas",
		LabelRemaining:        "restantes",
		LabelWishlist:         "Lista de deseos",
		LabelEmptyWishlist:    "Aún no hay artículos guardados",
		LabelAddToWishlist:    "Añadir a la lista de deseos",
		LabelRemove:           "Eliminar",
		MotivationQuickWin:    "🎉 ¡Victoria rápida! ¡Menos de una hora de trabajo!",
		MotivationDayOrLess:   "💪 Un día de trabajo o menos - ¡totalmente factible!",
		MotivationFewDays:     "📅 ¡Unos días de esfuerzo y lo tendrás!",
		MotivationSolidGoal:   "🎯 Una buena meta - ¡sigue así!",
		MotivationBigPurchase: "🚀 ¡Gran compra! ¿Quizás empezar un plan de ahorro?",
	},
	Polish: {
		LabelHourlyWage:       "Twoja stawka godzinowa",
		LabelProductPrice:     "Cena produktu",
		LabelProductName:      "Nazwa produktu",
		LabelSuggestions:      "Propozycje",
		LabelYouNeedToWork:    "Musisz przepracować",
		LabelHour:             "godzina",
		LabelHours:            "godzin",
		LabelToAfford:         "aby pozwolić sobie na ten zakup",
		LabelMinutes:          "minut",
		LabelWorkDays:         "dni roboczych",
		LabelWeeks:            "tygodni",
		LabelEnterDetails:     "Podaj stawkę i cenę produktu, aby zobaczyć obliczenia",
		LabelProgress:         "Postęp",
		LabelHoursWorked:      "Przepracowane godziny",
		LabelRemaining:        "pozostało",
		LabelWishlist:         "Lista życzeń",
		LabelEmptyWishlist:    "Brak zapisanych pozycji",
		LabelAddToWishlist:    "Dodaj do listy życzeń",
		LabelRemove:           "Usuń",
		MotivationQuickWin:    "🎉 Szybka wygrana! Mniej niż godzina pracy!",
		MotivationDayOrLess:   "💪 Dzień pracy lub mniej - do zrobienia!",
		MotivationFewDays:     "📅 Kilka dni wysiłku i cel osiągnięty!",
		MotivationSolidGoal:   "🎯 Solidny cel - tak trzymaj!",
		MotivationBigPurchase: "🚀 Duży zakup! Może czas zacząć oszczędzać?",
	},
}

// SupportedLanguages returns all languages in picker order.
func SupportedLanguages() []Language {
	return []Language{English, Finnish, Swedish, German, Spanish, Polish}
}

// IsSupported reports whether lang is part of the closed language set.
func IsSupported(lang Language) bool {
	_, ok := labels[lang]
	return ok
}

// Name returns the self-describing display name of the language.
func Name(lang Language) string {
	return languageNames[lang]
}

// LabelsFor returns the complete label set for lang. Unknown languages fall
// back to the default language so the result is always a full set.
func LabelsFor(lang Language) map[LabelKey]string {
	set, ok := labels[lang]
	if !ok {
		set = labels[DefaultLanguage]
	}
	out := make(map[LabelKey]string, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}

// AllLabelKeys lists every label key a language must translate.
func AllLabelKeys() []LabelKey {
	return []LabelKey{
		LabelHourlyWage, LabelProductPrice, LabelProductName, LabelSuggestions,
		LabelYouNeedToWork, LabelHour, LabelHours, LabelToAfford, LabelMinutes,
		LabelWorkDays, LabelWeeks, LabelEnterDetails, LabelProgress,
		LabelHoursWorked, LabelRemaining, LabelWishlist, LabelEmptyWishlist,
		LabelAddToWishlist, LabelRemove, MotivationQuickWin, MotivationDayOrLess,
		MotivationFewDays, MotivationSolidGoal, MotivationBigPurchase,
	}
}
