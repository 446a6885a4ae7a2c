package translations

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type LanguageDTO struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels"`
}

type CurrencyDTO struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetTranslations returns the label set for the requested language, or every
// supported language when no "language" query parameter is given.
func (h *Handler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	langParam := r.URL.Query().Get("language")
	if langParam != "" {
		lang := Language(langParam)
		if !IsSupported(lang) {
			log.Debugf("translations requested for unsupported language: %s", langParam)
			http.Error(w, "unsupported language", http.StatusBadRequest)
			return
		}
		if err := json.NewEncoder(w).Encode(languageToDTO(lang)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	all := make([]LanguageDTO, 0, len(SupportedLanguages()))
	for _, lang := range SupportedLanguages() {
		all = append(all, languageToDTO(lang))
	}
	if err := json.NewEncoder(w).Encode(all); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCurrencies returns all supported currencies with their display metadata.
func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dtos := make([]CurrencyDTO, 0, len(SupportedCurrencies()))
	for _, c := range SupportedCurrencies() {
		info := CurrencyFor(c)
		dtos = append(dtos, CurrencyDTO{Code: string(c), Symbol: info.Symbol, Name: info.Name})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func languageToDTO(lang Language) LanguageDTO {
	set := LabelsFor(lang)
	out := make(map[string]string, len(set))
	for k, v := range set {
		out[string(k)] = v
	}
	return LanguageDTO{Code: string(lang), Name: Name(lang), Labels: out}
}
