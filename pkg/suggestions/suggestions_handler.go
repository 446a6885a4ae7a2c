package suggestions

import (
	"encoding/json"
	"net/http"

	"github.com/PinjaMari/earn-to-own/pkg/translations"
	log "github.com/sirupsen/logrus"
)

type ProductDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetSuggestions returns the suggestion list for the language given in the
// "language" query parameter (default language when absent).
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lang := translations.DefaultLanguage
	if langParam := r.URL.Query().Get("language"); langParam != "" {
		lang = translations.Language(langParam)
		if !translations.IsSupported(lang) {
			log.Debugf("suggestions requested for unsupported language: %s", langParam)
			http.Error(w, "unsupported language", http.StatusBadRequest)
			return
		}
	}

	list := ForLanguage(lang)
	dtos := make([]ProductDTO, 0, len(list))
	for _, p := range list {
		dtos = append(dtos, ProductDTO{Name: p.Name, Price: p.Price})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
