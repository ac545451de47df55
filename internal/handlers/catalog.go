package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pennywise-app/pennywise-backend/internal/catalog"
	"github.com/pennywise-app/pennywise-backend/internal/response"
)

// catalogHandlers serves the static configuration tables clients build
// their pickers from.
type catalogHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewCatalogHandlers(deps *Deps) *catalogHandlers {
	return &catalogHandlers{ResponseHandler: deps.ResponseHandler}
}

func (h *catalogHandlers) CatalogRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/categories", h.GetCategories)
	r.Get("/investment-types", h.GetInvestmentTypes)
	return r
}

func (h *catalogHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	txType := r.URL.Query().Get("type")
	entries := catalog.Categories(txType)
	if entries == nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input",
			"type must be income or expense")
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, entries)
}

func (h *catalogHandlers) GetInvestmentTypes(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, catalog.InvestmentTypes())
}
