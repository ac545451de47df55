package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/middleware"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/internal/response"
)

type InvestmentService interface {
	Create(ctx context.Context, uid string, req dto.CreateInvestmentRequest) (*dto.InvestmentResponse, error)
	List(ctx context.Context, uid string) ([]dto.InvestmentResponse, error)
	Watch(ctx context.Context, uid string) *feed.Feed[models.Investment]
	Update(ctx context.Context, uid, id string, req dto.UpdateInvestmentRequest) error
	Delete(ctx context.Context, uid, id string) error
}

type investmentHandlers struct {
	ResponseHandler response.ResponseHandler
	InvestmentSvc   InvestmentService
}

func NewInvestmentHandlers(deps *Deps) *investmentHandlers {
	return &investmentHandlers{
		ResponseHandler: deps.ResponseHandler,
		InvestmentSvc:   deps.InvestmentSvc,
	}
}

func (h *investmentHandlers) InvestmentRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListInvestments)
	r.Post("/", h.CreateInvestment)
	r.Get("/stream", h.StreamInvestments)
	r.Put("/{investmentId}", h.UpdateInvestment)
	r.Delete("/{investmentId}", h.DeleteInvestment)
	return r
}

func (h *investmentHandlers) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := decode[dto.CreateInvestmentRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	inv, err := h.InvestmentSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, inv)
}

func (h *investmentHandlers) ListInvestments(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	invs, err := h.InvestmentSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, invs)
}

func (h *investmentHandlers) StreamInvestments(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	streamFeed(w, r, h.InvestmentSvc.Watch(r.Context(), uid))
}

func (h *investmentHandlers) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "investmentId")
	req, err := decode[dto.UpdateInvestmentRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.InvestmentSvc.Update(r.Context(), uid, id, req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *investmentHandlers) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "investmentId")
	uid := middleware.UID(r.Context())
	if err := h.InvestmentSvc.Delete(r.Context(), uid, id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
