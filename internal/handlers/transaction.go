package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/middleware"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/internal/response"
)

type TransactionService interface {
	Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error)
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	ListRecent(ctx context.Context, uid string, limit int) ([]models.Transaction, error)
	Page(ctx context.Context, uid string, page, pageSize int) (dto.TransactionPageResponse, error)
	Overview(ctx context.Context, uid string) (aggregate.Overview, error)
	ExpenseSummary(ctx context.Context, uid string) (aggregate.ExpenseSummary, error)
	Watch(ctx context.Context, uid string, limit int) *feed.Feed[models.Transaction]
	Update(ctx context.Context, uid, id string, req dto.UpdateTransactionRequest) error
	Delete(ctx context.Context, uid, id string) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.CreateTransaction)
	r.Get("/page", h.GetTransactionPage)
	r.Get("/overview", h.GetOverview)
	r.Get("/summary", h.GetExpenseSummary)
	r.Get("/stream", h.StreamTransactions)
	r.Put("/{transactionId}", h.UpdateTransaction)
	r.Delete("/{transactionId}", h.DeleteTransaction)
	return r
}

func (h *transactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := decode[dto.CreateTransactionRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	txn, err := h.TransactionSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, txn)
}

// ListTransactions returns full history by default; ?limit=n returns only
// the n most recent.
func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	var (
		txns []models.Transaction
		err  error
	)
	if limit := queryInt(r, "limit", 0); limit > 0 {
		txns, err = h.TransactionSvc.ListRecent(r.Context(), uid, limit)
	} else {
		txns, err = h.TransactionSvc.List(r.Context(), uid)
	}
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, txns)
}

func (h *transactionHandlers) GetTransactionPage(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 10)

	resp, err := h.TransactionSvc.Page(r.Context(), uid, page, pageSize)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, resp)
}

func (h *transactionHandlers) GetOverview(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	overview, err := h.TransactionSvc.Overview(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, overview)
}

func (h *transactionHandlers) GetExpenseSummary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.TransactionSvc.ExpenseSummary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, summary)
}

func (h *transactionHandlers) StreamTransactions(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	f := h.TransactionSvc.Watch(r.Context(), uid, queryInt(r, "limit", 0))
	streamFeed(w, r, f)
}

func (h *transactionHandlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionId")
	req, err := decode[dto.UpdateTransactionRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.Update(r.Context(), uid, id, req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.Delete(r.Context(), uid, id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
