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

type GoalService interface {
	Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*dto.GoalResponse, error)
	List(ctx context.Context, uid string) ([]dto.GoalResponse, error)
	Watch(ctx context.Context, uid string) *feed.Feed[models.Goal]
	Update(ctx context.Context, uid, id string, req dto.UpdateGoalRequest) error
	Delete(ctx context.Context, uid, id string) error
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         GoalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) GoalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListGoals)
	r.Post("/", h.CreateGoal)
	r.Get("/stream", h.StreamGoals)
	r.Put("/{goalId}", h.UpdateGoal)
	r.Delete("/{goalId}", h.DeleteGoal)
	return r
}

func (h *goalHandlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := decode[dto.CreateGoalRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, goal)
}

func (h *goalHandlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	goals, err := h.GoalSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, goals)
}

func (h *goalHandlers) StreamGoals(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	streamFeed(w, r, h.GoalSvc.Watch(r.Context(), uid))
}

func (h *goalHandlers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "goalId")
	req, err := decode[dto.UpdateGoalRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.GoalSvc.Update(r.Context(), uid, id, req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *goalHandlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	if err := h.GoalSvc.Delete(r.Context(), uid, id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
