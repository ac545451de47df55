package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/response"
	"github.com/pennywise-app/pennywise-backend/internal/session"
)

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	Session         *session.Store
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		Session:         deps.Session,
	}
}

// EntryRoutes are the anonymous entry points. Sign-out and the session
// lookup are mounted separately because they must stay reachable while
// signed in.
func (h *authHandlers) EntryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.SignUp)
	r.Post("/signin", h.SignIn)
	return r
}

func (h *authHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	req, err := decode[dto.SignUpRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	user, err := h.Session.SignUp(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, dto.SessionResponse{User: user})
}

func (h *authHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := decode[dto.SignInRequest](r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	user, err := h.Session.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, dto.SessionResponse{User: user})
}

func (h *authHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.SignOut(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

// GetSession reports the current identity; User is null when signed out.
func (h *authHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, dto.SessionResponse{User: h.Session.Current()})
}
