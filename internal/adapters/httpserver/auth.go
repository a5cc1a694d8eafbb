package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sayadalsamak/store/internal/domain"
)

type ctxKeyUser struct{}

// requireAdmin authenticates the bearer token and checks the ADMIN role
// before letting the handler run.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(raw, "Bearer ") {
			writeError(w, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized))
			return
		}
		id, err := s.auth.VerifyToken(strings.TrimPrefix(raw, "Bearer "))
		if err != nil {
			writeError(w, err)
			return
		}
		u, err := s.auth.Me(r.Context(), id)
		if err != nil {
			writeError(w, fmt.Errorf("unknown user: %w", domain.ErrUnauthorized))
			return
		}
		if u.Role != domain.RoleAdmin {
			writeError(w, fmt.Errorf("admin access required: %w", domain.ErrForbidden))
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ctxKeyUser{}, u)))
	}
}

func userFrom(r *http.Request) *domain.User {
	u, _ := r.Context().Value(ctxKeyUser{}).(*domain.User)
	return u
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	u, token, err := s.auth.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, map[string]any{"user": u, "token": token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	u, token, err := s.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"user": u, "token": token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, userFrom(r))
}
