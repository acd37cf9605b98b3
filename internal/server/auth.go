package server

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// userIDFrom extracts the authenticated user ID from the request context.
func userIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// requireAuth validates the Bearer token and stores the user ID in the
// request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.errorResponse(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			s.errorResponse(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := s.jwtService.ValidateToken(tokenStr)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// handleRegister creates a new user account and issues a token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.db.CheckEmailExists(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to register user")
		return
	}
	if exists {
		err := &ErrEmailAlreadyExists{Email: req.Email}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	userID, err := s.db.CreateUser(r.Context(), req.Email, req.Name, hash)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	token, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	s.jsonResponse(w, http.StatusCreated, authResponse{
		Token:  token,
		UserID: userID,
		Email:  req.Email,
		Name:   req.Name,
	})
}

// handleLogin authenticates a user and issues a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	if user == nil || !s.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		invalid := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	s.jsonResponse(w, http.StatusOK, authResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}
