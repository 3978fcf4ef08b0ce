package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ashishk-dev/renteasy-backend/models"
	"github.com/ashishk-dev/renteasy-backend/repositories"
	"github.com/ashishk-dev/renteasy-backend/utils"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerStore is the subset of the owner repository used by auth handlers.
type OwnerStore interface {
	FindByPhone(ctx context.Context, phone string) (*models.Owner, error)
	Insert(ctx context.Context, owner *models.Owner) error
}

// UserStore is the subset of the user repository used by auth handlers.
type UserStore interface {
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

var validate = validator.New()

type ownerSignupRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userSignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func OwnerSignup(owners OwnerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerSignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request payload", err)
			return
		}
		if err := validate.Struct(req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Phone and password required")
			return
		}

		_, err := owners.FindByPhone(r.Context(), req.Phone)
		if err == nil {
			utils.RespondError(w, http.StatusBadRequest, "Owner already exists")
			return
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to register owner", err)
			return
		}

		owner := models.Owner{
			ID:       primitive.NewObjectID(),
			Phone:    req.Phone,
			Password: req.Password,
		}
		if err := owners.Insert(r.Context(), &owner); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to register owner", err)
			return
		}

		utils.RespondJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Owner registered successfully",
		})
	}
}

func OwnerLogin(owners OwnerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request payload", err)
			return
		}

		owner, err := owners.FindByPhone(r.Context(), req.Phone)
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Owner not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to log in", err)
			return
		}

		// Plain-text comparison, matching how passwords are stored.
		if owner.Password != req.Password {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"owner":   owner,
		})
	}
}

func UserSignup(users UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userSignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request payload", err)
			return
		}
		if err := validate.Struct(req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Name, phone and password required")
			return
		}

		_, err := users.FindByPhone(r.Context(), req.Phone)
		if err == nil {
			utils.RespondError(w, http.StatusBadRequest, "User already exists")
			return
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to register user", err)
			return
		}

		user := models.User{
			ID:       primitive.NewObjectID(),
			Name:     req.Name,
			Phone:    req.Phone,
			Password: req.Password,
		}
		if err := users.Insert(r.Context(), &user); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to register user", err)
			return
		}

		utils.RespondJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "User registered successfully",
		})
	}
}

func UserLogin(users UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request payload", err)
			return
		}

		user, err := users.FindByPhone(r.Context(), req.Phone)
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to log in", err)
			return
		}

		if user.Password != req.Password {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"user":    user,
		})
	}
}
