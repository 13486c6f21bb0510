package handlers

import (
	"encoding/json"
	"net/http"

	"portfolioapi/repository"
	"portfolioapi/utils"

	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	Repo      repository.UserRepository
	JWTSecret string
}

// Login handler
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	user, err := h.Repo.GetUserByUsername(creds.Username)
	if err != nil || user == nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, user.ID, user.Role)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to issue token",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"message": "Login successful",
	})
}

// ChangePassword rewrites the calling admin's password hash after verifying
// the old password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Not authenticated",
		})
		return
	}

	var body struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if body.NewPassword == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "New password is required",
		})
		return
	}

	user, err := h.Repo.GetUserByID(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load user: " + err.Error(),
		})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.OldPassword)) != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Old password incorrect",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	if err := h.Repo.UpdatePassword(user.ID, string(hashed)); err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}
