package adaptor

import (
	"net/http"

	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetUsers handles GET /api/admin/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context(), pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", users)
}

// GetAllUsers handles GET /api/admin/users/all
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", users)
}

// GetUser handles GET /api/admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", user)
}

// Remove handles DELETE /api/admin/users/{id}
func (h *UserHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.service.Remove(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "remove user")
		return
	}

	utils.ResponseSuccess(w, "User removed", nil)
}
