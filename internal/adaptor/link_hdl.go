package adaptor

import (
	"encoding/json"
	"net/http"

	"glassfinder/internal/dto/request"
	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

// maxImageSize caps profile image uploads at 10 MiB.
const maxImageSize = 10 << 20

type LinkHandler struct {
	service usecase.LinkService
	log     *zap.Logger
}

func NewLinkHandler(service usecase.LinkService, log *zap.Logger) *LinkHandler {
	return &LinkHandler{
		service: service,
		log:     log,
	}
}

// RequestLink handles POST /api/link
func (h *LinkHandler) RequestLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.LinkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, "Validation failed", validationErrors)
		return
	}

	linkRequest, err := h.service.RequestLink(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "request link")
		return
	}

	utils.ResponseCreated(w, "Link request submitted", linkRequest)
}

// GetProfile handles GET /api/profile
func (h *LinkHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.FetchProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "fetch profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", profile)
}

// UpdateProfile handles PATCH /api/profile
func (h *LinkHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, "Validation failed", validationErrors)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

// UploadImage handles POST /api/profile/image (multipart form, field
// name "image").
func (h *LinkHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	profile, err := h.service.UploadImage(r.Context(), userID, file, header.Size, contentType)
	if err != nil {
		handleServiceError(h.log, w, err, "upload image")
		return
	}

	utils.ResponseSuccess(w, "Image uploaded", profile)
}

// ListRequests handles GET /api/admin/link-requests
func (h *LinkHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	status := r.URL.Query().Get("status")

	requests, err := h.service.ListRequests(r.Context(), page, status)
	if err != nil {
		handleServiceError(h.log, w, err, "list link requests")
		return
	}

	utils.ResponseSuccess(w, "Link requests retrieved", requests)
}

// Approve handles POST /api/admin/link-requests/{id}/approve
func (h *LinkHandler) Approve(w http.ResponseWriter, r *http.Request) {
	requestID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request ID")
		return
	}

	linkRequest, err := h.service.Approve(r.Context(), requestID)
	if err != nil {
		handleServiceError(h.log, w, err, "approve link request")
		return
	}

	utils.ResponseSuccess(w, "Link request approved", linkRequest)
}

// Deny handles POST /api/admin/link-requests/{id}/deny
func (h *LinkHandler) Deny(w http.ResponseWriter, r *http.Request) {
	requestID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request ID")
		return
	}

	linkRequest, err := h.service.Deny(r.Context(), requestID)
	if err != nil {
		handleServiceError(h.log, w, err, "deny link request")
		return
	}

	utils.ResponseSuccess(w, "Link request denied", linkRequest)
}
