package adaptor

import (
	"encoding/json"
	"net/http"

	"safari-booking/internal/dto/request"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// GetPackages handles GET /api/safari-packages
func (h *PackageHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	packages, err := h.service.GetPackages(r.Context(), req)
	if err != nil {
		h.log.Error("Failed to get safari packages", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackageByID handles GET /api/safari-packages/{id}
func (h *PackageHandler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt64(chi.URLParam(r, "id"))
	if id == 0 {
		utils.ResponseBadRequest(w, "Invalid package ID", nil)
		return
	}

	pkg, err := h.service.GetPackageByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// CreatePackage handles POST /api/safari-packages
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create safari package", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseCreated(w, "Safari package created", pkg)
}

func (h *PackageHandler) handleServiceError(w http.ResponseWriter, err error) {
	if err.Error() == "safari package not found" {
		utils.ResponseNotFound(w, err.Error())
		return
	}
	h.log.Error("Package service error", zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}
