package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	request "okbikes_admin/internal/adapter/http/dto/request"
	response "okbikes_admin/internal/adapter/http/dto/response"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle form", http.StatusBadRequest)
	errFileTooLarge          = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File size exceeds 3MB limit", http.StatusRequestEntityTooLarge)
)

// maxVehicleFormMemory bounds the multipart parse: four files at the cap plus
// the text fields.
const maxVehicleFormMemory = 4*entities.MaxVehicleFileSize + 1<<20

type FleetHandler struct {
	usecase usecase.IFleetUseCase
}

func NewFleetHandler(uc usecase.IFleetUseCase) *FleetHandler {
	return &FleetHandler{usecase: uc}
}

// ListVehicles godoc
// @Summary      List the store vehicles
// @Tags         vehicles
// @Produce      json
// @Param        page    query     int     false  "1-based page"
// @Param        size    query     int     false  "page size (default 7)"
// @Param        search  query     string  false  "brand filter"
// @Success      200     {object}  response.VehiclePageResponse
// @Router       /vehicles [get]
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	page, okPage := intQuery(c, "page", 1)
	size, okSize := intQuery(c, "size", usecase.VehiclesPageSize)
	if !okPage || !okSize {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.ListVehicles(c.Request.Context(), s, usecase.VehicleQuery{
		Page:   page,
		Size:   size,
		Search: strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.JSON(http.StatusOK, response.FromVehiclePage(res))
}

// CreateVehicle godoc
// @Summary      Add a vehicle
// @Tags         vehicles
// @Accept       multipart/form-data
// @Param        image             formData  file  false  "photo"
// @Param        pucPdfFile        formData  file  false  "PUC certificate"
// @Param        insurancePdfFile  formData  file  false  "insurance"
// @Param        documentPdfFile   formData  file  false  "registration document"
// @Success      201
// @Failure      413  {object}  pkg.HTTPError
// @Router       /vehicles [post]
func (h *FleetHandler) CreateVehicle(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	form, appErr := bindVehicleForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.usecase.CreateVehicle(c.Request.Context(), s, form); err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *FleetHandler) UpdateVehicle(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	form, appErr := bindVehicleForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.usecase.UpdateVehicle(c.Request.Context(), s, id, form); err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FleetHandler) DeleteVehicle(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := h.usecase.DeleteVehicle(c.Request.Context(), s, id); err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleVehicleStatus godoc
// @Summary      Enable or disable a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id    path      int                                 true  "vehicle id"
// @Param        body  body      request.ToggleVehicleStatusRequest  true  "status shown to the manager"
// @Success      200   {object}  response.VehicleStatusResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /vehicles/{id}/status [patch]
func (h *FleetHandler) ToggleVehicleStatus(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	var payload request.ToggleVehicleStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	status, err := h.usecase.ToggleVehicleStatus(c.Request.Context(), s, id, entities.VehicleStatus(payload.CurrentStatus))
	if err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.JSON(http.StatusOK, response.VehicleStatusResponse{VehicleID: id, Status: string(status)})
}

func (h *FleetHandler) Brands(c *gin.Context) {
	h.catalog(c, h.usecase.Brands)
}

func (h *FleetHandler) Categories(c *gin.Context) {
	h.catalog(c, h.usecase.Categories)
}

func (h *FleetHandler) Stores(c *gin.Context) {
	h.catalog(c, h.usecase.Stores)
}

func (h *FleetHandler) ModelsByBrand(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	entries, err := h.usecase.ModelsByBrand(c.Request.Context(), s, id)
	if err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(entries))
}

func (h *FleetHandler) catalog(c *gin.Context, load func(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error)) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	entries, err := load(c.Request.Context(), s)
	if err != nil {
		respondError(c, err, mapFleetError)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(entries))
}

// bindVehicleForm reads the text fields and the optional files of the vehicle
// multipart form. Files over the cap are refused before they reach the use case.
func bindVehicleForm(c *gin.Context) (entities.VehicleForm, *pkg.AppError) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxVehicleFormMemory)
	var payload request.VehicleFormRequest
	if err := c.ShouldBind(&payload); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return entities.VehicleForm{}, errFileTooLarge
		}
		return entities.VehicleForm{}, errInvalidVehiclePayload
	}
	if err := payload.Validate(); err != nil {
		return entities.VehicleForm{}, errInvalidVehiclePayload.WithDetails(err.Error())
	}

	form := payload.ToForm()
	for _, field := range entities.VehicleFileFields() {
		hdr, err := c.FormFile(string(field))
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			return entities.VehicleForm{}, errInvalidVehiclePayload
		}
		if hdr.Size > entities.MaxVehicleFileSize {
			return entities.VehicleForm{}, errFileTooLarge.WithDetails(map[string]string{"field": string(field)})
		}
		f, err := hdr.Open()
		if err != nil {
			return entities.VehicleForm{}, errInvalidVehiclePayload
		}
		content, err := io.ReadAll(io.LimitReader(f, entities.MaxVehicleFileSize+1))
		_ = f.Close()
		if err != nil {
			return entities.VehicleForm{}, errInvalidVehiclePayload
		}
		form.Files[field] = entities.FileUpload{
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Content:     content,
		}
	}
	return form, nil
}

func mapFleetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVehicleBooked):
		return pkg.NewDomainErrorSimple("VEHICLE_BOOKED", "Bike is booked, you are not able to disable the bike", http.StatusConflict)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return errFileTooLarge
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidBrandID), errors.Is(err, usecase.ErrInvalidVehiclePage):
		return errInvalidRequest
	default:
		return internalError(err)
	}
}
