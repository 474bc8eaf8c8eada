package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"product_estimator/internal/adapter/export"
	request "product_estimator/internal/adapter/http/dto/request"
	response "product_estimator/internal/adapter/http/dto/response"
	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase"
	"product_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidRequest         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates, their rooms and items.
//
// Every response that carries an estimate includes freshly computed totals and
// display ranges; the stored summary totals are only used by listings.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Calculate prices a client-held draft without storing it.
//
// @Summary      Price an estimate draft
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body body request.EstimateRequest true "Estimate draft"
// @Success      200 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /estimates/calculate [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidEstimatePayload)
		return
	}

	priced, err := h.usecase.Calculate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(priced.Estimate, priced.Totals))
}

// CreateEstimate saves a draft and assigns its id.
//
// @Summary      Save an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body body request.EstimateRequest true "Estimate draft"
// @Success      201 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidEstimatePayload)
		return
	}

	priced, err := h.usecase.Save(c.Request.Context(), payload.ToCommand())
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(priced.Estimate, priced.Totals))
}

// @Summary      List estimates
// @Tags         estimates
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        search query string false "Search name and customer fields"
// @Param        sort query string false "created_at, updated_at, name, total_min or total_max"
// @Param        order query string false "asc or desc"
// @Success      200 {array} response.EstimateSummaryResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var query request.ListEstimatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	estimates, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateSummaries(estimates))
}

// ExportEstimates writes the filtered listing as CSV.
//
// @Summary      Export estimates as CSV
// @Tags         estimates
// @Produce      text/csv
// @Param        status query string false "Filter by status"
// @Param        search query string false "Search name and customer fields"
// @Success      200 {file} file
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /estimates/export [get]
func (h *EstimateHandler) ExportEstimates(c *gin.Context) {
	var query request.ListEstimatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	estimates, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteEstimatesCSV(&buf, estimates); err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	filename := fmt.Sprintf("estimates-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Success      200 {object} response.EstimateResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	priced, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(priced.Estimate, priced.Totals))
}

// @Summary      Update estimate details
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        body body request.UpdateEstimateRequest true "Fields to change"
// @Success      200 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id} [patch]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		abortWithAppError(c, errInvalidEstimatePayload)
		return
	}

	priced, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(priced.Estimate, priced.Totals))
}

// @Summary      Change estimate status
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        body body request.UpdateStatusRequest true "New status"
// @Success      200 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id}/status [patch]
func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	status := entities.EstimateStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	priced, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(priced.Estimate, priced.Totals))
}

// @Summary      Delete an estimate
// @Tags         estimates
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func abortWithAppError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(appErr.Err).Str("method", c.Request.Method).Str("path", c.FullPath()).
			Msg("[http][handler] request failed")
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateName), errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidMarkup), errors.Is(err, usecase.ErrInvalidRoom),
		errors.Is(err, usecase.ErrInvalidNote), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", "Invalid estimate payload: "+err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid estimate status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Room item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductAlreadyInRoom):
		return pkg.NewDomainErrorSimple("PRODUCT_ALREADY_IN_ROOM", "Product already in room", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
