package handlers

import (
	"errors"
	"net/http"

	request "product_estimator/internal/adapter/http/dto/request"
	response "product_estimator/internal/adapter/http/dto/response"
	"product_estimator/internal/usecase"
	"product_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRelationPayload = pkg.NewDomainErrorSimple("INVALID_RELATION_INPUT", "Invalid category relation payload", http.StatusBadRequest)

// CategoryRelationHandler administers the rules that drive auto-added
// companion products.

type CategoryRelationHandler struct {
	usecase usecase.ICategoryRelationUseCase
}

func NewCategoryRelationHandler(uc usecase.ICategoryRelationUseCase) *CategoryRelationHandler {
	return &CategoryRelationHandler{usecase: uc}
}

// @Summary      List category relations
// @Tags         category-relations
// @Produce      json
// @Success      200 {array} response.CategoryRelationResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /category-relations [get]
func (h *CategoryRelationHandler) ListRelations(c *gin.Context) {
	rules, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithAppError(c, mapRelationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryRelations(rules))
}

// @Summary      Get a category relation
// @Tags         category-relations
// @Produce      json
// @Param        id path string true "Relation ID"
// @Success      200 {object} response.CategoryRelationResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /category-relations/{id} [get]
func (h *CategoryRelationHandler) GetRelation(c *gin.Context) {
	rule, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithAppError(c, mapRelationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryRelation(rule))
}

// @Summary      Create a category relation
// @Tags         category-relations
// @Accept       json
// @Produce      json
// @Param        body body request.CategoryRelationRequest true "Relation"
// @Success      201 {object} response.CategoryRelationResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /category-relations [post]
func (h *CategoryRelationHandler) CreateRelation(c *gin.Context) {
	var payload request.CategoryRelationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRelationPayload)
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		abortWithAppError(c, mapRelationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCategoryRelation(rule))
}

// @Summary      Update a category relation
// @Tags         category-relations
// @Accept       json
// @Produce      json
// @Param        id path string true "Relation ID"
// @Param        body body request.CategoryRelationRequest true "Relation"
// @Success      200 {object} response.CategoryRelationResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /category-relations/{id} [put]
func (h *CategoryRelationHandler) UpdateRelation(c *gin.Context) {
	var payload request.CategoryRelationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRelationPayload)
		return
	}

	rule, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		abortWithAppError(c, mapRelationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryRelation(rule))
}

// @Summary      Delete a category relation
// @Tags         category-relations
// @Produce      json
// @Param        id path string true "Relation ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Router       /category-relations/{id} [delete]
func (h *CategoryRelationHandler) DeleteRelation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithAppError(c, mapRelationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRelationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRelationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRelation):
		return errInvalidRelationPayload
	case errors.Is(err, usecase.ErrRelationNotFound):
		return pkg.NewDomainErrorSimple("RELATION_NOT_FOUND", "Category relation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
