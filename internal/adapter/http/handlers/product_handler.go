package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	response "product_estimator/internal/adapter/http/dto/response"
	"product_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler previews product pricing outside of any estimate.
type ProductHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewProductHandler(uc usecase.IEstimateUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// GetBreakdown prices a product and its auto-added companions for ?area=.
// An optional ?markup= overrides the default markup for the display range.
//
// @Summary      Preview product pricing
// @Tags         products
// @Produce      json
// @Param        product_id path string true "Catalog product ID"
// @Param        area query number false "Room area in square meters"
// @Param        markup query number false "Markup percent"
// @Success      200 {object} response.BreakdownResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /products/{product_id}/breakdown [get]
func (h *ProductHandler) GetBreakdown(c *gin.Context) {
	area, ok := parseFloatQuery(c, "area", 0)
	if !ok {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	markup, ok := parseFloatQuery(c, "markup", h.usecase.DefaultMarkup())
	if !ok || markup < 0 {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	productID := c.Param("product_id")
	b, err := h.usecase.PreviewBreakdown(c.Request.Context(), productID, area)
	if err != nil {
		abortWithAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(strings.TrimSpace(productID), area, b, markup))
}

func parseFloatQuery(c *gin.Context, key string, def float64) (float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
