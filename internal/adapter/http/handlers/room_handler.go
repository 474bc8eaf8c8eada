package handlers

import (
	"net/http"

	request "product_estimator/internal/adapter/http/dto/request"
	response "product_estimator/internal/adapter/http/dto/response"
	"product_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// @Summary      Add a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        body body request.RoomDimensionsRequest true "Room"
// @Success      201 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms [post]
func (h *EstimateHandler) AddRoom(c *gin.Context) {
	var payload request.RoomDimensionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidEstimatePayload)
		return
	}
	h.respond(c, http.StatusCreated)(h.usecase.AddRoom(c.Request.Context(), c.Param("id"), payload.ToCommand()))
}

// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        room_id path string true "Room ID"
// @Param        body body request.RoomDimensionsRequest true "Room"
// @Success      200 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms/{room_id} [put]
func (h *EstimateHandler) UpdateRoom(c *gin.Context) {
	var payload request.RoomDimensionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidEstimatePayload)
		return
	}
	h.respond(c, http.StatusOK)(h.usecase.UpdateRoom(c.Request.Context(), c.Param("id"), c.Param("room_id"), payload.ToCommand()))
}

// @Summary      Remove a room
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        room_id path string true "Room ID"
// @Success      200 {object} response.EstimateResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms/{room_id} [delete]
func (h *EstimateHandler) RemoveRoom(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.usecase.RemoveRoom(c.Request.Context(), c.Param("id"), c.Param("room_id")))
}

// AddProduct adds a catalog product to a room together with the companions
// its category relations auto-add.
//
// @Summary      Add a product to a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        room_id path string true "Room ID"
// @Param        body body request.AddProductRequest true "Product"
// @Success      201 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms/{room_id}/products [post]
func (h *EstimateHandler) AddProduct(c *gin.Context) {
	var payload request.AddProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	h.respond(c, http.StatusCreated)(h.usecase.AddProduct(c.Request.Context(), c.Param("id"), c.Param("room_id"), payload.ProductID))
}

// ReplaceProduct swaps the product of an existing line, keeping the line id.
//
// @Summary      Replace a product line
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        room_id path string true "Room ID"
// @Param        item_id path string true "Item ID"
// @Param        body body request.AddProductRequest true "Product"
// @Success      200 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms/{room_id}/products/{item_id} [put]
func (h *EstimateHandler) ReplaceProduct(c *gin.Context) {
	var payload request.AddProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	h.respond(c, http.StatusOK)(h.usecase.ReplaceProduct(c.Request.Context(), c.Param("id"), c.Param("room_id"), c.Param("item_id"), payload.ProductID))
}

// @Summary      Add a note to a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        room_id path string true "Room ID"
// @Param        body body request.AddNoteRequest true "Note"
// @Success      201 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms/{room_id}/notes [post]
func (h *EstimateHandler) AddNote(c *gin.Context) {
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	h.respond(c, http.StatusCreated)(h.usecase.AddNote(c.Request.Context(), c.Param("id"), c.Param("room_id"), payload.Text))
}

// @Summary      Remove a room item
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        room_id path string true "Room ID"
// @Param        item_id path string true "Item ID"
// @Success      200 {object} response.EstimateResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimates/{id}/rooms/{room_id}/items/{item_id} [delete]
func (h *EstimateHandler) RemoveItem(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("room_id"), c.Param("item_id")))
}

func (h *EstimateHandler) respond(c *gin.Context, status int) func(usecase.PricedEstimate, error) {
	return func(priced usecase.PricedEstimate, err error) {
		if err != nil {
			abortWithAppError(c, mapEstimateError(err))
			return
		}
		c.JSON(status, response.FromEstimate(priced.Estimate, priced.Totals))
	}
}
