package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathEstimates         = "/estimates"
	PathProducts          = "/products"
	PathCategoryRelations = "/category-relations"
)

// EstimateRoutes is implemented by handlers.EstimateHandler.
type EstimateRoutes interface {
	Calculate(c *gin.Context)
	CreateEstimate(c *gin.Context)
	ListEstimates(c *gin.Context)
	ExportEstimates(c *gin.Context)
	GetEstimate(c *gin.Context)
	UpdateEstimate(c *gin.Context)
	UpdateEstimateStatus(c *gin.Context)
	DeleteEstimate(c *gin.Context)
	AddRoom(c *gin.Context)
	UpdateRoom(c *gin.Context)
	RemoveRoom(c *gin.Context)
	AddProduct(c *gin.Context)
	ReplaceProduct(c *gin.Context)
	AddNote(c *gin.Context)
	RemoveItem(c *gin.Context)
}

type ProductRoutes interface {
	GetBreakdown(c *gin.Context)
}

type CategoryRelationRoutes interface {
	ListRelations(c *gin.Context)
	GetRelation(c *gin.Context)
	CreateRelation(c *gin.Context)
	UpdateRelation(c *gin.Context)
	DeleteRelation(c *gin.Context)
}

func addEstimateRoutes(rg *gin.RouterGroup, h EstimateRoutes) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/calculate", h.Calculate)
		estimates.POST("", h.CreateEstimate)
		estimates.GET("", h.ListEstimates)
		estimates.GET("/export", h.ExportEstimates)
		estimates.GET("/:id", h.GetEstimate)
		estimates.PATCH("/:id", h.UpdateEstimate)
		estimates.PATCH("/:id/status", h.UpdateEstimateStatus)
		estimates.DELETE("/:id", h.DeleteEstimate)
	}

	rooms := estimates.Group("/:id/rooms")
	{
		rooms.POST("", h.AddRoom)
		rooms.PUT("/:room_id", h.UpdateRoom)
		rooms.DELETE("/:room_id", h.RemoveRoom)
		rooms.POST("/:room_id/products", h.AddProduct)
		rooms.PUT("/:room_id/products/:item_id", h.ReplaceProduct)
		rooms.POST("/:room_id/notes", h.AddNote)
		rooms.DELETE("/:room_id/items/:item_id", h.RemoveItem)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h ProductRoutes) {
	rg.GET(PathProducts+"/:product_id/breakdown", h.GetBreakdown)
}

func addCategoryRelationRoutes(rg *gin.RouterGroup, h CategoryRelationRoutes) {
	relations := rg.Group(PathCategoryRelations)
	{
		relations.GET("", h.ListRelations)
		relations.POST("", h.CreateRelation)
		relations.GET("/:id", h.GetRelation)
		relations.PUT("/:id", h.UpdateRelation)
		relations.DELETE("/:id", h.DeleteRelation)
	}
}
