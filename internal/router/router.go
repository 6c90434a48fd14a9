package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	EditReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	RegenerateAccessCode(c *ginext.Context)
	ListAccessEvents(c *ginext.Context)
	ValidateAccessByToken(c *ginext.Context)
	ValidateAccessByCode(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:code", h.GetReservation)
		api.PATCH("/reservations/:code", h.EditReservation)
		api.POST("/reservations/:code/cancel", h.CancelReservation)
		api.POST("/reservations/:code/access-code", h.RegenerateAccessCode)
		api.GET("/reservations/:code/accesses", h.ListAccessEvents)

		// Access validation
		api.POST("/access/token", h.ValidateAccessByToken)
		api.POST("/access/code", h.ValidateAccessByCode)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
