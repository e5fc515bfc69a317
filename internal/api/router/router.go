package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notify-hub/internal/api/handlers/notification"
)

func New(handler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/api/health", handler.Health)

	api := e.Group("/api/notify")

	api.POST("/email", handler.SendEmail)
	api.POST("/sms", handler.SendSMS)
	api.POST("/batch", handler.SendBatch)
	api.GET("/history", handler.History)
	api.GET("/templates", handler.Templates)
	api.GET("/status/:id", handler.GetStatus)

	return e
}
