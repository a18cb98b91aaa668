package ws

import (
	wsclient "job-portal-backend/lib/ws/client"
	connectionhub "job-portal-backend/lib/ws/hub/connection-hub"
	apimodels "job-portal-backend/models/api"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app fiber.Router, hub connectionhub.Provider) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		email := ctx.Query("email")
		if email == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("email is required"))
		}
		ctx.Locals("email", email)
		return ctx.Next()
	})
	app.Get("/", websocket.New(func(c *websocket.Conn) {
		email := c.Locals("email").(string)
		client := wsclient.NewClient(email, c)
		hub.AddClient(email, c)
		defer hub.DeleteClient(email, c)
		client.Dispatch()
	}))
}
