package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AccountHandler) {
	user := app.Group("/api/user")

	user.Post("/register", h.Register)
	user.Get("/verify/password/:user_identifier/:password_hash", h.VerifyPassword)
	user.Get("/verify/token/:token", h.VerifyToken)
	user.Get("/gen_token/:id", h.IssueToken)
	user.Get("/existence/:user_identifier", h.Exists)

	// Catch-all identifier routes go last.
	user.Get("/", h.List)
	user.Get("/:user_identifier", h.Get)
	user.Delete("/:user_identifier", h.Delete)
}
