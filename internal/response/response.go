// Package response serializes every handler outcome as a two-variant
// envelope: {type:"success", payload} with 200 or {type:"error", error}
// with 400.
package response

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkobayashi/account-service/internal/apperr"
)

type Body struct {
	Type    string     `json:"type"`
	Payload any        `json:"payload,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusOK).JSON(Body{Type: "success", Payload: payload})
}

func Fail(c *fiber.Ctx, err error) error {
	appErr := apperr.FromError(err)

	return c.Status(fiber.StatusBadRequest).JSON(Body{
		Type: "error",
		Error: &ErrorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
		},
	})
}
