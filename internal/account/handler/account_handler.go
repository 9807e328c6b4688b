package handler

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/mkobayashi/account-service/internal/account/dto"
	"github.com/mkobayashi/account-service/internal/account/identity"
	"github.com/mkobayashi/account-service/internal/account/service"
	"github.com/mkobayashi/account-service/internal/apperr"
	"github.com/mkobayashi/account-service/internal/response"
)

const msgMalformedRequest = "Malformed request"

// AccountHandler decodes request primitives, performs request-shape checks
// and hands off to the service. It owns no authentication logic.
type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, apperr.InvalidRequest(msgMalformedRequest))
	}

	if err := input.Validate(); err != nil {
		return response.Fail(c, apperr.InvalidRequest(msgMalformedRequest))
	}

	out, err := h.accountService.Register(c.Context(), input)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) VerifyPassword(c *fiber.Ctx) error {
	identifier := c.Params("user_identifier")
	passwordHash := c.Params("password_hash")

	if identity.Classify(identifier) == identity.KindInvalid ||
		validation.Validate(passwordHash, identity.PasswordHashRules...) != nil {
		return response.Fail(c, apperr.InvalidRequest(msgMalformedRequest))
	}

	out, err := h.accountService.VerifyByPassword(c.Context(), identifier, passwordHash)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) VerifyToken(c *fiber.Ctx) error {
	out, err := h.accountService.VerifyByToken(c.Context(), c.Params("token"))
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) IssueToken(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.Fail(c, apperr.InvalidRequest(msgMalformedRequest))
	}

	out, err := h.accountService.IssueToken(c.Context(), id)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) Exists(c *fiber.Ctx) error {
	out, err := h.accountService.Exists(c.Context(), c.Params("user_identifier"))
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	out, err := h.accountService.Account(c.Context(), c.Params("user_identifier"))
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.accountService.Accounts(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, out)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.accountService.Delete(c.Context(), c.Params("user_identifier")); err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, nil)
}
