package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/digitalhippo/checkout-backend/internal/user"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/order/:id<[0-9]+>", h.getOrder)
	app.Delete("/api/v1/order/:id<[0-9]+>", h.deleteOrder)
}

// getOrders returns the orders of the authenticated user.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(scope.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}

	ord, err := h.service.GetWithProducts(id, scope)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ord)
}

// deleteOrder is the only deletion path and is admin-only.
func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !scope.Admin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}

	if err := h.service.Delete(id, scope); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func scopeFromCtx(c *fiber.Ctx) (Scope, error) {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return Scope{}, err
	}
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return Scope{}, err
	}
	return Scope{UserID: userID, Admin: role == user.RoleAdmin}, nil
}
