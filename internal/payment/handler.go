package payment

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/digitalhippo/checkout-backend/internal/mail"
	"github.com/digitalhippo/checkout-backend/internal/order"
	"github.com/digitalhippo/checkout-backend/internal/user"
)

type Handler struct {
	service *Service
	users   user.ServiceInterface
	orders  order.ServiceInterface
	mailer  mail.Mailer
	gateway Gateway
}

func NewHandler(service *Service, users user.ServiceInterface, orders order.ServiceInterface, mailer mail.Mailer, gateway Gateway) *Handler {
	return &Handler{service: service, users: users, orders: orders, mailer: mailer, gateway: gateway}
}

// RegisterPublicRoutes mounts the webhook endpoint. It must stay outside
// the JWT middleware: the caller is the payment gateway, authenticated by
// signature instead.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/webhooks/stripe", h.handleWebhook)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout/session", h.createSession)
	app.Get("/api/v1/orders/:id<[0-9]+>/status", h.orderStatus)
}

type createSessionRequest struct {
	ProductIDs []int `json:"productIds"`
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createSessionRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	url, err := h.service.CreateSession(userID, payload.ProductIDs)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrGatewayUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"url": url})
}

func (h *Handler) orderStatus(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}

	isPaid, err := h.service.PollOrderStatus(orderID, order.Scope{UserID: userID, Admin: role == user.RoleAdmin})
	if err != nil {
		if err == order.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"isPaid": isPaid})
}
