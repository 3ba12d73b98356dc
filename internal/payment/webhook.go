package payment

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/digitalhippo/checkout-backend/internal/mail"
	"github.com/digitalhippo/checkout-backend/internal/order"
)

// handleWebhook processes one signed gateway event. The gateway owns retry:
// every outcome here is terminal for this delivery, and the paid-flag
// mutation is an unconditional overwrite so redelivered events are safe.
func (h *Handler) handleWebhook(c *fiber.Ctx) error {
	if h.gateway == nil {
		return c.Status(fiber.StatusOK).SendString("payment gateway is not enabled")
	}

	event, err := h.gateway.ConstructEvent(c.Body(), c.Get("stripe-signature"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: " + err.Error())
	}

	userID, orderID, ok := metadataIDs(event)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: no user present in metadata")
	}

	if event.Type != EventCheckoutCompleted {
		// acknowledged so the gateway does not redeliver event types we
		// never act on
		return c.SendStatus(fiber.StatusOK)
	}

	usr, err := h.users.GetByID(userID)
	if err != nil || usr.Email == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no such user exists"})
	}

	ord, err := h.orders.GetWithProducts(orderID, order.SystemScope)
	if err != nil {
		if err == order.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no such order exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.orders.MarkPaid(orderID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// the paid flag above is committed regardless of how the receipt send
	// goes: a mail outage must never un-mark a real payment
	id, err := h.mailer.SendReceipt(mail.Receipt{
		Date:     time.Now(),
		Email:    usr.Email,
		OrderID:  ord.ID,
		Products: ord.Products,
		Fee:      platformFeeCents,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

func metadataIDs(event Event) (userID, orderID int, ok bool) {
	rawUser, okUser := event.Metadata["userId"]
	rawOrder, okOrder := event.Metadata["orderId"]
	if !okUser || !okOrder {
		return 0, 0, false
	}
	userID, errUser := strconv.Atoi(rawUser)
	orderID, errOrder := strconv.Atoi(rawOrder)
	if errUser != nil || errOrder != nil {
		return 0, 0, false
	}
	return userID, orderID, true
}
