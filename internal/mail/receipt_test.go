package mail

import (
	"strings"
	"testing"
	"time"

	"github.com/digitalhippo/checkout-backend/internal/product"
)

func TestRenderReceipt(t *testing.T) {
	html, err := RenderReceipt(Receipt{
		Date:    time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC),
		Email:   "buyer@example.com",
		OrderID: 42,
		Products: []product.Product{
			{ID: 1, Name: "Icon Pack", Price: 1500},
			{ID: 2, Name: "UI Kit", Price: 2999},
		},
		Fee: 100,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// products, the fee row, and the total covering both
	for _, want := range []string{"#42", "buyer@example.com", "Icon Pack", "$15.00", "UI Kit", "$29.99", "Transaction Fee", "$1.00", "$45.99", "Mar 9, 2025"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered receipt missing %q", want)
		}
	}
}

func TestRenderReceipt_NoFee(t *testing.T) {
	html, err := RenderReceipt(Receipt{
		Date:     time.Now(),
		Email:    "buyer@example.com",
		OrderID:  7,
		Products: []product.Product{{ID: 1, Name: "Icon Pack", Price: 1500}},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "Transaction Fee") {
		t.Error("fee row must be omitted when no fee was charged")
	}
	if !strings.Contains(html, "$15.00") {
		t.Error("total should equal the product prices alone")
	}
}

func TestRenderReceipt_EscapesProductNames(t *testing.T) {
	html, err := RenderReceipt(Receipt{
		Date:     time.Now(),
		Email:    "buyer@example.com",
		OrderID:  1,
		Products: []product.Product{{ID: 1, Name: "<script>alert(1)</script>", Price: 100}},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("product names must be escaped in the receipt body")
	}
}

func TestResendMailer_MissingKey(t *testing.T) {
	m := NewResendMailer("", "shop@example.com")
	if _, err := m.SendReceipt(Receipt{Email: "buyer@example.com"}); err == nil {
		t.Fatal("expected an error when RESEND_API_KEY is missing")
	}
}
