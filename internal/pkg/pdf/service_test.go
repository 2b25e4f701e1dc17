package pdf

import (
	"strings"
	"testing"

	"github.com/petalline/storefront/internal/config"
	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/petalline/storefront/internal/domain/order"
)

func TestRenderHTML(t *testing.T) {
	svc := NewService(config.PDFConfig{DPI: 150, CompanyName: "Petalline", CompanyEmail: "hello@petalline.com"})

	c := &order.Confirmation{
		OrderNumber:    "FL-2026-1234567",
		Date:           "10/17/2026, 3:04:05 PM",
		CustomerName:   "Ana Lee",
		DeliveryMethod: "Store Pickup",
		PaymentMethod:  "PayPal",
		Items:          []order.ItemView{{Name: "Dreamy <Roses>", QuantityLabel: "Qty: 2 × $89.99", LineTotalLabel: "$179.98"}},
		Summary:        cart.SummaryView{ItemCountLabel: "Subtotal (2 items)", SubtotalLabel: "$179.98", TotalLabel: "$194.38", ShippingLabel: "Free"},
		Gift:           &order.GiftView{To: "Mia", From: "Ana", Message: "Happy birthday"},
	}

	html, err := svc.RenderHTML(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(html)

	for _, want := range []string{"FL-2026-1234567", "Store Pickup", "$194.38", "Happy birthday", "Dreamy &lt;Roses&gt;"} {
		if !strings.Contains(out, want) {
			t.Fatalf("receipt missing %q", want)
		}
	}
	if strings.Contains(out, "expires") {
		t.Fatalf("card block should be hidden for non-card payments")
	}
}
