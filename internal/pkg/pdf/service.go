// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/petalline/storefront/internal/config"
	"github.com/petalline/storefront/internal/domain/order"
)

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

// Service renders order receipts
type Service struct {
	config config.PDFConfig
}

// NewService creates a new PDF service
func NewService(cfg config.PDFConfig) *Service {
	return &Service{config: cfg}
}

// ReceiptData is passed to the receipt template
type ReceiptData struct {
	Confirmation *order.Confirmation
	Company      CompanyInfo
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name  string
	Phone string
	Email string
}

// RenderHTML renders the receipt as an HTML document
func (s *Service) RenderHTML(c *order.Confirmation) ([]byte, error) {
	data := ReceiptData{
		Confirmation: c,
		Company: CompanyInfo{
			Name:  s.config.CompanyName,
			Phone: s.config.CompanyPhone,
			Email: s.config.CompanyEmail,
		},
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateReceipt converts the receipt HTML to PDF with wkhtmltopdf
func (s *Service) GenerateReceipt(c *order.Confirmation) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderHTML(c)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(s.config.DPI)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order {{.Confirmation.OrderNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 24px; color: #333; }
        h1 { color: #c2185b; margin-bottom: 4px; }
        .meta { color: #777; font-size: 13px; }
        .section { margin-top: 24px; }
        .section h2 { font-size: 15px; border-bottom: 1px solid #eee; padding-bottom: 4px; }
        table { width: 100%; border-collapse: collapse; }
        td { padding: 6px 0; font-size: 13px; }
        td.amount { text-align: right; }
        tr.total td { font-weight: bold; border-top: 2px solid #333; }
    </style>
</head>
<body>
    <h1>{{.Company.Name}}</h1>
    <div class="meta">{{.Company.Email}} · {{.Company.Phone}}</div>

    {{with .Confirmation}}
    <div class="section">
        <h2>Order {{.OrderNumber}}</h2>
        <div class="meta">Placed {{.Date}}</div>
    </div>

    <div class="section">
        <h2>Customer</h2>
        <div>{{.CustomerName}}</div>
        <div>{{.Email}}</div>
        <div>{{.Phone}}</div>
    </div>

    <div class="section">
        <h2>Delivery</h2>
        <div>{{.DeliveryMethod}}</div>
        {{if .Address}}<div>{{.Address}}</div>{{end}}
        {{if .Instructions}}<div>Instructions: {{.Instructions}}</div>{{end}}
        <div>{{.DeliveryDate}}, {{.TimeSlot}}</div>
    </div>

    <div class="section">
        <h2>Payment</h2>
        <div>{{.PaymentMethod}}</div>
        {{if .CardMasked}}<div>{{.CardMasked}} (expires {{.CardExpiry}})</div>{{end}}
    </div>

    <div class="section">
        <h2>Items</h2>
        <table>
            {{range .Items}}
            <tr><td>{{.Name}}<br><span class="meta">{{.QuantityLabel}}</span></td><td class="amount">{{.LineTotalLabel}}</td></tr>
            {{end}}
        </table>
    </div>

    <div class="section">
        <table>
            <tr><td>{{.Summary.ItemCountLabel}}</td><td class="amount">{{.Summary.SubtotalLabel}}</td></tr>
            {{if .Summary.ShowDiscount}}<tr><td>Discount{{if .PromoCode}} ({{.PromoCode}}){{end}}</td><td class="amount">{{.Summary.DiscountLabel}}</td></tr>{{end}}
            <tr><td>Shipping</td><td class="amount">{{.Summary.ShippingLabel}}</td></tr>
            <tr><td>Tax</td><td class="amount">{{.Summary.TaxLabel}}</td></tr>
            <tr class="total"><td>Total</td><td class="amount">{{.Summary.TotalLabel}}</td></tr>
        </table>
    </div>

    {{with .Gift}}
    <div class="section">
        <h2>Gift message</h2>
        <div>To: {{.To}}</div>
        <div>From: {{.From}}</div>
        <p>{{.Message}}</p>
    </div>
    {{end}}
    {{end}}
</body>
</html>`
