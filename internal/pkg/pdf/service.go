// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string
	IssuedOn      string
	Order         *order.Order
	StoreName     string
	SupportEmail  string
	Website       string
}

// GenerateReceipt renders a PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("RCP-%s", o.OrderNumber),
		IssuedOn:      o.CreatedAt.Format("January 2, 2006"),
		Order:         o,
		StoreName:     s.config.Store.Name,
		SupportEmail:  s.config.Store.SupportEmail,
		Website:       s.config.Store.Website,
	}

	htmlContent, err := s.renderHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) renderHTML(data ReceiptData) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func centsToDollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": centsToDollars,
}).Parse(receiptTemplate))

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 24px; color: #333; }
        .header { border-bottom: 2px solid #eee; padding-bottom: 16px; margin-bottom: 24px; }
        .title { font-size: 26px; font-weight: bold; color: #2563eb; }
        .meta { color: #666; font-size: 13px; margin-top: 6px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
        th { text-align: left; border-bottom: 1px solid #ddd; padding: 8px 4px; font-size: 13px; }
        td { padding: 8px 4px; border-bottom: 1px solid #f0f0f0; font-size: 13px; }
        .amount { text-align: right; }
        .totals td { border: none; padding: 3px 4px; }
        .totals .label { text-align: right; color: #666; }
        .totals .grand { font-weight: bold; font-size: 15px; }
        .footer { margin-top: 32px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.StoreName}}</div>
        <div class="meta">
            Receipt {{.ReceiptNumber}} &middot; Order {{.Order.OrderNumber}} &middot; {{.IssuedOn}}
        </div>
    </div>

    <table>
        <tr><th>Item</th><th class="amount">Price</th></tr>
        {{range .Order.Items}}
        <tr><td>{{.Title}}</td><td class="amount">{{money .Price}}</td></tr>
        {{end}}
    </table>

    <table class="totals">
        <tr><td class="label">Subtotal</td><td class="amount">{{money .Order.Subtotal}}</td></tr>
        {{if .Order.CouponCode}}
        <tr><td class="label">Discount ({{.Order.CouponCode}})</td><td class="amount">-{{money .Order.Discount}}</td></tr>
        {{end}}
        <tr><td class="label grand">Total</td><td class="amount grand">{{money .Order.Total}}</td></tr>
    </table>

    <div class="footer">
        Questions? Contact {{.SupportEmail}} &middot; {{.Website}}
    </div>
</body>
</html>
`
