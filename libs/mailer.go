package libs

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"storefront/models"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// OrderMailer sends an order confirmation to the shipping email.
type OrderMailer struct {
	sender mailSender
	from   string
	store  string
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewOrderMailer(cfg SMTPConfig, storeName string) (*OrderMailer, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &OrderMailer{
		sender: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Pass),
		from:   from,
		store:  storeName,
	}, nil
}

func (m *OrderMailer) Name() string {
	return "mailer"
}

func (m *OrderMailer) OrderPlaced(ctx context.Context, owner string, order models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := m.buildMessage(order)
	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *OrderMailer) buildMessage(order models.Order) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.ShippingInfo.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - %s", order.OrderID, m.store))
	msg.SetBody("text/html", renderOrderEmail(m.store, order))
	return msg
}

func renderOrderEmail(store string, order models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, `
            <tr><td>%s</td><td>%d</td><td>%s</td></tr>`,
			html.EscapeString(item.Name), item.Quantity, FormatAmount(order.Currency, item.LineTotal()))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .order-box { background-color: #f0fdf4; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Hello %s, thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order Number:</strong> %s</p>
            <table width="100%%">
            <tr><th align="left">Item</th><th align="left">Qty</th><th align="left">Amount</th></tr>%s
            </table>
            <p><strong>Shipping:</strong> %s</p>
            <p><strong>Tax:</strong> %s</p>
            <p><strong>Total Amount:</strong> %s</p>
        </div>

        <p>We will deliver to %s, %s, %s.</p>

        <div class="footer">
            <p>%s</p>
        </div>
    </div>
</body>
</html>
`,
		html.EscapeString(order.ShippingInfo.Name),
		html.EscapeString(order.OrderID),
		rows.String(),
		FormatAmount(order.Currency, order.ShippingFee),
		FormatAmount(order.Currency, order.Tax),
		FormatAmount(order.Currency, order.TotalAmount),
		html.EscapeString(order.ShippingInfo.Address),
		html.EscapeString(order.ShippingInfo.City),
		html.EscapeString(order.ShippingInfo.State),
		html.EscapeString(store),
	)
}

// FormatAmount renders minor units as "NGN 1,234.50".
func FormatAmount(currency string, minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	major := fmt.Sprintf("%d", minor/100)

	var b strings.Builder
	n := len(major)
	for i, digit := range major {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := fmt.Sprintf("%s%s.%02d", sign, b.String(), minor%100)
	if currency != "" {
		out = currency + " " + out
	}
	return out
}
