package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"velora_back_end/internal/models"
)

// ReceiptMailer sends the order confirmation email over SMTP.
type ReceiptMailer struct{}

func (ReceiptMailer) SendReceipt(order *models.Order) error {
	return SendReceiptEmail(order)
}

func SendReceiptEmail(order *models.Order) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP not configured")
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@velora.shop"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(order.Buyer.Email); err != nil {
		return err
	}
	msg.Subject("✅ Order confirmation - Velora")
	msg.SetBodyString(mail.TypeTextHTML, generateReceiptHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending receipt email to", order.Buyer.Email)
	return client.DialAndSend(msg)
}

// generateReceiptHTML renders the confirmation body. Prices are stored in
// cents, formatted here as decimal amounts.
func generateReceiptHTML(order *models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f</td>
				<td>%.2f</td>
			</tr>`, item.ProductID, item.Qty,
			float64(item.UnitPrice)/100,
			float64(item.UnitPrice)/100*float64(item.Qty)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thank you for your order, %s!</h2>
		<p>Your checkout on %s went through. Here is your receipt:</p>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr>
				<th align="left">Product</th>
				<th align="left">Qty</th>
				<th align="left">Unit price</th>
				<th align="left">Subtotal</th>
			</tr>%s
		</table>
		<p style="font-size: 18px;"><strong>Total: %.2f</strong></p>
		<p style="color: #888;">Order reference: %s</p>
	</div>
</body>
</html>`,
		order.Buyer.Name,
		order.CreatedAt.Format("January 2, 2006"),
		rows.String(),
		float64(order.Total)/100,
		order.ID.String())
}
