package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"gopkg.in/gomail.v2"
)

// SendOrderConfirmation emails the customer after a successful checkout.
// Failures are logged by the caller; they never fail the order.
func SendOrderConfirmation(to string, order *models.Order) error {
	from := os.Getenv("SMTP_FROM")
	host := os.Getenv("SMTP_HOST")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	var lines []string
	for _, item := range order.OrderItems {
		lines = append(lines, fmt.Sprintf("<li>%s x%d - %.2f</li>", item.Name, item.Quantity, item.Total))
	}

	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Your order <strong>%s</strong> has been placed successfully.</p>
		<ul>%s</ul>
		<p>Items: %.2f<br>Shipping: %.2f<br>Tax: %.2f<br>Discount: -%.2f</p>
		<h3>Total: %.2f</h3>
		<p>We will notify you when your order ships.</p>
	`, order.OrderNumber, strings.Join(lines, ""), order.ItemsPrice,
		order.ShippingPrice, order.TaxPrice, order.Discount, order.TotalPrice)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Order confirmation - %s", order.OrderNumber))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
