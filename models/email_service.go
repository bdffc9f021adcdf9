package models

import (
	"fmt"

	"brewhouse/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendInquiryNotification(inquiry *Inquiry) error {
	inbox := config.AppConfig.InquiryInboxAddr
	if inbox == "" {
		inbox = s.from
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", inbox)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry from %s", inquiry.Name))

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>New customer inquiry</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Subject:</strong> %s</p>
    <hr>
    <p>%s</p>
</body>
</html>`, inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed - Brewhouse Coffee", order.ID))

	items := ""
	for _, item := range order.Items {
		items += fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>", item.CoffeeName, item.Quantity, item.Price)
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thank you for your order!</h2>
    <p>Your order <strong>#%d</strong> has been received and is being prepared.</p>
    <table border="1" cellpadding="6" cellspacing="0">
        <tr><th>Item</th><th>Qty</th><th>Price</th></tr>
        %s
    </table>
    <p><strong>Total: %.2f</strong></p>
    <p>Brewhouse Coffee Team</p>
</body>
</html>`, order.ID, items, order.TotalAmount)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
