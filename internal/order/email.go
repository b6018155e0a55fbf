package order

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the order confirmation mails.
type Mailer interface {
	SendOrderMail(o *Order, pdf []byte) error
}

// SMTPMailer sends the order PDF to the operator and the customer.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	operator string
}

func NewSMTPMailer() *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return &SMTPMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     os.Getenv("SMTP_FROM"),
		operator: os.Getenv("ORDER_NOTIFY_EMAIL"),
	}
}

func (m *SMTPMailer) SendOrderMail(o *Order, pdf []byte) error {
	attachment := fmt.Sprintf("Bestellung-%s.pdf", o.Number)
	attach := gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	})

	operatorMsg := gomail.NewMessage()
	operatorMsg.SetHeader("From", m.from)
	operatorMsg.SetHeader("To", m.operator)
	operatorMsg.SetHeader("Subject", fmt.Sprintf("Neue Bestellung #%s", o.Number))
	operatorMsg.SetBody("text/html", fmt.Sprintf(`
		<h2>Neue Bestellung eingegangen</h2>
		<p>Bestellnummer: %s</p>
		<h3>Kundeninformationen:</h3>
		<p>
			Name: %s %s<br>
			Email: %s<br>
			Telefon: %s<br>
			Adresse: %s<br>
			%s %s
		</p>`,
		o.Number,
		o.Customer.FirstName, o.Customer.LastName,
		o.Customer.Email,
		o.Customer.Phone,
		o.Customer.Address,
		o.Customer.PostalCode, o.Customer.City,
	))
	operatorMsg.Attach(attachment, attach)

	customerMsg := gomail.NewMessage()
	customerMsg.SetHeader("From", m.from)
	customerMsg.SetHeader("To", o.Customer.Email)
	customerMsg.SetHeader("Subject", fmt.Sprintf("Ihre Bestellung #%s bei Hardal Restaurant", o.Number))
	customerMsg.SetBody("text/html", fmt.Sprintf(`
		<h2>Vielen Dank für Ihre Bestellung!</h2>
		<p>Ihre Bestellnummer: %s</p>
		<p>Wir haben Ihre Bestellung erhalten und werden sie schnellstmöglich bearbeiten.</p>`,
		o.Number,
	))
	customerMsg.Attach(attachment, attach)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(operatorMsg, customerMsg)
}
