package utils

import (
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendReceiptEmail mails the rendered receipt markup to the recipients, with
// the order's QR code attached. Blocking; callers run it in a goroutine so
// the kiosk response is not delayed by SMTP.
func SendReceiptEmail(recipients []string, customerNumber, businessName, html string) error {
	m := gomail.NewMessage()
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}
	m.SetHeader("From", from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", businessName+" receipt - order #"+customerNumber)
	m.SetBody("text/html", html)

	qrBytes, err := GenerateQRCode(customerNumber, 256)
	if err == nil {
		filename := "order_" + customerNumber + ".png"
		m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrBytes)
			return err
		}))
	} else {
		log.Printf("receipt email: QR generation failed for %s: %v", customerNumber, err)
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
