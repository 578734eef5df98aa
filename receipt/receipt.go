// Package receipt renders printable order receipts. Rendering is pure: it
// reads the order and never mutates it.
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"greenscreen_kiosk/model"
	"greenscreen_kiosk/utils"
)

type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceOperator Audience = "operator"
	AudienceBoth     Audience = "both"
)

var ErrUnknownAudience = fmt.Errorf("unknown receipt audience")

type receiptData struct {
	Title          string
	BusinessName   string
	CustomerNumber string
	CustomerName   string
	PartySize      int
	PhotoQuantity  int
	BackgroundName string
	Backgrounds    []model.BackgroundSelection
	DeliveryMethod string
	PrintQuantity  int
	EmailAddresses []string
	PaymentMethod  string
	TotalPrice     string
	EventName      string
	CreatedAt      string
	QRCode         template.URL

	// Operator copy only
	Operator      bool
	OperatorNotes []string
	StatusLines   []statusLine
}

type statusLine struct {
	Label string
	Done  bool
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<div class="receipt {{if .Operator}}receipt-operator{{else}}receipt-customer{{end}}">
  <div class="receipt-header">
    <h1>{{.BusinessName}}</h1>
    {{if .EventName}}<p class="event">{{.EventName}}</p>{{end}}
    <p class="copy-label">{{.Title}}</p>
  </div>
  <div class="order-number">
    <span>Order #</span>
    <strong>{{.CustomerNumber}}</strong>
  </div>
  {{if .QRCode}}<div class="qr"><img src="{{.QRCode}}" alt="Order {{.CustomerNumber}}"/></div>{{end}}
  <table class="details">
    <tr><td>Name</td><td>{{.CustomerName}}</td></tr>
    <tr><td>Party size</td><td>{{.PartySize}}</td></tr>
    <tr><td>Photos</td><td>{{.PhotoQuantity}}</td></tr>
    {{if .Backgrounds}}{{range $i, $bg := .Backgrounds}}
    <tr><td>Background {{inc $i}}</td><td>{{$bg.Name}}</td></tr>
    {{end}}{{else}}
    <tr><td>Background</td><td>{{.BackgroundName}}</td></tr>
    {{end}}
    <tr><td>Delivery</td><td>{{.DeliveryMethod}}</td></tr>
    {{if .PrintQuantity}}<tr><td>Prints</td><td>{{.PrintQuantity}}</td></tr>{{end}}
    {{range .EmailAddresses}}<tr><td>Email</td><td>{{.}}</td></tr>{{end}}
    <tr><td>Payment</td><td>{{.PaymentMethod}}</td></tr>
    <tr class="total"><td>Total</td><td>{{.TotalPrice}}</td></tr>
  </table>
  {{if .Operator}}
  <div class="status">
    {{range .StatusLines}}<p>[{{if .Done}}x{{else}} {{end}}] {{.Label}}</p>
    {{end}}
  </div>
  {{if .OperatorNotes}}
  <div class="notes">
    <h2>Notes</h2>
    {{range .OperatorNotes}}<p>{{.}}</p>
    {{end}}
  </div>
  {{end}}
  {{end}}
  <div class="receipt-footer">
    <p>{{.CreatedAt}}</p>
    <p>Keep this slip to collect your photos.</p>
  </div>
</div>
`))

// Render produces the receipt markup for the given audience. "both" stacks
// the customer copy above the operator copy, separated by a cut line.
func Render(order *model.Order, businessName string, audience Audience) (string, error) {
	switch audience {
	case AudienceCustomer:
		return renderOne(order, businessName, false)
	case AudienceOperator:
		return renderOne(order, businessName, true)
	case AudienceBoth:
		customer, err := renderOne(order, businessName, false)
		if err != nil {
			return "", err
		}
		operator, err := renderOne(order, businessName, true)
		if err != nil {
			return "", err
		}
		return customer + `<hr class="cut-line"/>` + operator, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAudience, audience)
	}
}

func renderOne(order *model.Order, businessName string, operator bool) (string, error) {
	data := receiptData{
		Title:          "Customer copy",
		BusinessName:   businessName,
		CustomerNumber: order.CustomerNumber,
		CustomerName:   order.CustomerName,
		PartySize:      order.PartySize,
		PhotoQuantity:  order.PhotoQuantity,
		BackgroundName: order.BackgroundName,
		Backgrounds:    order.Backgrounds,
		DeliveryMethod: order.DeliveryMethod,
		PrintQuantity:  order.PrintQuantity,
		EmailAddresses: order.EmailAddresses,
		PaymentMethod:  order.PaymentMethod,
		TotalPrice:     fmt.Sprintf("$%.2f", order.TotalPrice),
		EventName:      order.EventName,
		CreatedAt:      order.CreatedAt.Format("01/02/2006 3:04 PM"),
		QRCode:         template.URL(utils.QRCodeDataURI(order.CustomerNumber, 200)),
		Operator:       operator,
	}

	if operator {
		data.Title = "Operator copy"
		if order.OperatorNotes != nil {
			data.OperatorNotes = strings.Split(*order.OperatorNotes, "\n")
		}
		data.StatusLines = []statusLine{
			{"Photo taken", order.StatusPhotoTaken},
			{"Paid", order.StatusPaid},
			{"Emails sent", order.StatusEmailsSent},
			{"Prints ready", order.StatusPrintsReady},
			{"Picked up", order.StatusPickedUp},
		}
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
