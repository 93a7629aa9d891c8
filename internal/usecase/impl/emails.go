package impl

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"bistro/config"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"

	"github.com/shopspring/decimal"
)

// Confirmation email bodies. Each submission produces two messages: a
// confirmation for the customer and a copy for the restaurant's
// notification inbox.

// Kitchen pricing for the tray upgrades and sauce add-ons the storefront
// sells alongside a tray. These are charged per unit on top of the listed
// tray price.
var (
	upgrade48Price = decimal.NewFromInt(24)
	upgrade24Price = decimal.NewFromInt(12)
	addOnHalfPrice = decimal.NewFromInt(15)
	addOnFullPrice = decimal.NewFromInt(25)
)

// emailLineItem is one priced row of the rendered items table. A single cart
// item expands into its base row plus a row per upgrade or add-on carried on
// it.
type emailLineItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

func priceLine(name string, quantity int, unitPrice decimal.Decimal) emailLineItem {
	return emailLineItem{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice.StringFixed(2),
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))).StringFixed(2),
	}
}

// expandCartLines flattens the cart into priced table rows, annotating the
// base row with the serves count and tray size and appending the upgrade and
// add-on rows the kitchen charges separately.
func expandCartLines(items []entity.CartItem) []emailLineItem {
	lines := make([]emailLineItem, 0, len(items))
	for _, item := range items {
		name := item.ItemName
		if item.SelectedServes != nil {
			name += fmt.Sprintf(" (Serves %d)", *item.SelectedServes)
		}
		if item.SelectedSize != "" {
			name += fmt.Sprintf(" (%s Tray)", item.SelectedSize)
		}
		lines = append(lines, priceLine(name, item.Quantity, item.Price))

		if item.Upgrade48Qty > 0 {
			lines = append(lines, priceLine("Upgrade: Pad Thai (48 oz)", item.Upgrade48Qty, upgrade48Price))
		}
		if item.Upgrade24Qty > 0 {
			lines = append(lines, priceLine("Upgrade: Pad Thai (24 oz)", item.Upgrade24Qty, upgrade24Price))
		}
		if item.AddOnQty > 0 {
			price, size := addOnFullPrice, "32oz"
			if item.SelectedSize == "Half" {
				price, size = addOnHalfPrice, "16oz"
			}
			sauce := "Jao Sauce"
			if item.ItemName == "Sai Ua Sausage" {
				sauce = "Prik Noom Sauce"
			}
			lines = append(lines, priceLine(fmt.Sprintf("Add-on: %s (%s)", sauce, size), item.AddOnQty, price))
		}
	}

	return lines
}

type orderEmailData struct {
	RestaurantName  string
	ContactEmail    string
	ContactPhone    string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	DeliveryDate    string
	Items           []emailLineItem
	AdditionalInfo  string
	Total           string
	Tip             string
	Discount        string
}

type cateringEmailData struct {
	RestaurantName      string
	ContactEmail        string
	ContactPhone        string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	EventAddress        string
	EventDate           string
	EventDetails        string
	SpecialInstructions string
	Cart                []emailLineItem
	Total               string
}

var orderCustomerHTML = htmltemplate.Must(htmltemplate.New("orderCustomer").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order, {{.CustomerName}}!</h2>
  <p>We have received your order and will have it ready for delivery on <strong>{{.DeliveryDate}}</strong>.</p>
  <h3>Order Summary</h3>
  <table cellpadding="6" cellspacing="0" border="0">
    {{range .Items}}<tr><td>{{.Name}}</td><td align="center">{{.Quantity}}</td><td align="right">${{.UnitPrice}}</td><td align="right">${{.LineTotal}}</td></tr>
    {{end}}
  </table>
  {{if .Discount}}<p>Discount: -${{.Discount}}</p>{{end}}
  {{if .Tip}}<p>Tip: ${{.Tip}}</p>{{end}}
  <p><strong>Total: ${{.Total}}</strong></p>
  <p>Delivery address: {{.DeliveryAddress}}</p>
  {{if .AdditionalInfo}}<p>Notes: {{.AdditionalInfo}}</p>{{end}}
  <p>Questions? Reach us at {{.ContactEmail}} or {{.ContactPhone}}.</p>
  <p>{{.RestaurantName}}</p>
</body>
</html>`))

var orderCustomerText = texttemplate.Must(texttemplate.New("orderCustomerText").Parse(`Thank you for your order, {{.CustomerName}}!

We have received your order and will have it ready for delivery on {{.DeliveryDate}}.

Order summary:
{{range .Items}}  {{.Name}} x{{.Quantity}} @ ${{.UnitPrice}} - ${{.LineTotal}}
{{end}}{{if .Discount}}Discount: -${{.Discount}}
{{end}}{{if .Tip}}Tip: ${{.Tip}}
{{end}}Total: ${{.Total}}

Delivery address: {{.DeliveryAddress}}
{{if .AdditionalInfo}}Notes: {{.AdditionalInfo}}
{{end}}
Questions? Reach us at {{.ContactEmail}} or {{.ContactPhone}}.

{{.RestaurantName}}`))

var orderBusinessHTML = htmltemplate.Must(htmltemplate.New("orderBusiness").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New order received</h2>
  <p><strong>{{.CustomerName}}</strong> ({{.CustomerEmail}}, {{.CustomerPhone}})</p>
  <p>Delivery: {{.DeliveryAddress}} on {{.DeliveryDate}}</p>
  <table cellpadding="6" cellspacing="0" border="0">
    {{range .Items}}<tr><td>{{.Name}}</td><td align="center">{{.Quantity}}</td><td align="right">${{.UnitPrice}}</td><td align="right">${{.LineTotal}}</td></tr>
    {{end}}
  </table>
  {{if .Discount}}<p>Discount: -${{.Discount}}</p>{{end}}
  {{if .Tip}}<p>Tip: ${{.Tip}}</p>{{end}}
  <p><strong>Total: ${{.Total}}</strong></p>
  {{if .AdditionalInfo}}<p>Notes: {{.AdditionalInfo}}</p>{{end}}
</body>
</html>`))

var orderBusinessText = texttemplate.Must(texttemplate.New("orderBusinessText").Parse(`New order received

{{.CustomerName}} ({{.CustomerEmail}}, {{.CustomerPhone}})
Delivery: {{.DeliveryAddress}} on {{.DeliveryDate}}

{{range .Items}}  {{.Name}} x{{.Quantity}} @ ${{.UnitPrice}} - ${{.LineTotal}}
{{end}}{{if .Discount}}Discount: -${{.Discount}}
{{end}}{{if .Tip}}Tip: ${{.Tip}}
{{end}}Total: ${{.Total}}
{{if .AdditionalInfo}}Notes: {{.AdditionalInfo}}
{{end}}`))

var cateringCustomerHTML = htmltemplate.Must(htmltemplate.New("cateringCustomer").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>We received your catering request, {{.CustomerName}}!</h2>
  <p>Thank you for thinking of {{.RestaurantName}} for your event on <strong>{{.EventDate}}</strong>. We will review the details and get back to you shortly to confirm.</p>
  {{if .Cart}}<h3>Requested Items</h3>
  <table cellpadding="6" cellspacing="0" border="0">
    {{range .Cart}}<tr><td>{{.Name}}</td><td align="center">{{.Quantity}}</td><td align="right">${{.UnitPrice}}</td><td align="right">${{.LineTotal}}</td></tr>
    {{end}}
  </table>{{end}}
  {{if .Total}}<p><strong>Estimated total: ${{.Total}}</strong></p>{{end}}
  <p>Event address: {{.EventAddress}}</p>
  {{if .EventDetails}}<p>Event details: {{.EventDetails}}</p>{{end}}
  {{if .SpecialInstructions}}<p>Special instructions: {{.SpecialInstructions}}</p>{{end}}
  <p>Questions? Reach us at {{.ContactEmail}} or {{.ContactPhone}}.</p>
  <p>{{.RestaurantName}}</p>
</body>
</html>`))

var cateringCustomerText = texttemplate.Must(texttemplate.New("cateringCustomerText").Parse(`We received your catering request, {{.CustomerName}}!

Thank you for thinking of {{.RestaurantName}} for your event on {{.EventDate}}. We will review the details and get back to you shortly to confirm.

{{if .Cart}}Requested items:
{{range .Cart}}  {{.Name}} x{{.Quantity}} @ ${{.UnitPrice}} - ${{.LineTotal}}
{{end}}{{end}}{{if .Total}}Estimated total: ${{.Total}}
{{end}}Event address: {{.EventAddress}}
{{if .EventDetails}}Event details: {{.EventDetails}}
{{end}}{{if .SpecialInstructions}}Special instructions: {{.SpecialInstructions}}
{{end}}
Questions? Reach us at {{.ContactEmail}} or {{.ContactPhone}}.

{{.RestaurantName}}`))

var cateringBusinessHTML = htmltemplate.Must(htmltemplate.New("cateringBusiness").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New catering request</h2>
  <p><strong>{{.CustomerName}}</strong> ({{.CustomerEmail}}, {{.CustomerPhone}})</p>
  <p>Event: {{.EventAddress}} on {{.EventDate}}</p>
  {{if .EventDetails}}<p>Details: {{.EventDetails}}</p>{{end}}
  {{if .SpecialInstructions}}<p>Special instructions: {{.SpecialInstructions}}</p>{{end}}
  {{if .Cart}}<table cellpadding="6" cellspacing="0" border="0">
    {{range .Cart}}<tr><td>{{.Name}}</td><td align="center">{{.Quantity}}</td><td align="right">${{.UnitPrice}}</td><td align="right">${{.LineTotal}}</td></tr>
    {{end}}
  </table>{{end}}
  {{if .Total}}<p><strong>Estimated total: ${{.Total}}</strong></p>{{end}}
</body>
</html>`))

var cateringBusinessText = texttemplate.Must(texttemplate.New("cateringBusinessText").Parse(`New catering request

{{.CustomerName}} ({{.CustomerEmail}}, {{.CustomerPhone}})
Event: {{.EventAddress}} on {{.EventDate}}
{{if .EventDetails}}Details: {{.EventDetails}}
{{end}}{{if .SpecialInstructions}}Special instructions: {{.SpecialInstructions}}
{{end}}{{if .Cart}}Requested items:
{{range .Cart}}  {{.Name}} x{{.Quantity}} @ ${{.UnitPrice}} - ${{.LineTotal}}
{{end}}{{end}}{{if .Total}}Estimated total: ${{.Total}}
{{end}}`))

// renderOrderEmails produces the customer confirmation and the business copy
// for a committed order.
func renderOrderEmails(restaurant *config.RestaurantConfig, order *entity.Order) []*service.EmailMessage {
	if restaurant == nil {
		return nil
	}

	data := orderEmailData{
		RestaurantName:  restaurant.Name,
		ContactEmail:    restaurant.ContactEmail,
		ContactPhone:    restaurant.ContactPhone,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryDate:    order.DeliveryDate.Format("Monday, January 2, 2006"),
		Items:           expandCartLines(order.Payload.Items),
		AdditionalInfo:  order.Payload.AdditionalInfo,
		Total:           order.Total.StringFixed(2),
		Tip:             zeroBlank(order.Tip),
		Discount:        zeroBlank(order.Discount),
	}

	messages := make([]*service.EmailMessage, 0, 2)

	if order.CustomerEmail != "" {
		messages = append(messages, &service.EmailMessage{
			To:            order.CustomerEmail,
			Subject:       fmt.Sprintf("Order Confirmation - %s", restaurant.Name),
			HTMLBody:      renderHTML(orderCustomerHTML, data),
			PlainTextBody: renderText(orderCustomerText, data),
		})
	}

	if restaurant.NotificationEmail != "" {
		messages = append(messages, &service.EmailMessage{
			To:            restaurant.NotificationEmail,
			ReplyTo:       order.CustomerEmail,
			Subject:       fmt.Sprintf("New Order - %s", order.CustomerName),
			HTMLBody:      renderHTML(orderBusinessHTML, data),
			PlainTextBody: renderText(orderBusinessText, data),
		})
	}

	return messages
}

// renderCateringEmails produces the customer confirmation and the business
// copy for a committed catering request.
func renderCateringEmails(restaurant *config.RestaurantConfig, request *entity.CateringRequest) []*service.EmailMessage {
	if restaurant == nil {
		return nil
	}

	data := cateringEmailData{
		RestaurantName:      restaurant.Name,
		ContactEmail:        restaurant.ContactEmail,
		ContactPhone:        restaurant.ContactPhone,
		CustomerName:        request.CustomerName,
		CustomerEmail:       request.CustomerEmail,
		CustomerPhone:       request.CustomerPhone,
		EventAddress:        request.EventAddress,
		EventDate:           request.EventDate.Format("Monday, January 2, 2006"),
		EventDetails:        request.Payload.EventDetails,
		SpecialInstructions: request.Payload.SpecialInstructions,
		Cart:                expandCartLines(request.Payload.Cart),
		Total:               zeroBlank(request.Total),
	}

	messages := make([]*service.EmailMessage, 0, 2)

	if request.CustomerEmail != "" {
		messages = append(messages, &service.EmailMessage{
			To:            request.CustomerEmail,
			Subject:       fmt.Sprintf("Catering Request Received - %s", restaurant.Name),
			HTMLBody:      renderHTML(cateringCustomerHTML, data),
			PlainTextBody: renderText(cateringCustomerText, data),
		})
	}

	if restaurant.NotificationEmail != "" {
		messages = append(messages, &service.EmailMessage{
			To:            restaurant.NotificationEmail,
			ReplyTo:       request.CustomerEmail,
			Subject:       fmt.Sprintf("New Catering Request - %s", request.CustomerName),
			HTMLBody:      renderHTML(cateringBusinessHTML, data),
			PlainTextBody: renderText(cateringBusinessText, data),
		})
	}

	return messages
}

func renderHTML(tmpl *htmltemplate.Template, data any) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return ""
	}

	return sb.String()
}

func renderText(tmpl *texttemplate.Template, data any) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return ""
	}

	return sb.String()
}

// zeroBlank formats an amount, blanking zero so optional lines drop out of
// the rendered body.
func zeroBlank(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}

	return amount.StringFixed(2)
}
