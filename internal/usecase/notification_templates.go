package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"wascrap/internal/domain/entities"
)

type emailData struct {
	BookingID string
	Booking   *entities.Booking
	Reason    string
	BuyerName string
	Support   string
	Code      string
	Portal    string
}

func (d emailData) ItemsSummary() string {
	if d.Booking == nil {
		return ""
	}
	parts := make([]string, 0, len(d.Booking.ScrapTypes))
	for _, it := range d.Booking.ScrapTypes {
		parts = append(parts, fmt.Sprintf("%s (%gkg)", it.Type, it.Weight))
	}
	return strings.Join(parts, ", ")
}

const layoutOpen = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`
const layoutClose = `<p style="color: #6b7280; font-size: 12px;">Questions? Contact us at {{.Support}}</p></div>`

var emailSubjects = map[entities.NotificationType]string{
	entities.NotificationOrderCompleted:  "🎉 Your Scrap Pickup Order Has Been Completed!",
	entities.NotificationOrderCancelled:  "❌ Your Scrap Pickup Order Has Been Cancelled",
	entities.NotificationBuyerApproved:   "✅ Your Scrap Buyer Account Has Been Approved",
	entities.NotificationBuyerRejected:   "Update on Your Scrap Buyer Application",
	entities.NotificationBookingReceived: "🎉 Pickup Confirmed - WASCRAP",
	entities.NotificationBookingAlert:    "🔔 New Booking Alert",
}

var emailTemplates = map[entities.NotificationType]*template.Template{
	entities.NotificationOrderCompleted: mustTemplate("order_completed", `
<h1 style="color: #16a34a;">Order Completed</h1>
<p>Your scrap pickup order <strong>{{.BookingID}}</strong> has been completed successfully.</p>
<p>Thank you for choosing our scrap collection service. Your contribution makes a real difference in creating a more sustainable future.</p>`),
	entities.NotificationOrderCancelled: mustTemplate("order_cancelled", `
<h1 style="color: #dc2626;">Order Cancelled</h1>
<p>Your scrap pickup order <strong>{{.BookingID}}</strong> has been cancelled.</p>
<p><strong>Reason:</strong> {{.Reason}}</p>
<p>We apologize for any inconvenience caused. We're committed to providing the best service possible and look forward to serving you in the future.</p>`),
	entities.NotificationBuyerApproved: mustTemplate("buyer_approved", `
<h1 style="color: #16a34a;">Welcome aboard, {{.BuyerName}}!</h1>
<p>Your scrap buyer account has been verified. You can now sign in to the Scrap Buyer Portal and start accepting pickups.</p>`),
	entities.NotificationBuyerRejected: mustTemplate("buyer_rejected", `
<h1>Hello {{.BuyerName}},</h1>
<p>After reviewing your scrap buyer application we are unable to approve it at this time.</p>
<p><strong>Reason:</strong> {{.Reason}}</p>`),
	entities.NotificationBookingReceived: mustTemplate("booking_received", `
<h1 style="color: #16a34a;">Pickup Confirmed</h1>
{{with .Booking}}<p>Hi {{.FullName}}, we have received your pickup request.</p>
<table style="width: 100%; border-collapse: collapse;">
<tr><td><strong>Booking ID</strong></td><td>{{.ID}}</td></tr>
<tr><td><strong>Pickup</strong></td><td>{{.PickupDate}} ({{.PickupTime}})</td></tr>
<tr><td><strong>Address</strong></td><td>{{.Address}}, {{.City}}, {{.State}} - {{.Pincode}}</td></tr>
</table>{{end}}
<p><strong>Items:</strong> {{.ItemsSummary}}</p>
<p>Thanks for choosing WASCRAP - Making waste profitable, planet sustainable! 🌱</p>`),
	entities.NotificationBookingAlert: mustTemplate("booking_alert", `
<h1>New Booking</h1>
{{with .Booking}}<table style="width: 100%; border-collapse: collapse; border: 1px solid #e5e7eb;">
<tr><td><strong>Customer</strong></td><td>{{.FullName}}</td></tr>
<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
<tr><td><strong>Address</strong></td><td>{{.Address}}, {{.City}}, {{.District}}, {{.State}} - {{.Pincode}}</td></tr>
<tr><td><strong>Pickup</strong></td><td>{{.PickupDate}} ({{.PickupTime}})</td></tr>
{{if .SpecialInstructions}}<tr><td><strong>Instructions</strong></td><td>{{.SpecialInstructions}}</td></tr>{{end}}
</table>{{end}}
<p><strong>Items:</strong> {{.ItemsSummary}}</p>`),
}

var otpTemplate = mustTemplate("otp", `
<h1 style="color: #16a34a;">Verify your email</h1>
<p>Your one-time password (OTP) for {{.Portal}} is:</p>
<p style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">{{.Code}}</p>
<p>This code expires in 10 minutes.</p>
<p>If you didn't request this OTP, please ignore this email.</p>`)

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(layoutOpen + body + layoutClose))
}

func renderNotification(t entities.NotificationType, data emailData) (subject, html string, err error) {
	tmpl, ok := emailTemplates[t]
	if !ok {
		return "", "", ErrUnknownNotificationType
	}
	subject = emailSubjects[t]
	if t == entities.NotificationBookingAlert && data.Booking != nil {
		subject = fmt.Sprintf("%s - %s", subject, data.Booking.FullName)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

func renderOTP(code string, purpose entities.OTPPurpose, support string) (subject, html string, err error) {
	data := emailData{Code: code, Portal: purpose.PortalName(), Support: support}
	var buf bytes.Buffer
	if err := otpTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Your OTP for %s - %s", data.Portal, code), buf.String(), nil
}
