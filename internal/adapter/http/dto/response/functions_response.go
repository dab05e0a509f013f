package response

import (
	"time"

	"wascrap/internal/domain/entities"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type UserEmailResponse struct {
	Email string `json:"email"`
}

type PartnerInquiryResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
}

// ScrapSellerResponse always carries "data"; a get for an unknown uid returns null.
type ScrapSellerResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    *entities.ScrapSeller `json:"data"`
}

type NotificationResponse struct {
	Success           bool   `json:"success"`
	ID                string `json:"id"`
	NotificationType  string `json:"notification_type"`
	EmailSent         bool   `json:"email_sent"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		Success:           n.EmailSent,
		ID:                n.ID,
		NotificationType:  string(n.Type),
		EmailSent:         n.EmailSent,
		ProviderMessageID: n.ProviderMessageID,
	}
}

type PartnerInquiryListItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	PartnerType string    `json:"partner_type"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func FromPartnerInquiries(ps []entities.PartnerInquiry) []PartnerInquiryListItem {
	out := make([]PartnerInquiryListItem, 0, len(ps))
	for _, p := range ps {
		out = append(out, PartnerInquiryListItem{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			Phone:       p.Phone,
			Company:     p.Company,
			PartnerType: string(p.PartnerType),
			Message:     p.Message,
			Status:      p.Status,
			SubmittedAt: p.SubmittedAt,
		})
	}
	return out
}

type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
		UserID:      s.Account.ID,
		Email:       s.Account.Email,
		Username:    s.Account.Username,
		Role:        string(s.Account.Role),
	}
}
