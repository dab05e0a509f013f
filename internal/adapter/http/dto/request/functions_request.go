package request

import (
	"strings"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase"
)

// Payloads of the /functions endpoints keep the camelCase keys the web client
// already sends.

type SignInRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Portal     string `json:"portal"`
}

// ResolvePortal defaults to the customer portal.
func (r SignInRequest) ResolvePortal() entities.Portal {
	if entities.Portal(strings.ToLower(strings.TrimSpace(r.Portal))) == entities.PortalBuyer {
		return entities.PortalBuyer
	}
	return entities.PortalCustomer
}

type SendOTPRequest struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}

func (r SendOTPRequest) ResolvePurpose() entities.OTPPurpose {
	if entities.OTPPurpose(strings.ToLower(strings.TrimSpace(r.Type))) == entities.OTPPurposeBuyer {
		return entities.OTPPurposeBuyer
	}
	return entities.OTPPurposeCustomer
}

type VerifyOTPRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r VerifyOTPRequest) ToInput() usecase.VerifyOTPInput {
	return usecase.VerifyOTPInput{Email: r.Email, OTP: r.OTP, Username: r.Username, Password: r.Password}
}

type GetUserEmailRequest struct {
	Username string `json:"username"`
}

type PartnerInquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	PartnerType string `json:"partnerType"`
	Message     string `json:"message"`
}

func (r PartnerInquiryRequest) ToInput() usecase.PartnerInquiryInput {
	return usecase.PartnerInquiryInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		PartnerType: r.PartnerType,
		Message:     r.Message,
	}
}

type SellerUserData struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	PanCard     string `json:"panCard"`
	CarNumber   string `json:"carNumber"`
	CreatedAt   string `json:"createdAt"`
}

type FirebaseAuthRequest struct {
	Action   string         `json:"action"`
	UserData SellerUserData `json:"userData"`
	UID      string         `json:"uid"`
}

func (r FirebaseAuthRequest) ToInput() (usecase.SellerAction, usecase.SellerInput, string) {
	d := r.UserData
	in := usecase.SellerInput{
		UID:         d.UID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		PhotoURL:    d.PhotoURL,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		Pincode:     d.Pincode,
		PanCard:     d.PanCard,
		CarNumber:   d.CarNumber,
		CreatedAt:   d.CreatedAt,
	}
	return usecase.SellerAction(strings.ToLower(strings.TrimSpace(r.Action))), in, r.UID
}

type SendNotificationRequest struct {
	To        string `json:"to"`
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
	BuyerID   string `json:"buyerId"`
	BuyerName string `json:"buyerName"`
	Reason    string `json:"reason"`
}

func (r SendNotificationRequest) ToInput() usecase.NotificationRequest {
	return usecase.NotificationRequest{
		To:        r.To,
		Type:      entities.NotificationType(strings.ToLower(strings.TrimSpace(r.Type))),
		BookingID: r.BookingID,
		BuyerID:   r.BuyerID,
		BuyerName: r.BuyerName,
		Reason:    r.Reason,
	}
}
