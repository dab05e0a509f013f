package entities

import "time"

// ScrapSeller is the profile of a user who signed in through a federated
// identity provider. UID is the provider-issued subject.
type ScrapSeller struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	PanCard     string    `json:"panCard"`
	CarNumber   string    `json:"carNumber"`
	Verified    bool      `json:"verified"`
	LoginMethod string    `json:"loginMethod"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

const LoginMethodGoogle = "google"
