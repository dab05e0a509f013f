package entities

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Account is the credential record behind a user session.
//
// Storage model (DynamoDB):
//   - PK: email (lower-cased)
//   - GSI username-index: username
//   - GSI id-index: id
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	FullName       string    `json:"full_name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Portal selects which sign-in gate applies.
type Portal string

const (
	PortalCustomer Portal = "customer"
	PortalBuyer    Portal = "buyer"
)

// Session is what a successful sign-in hands back to the client.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Account     Account   `json:"account"`
}
