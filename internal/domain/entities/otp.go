package entities

import "regexp"

// OTPLength is the number of digits in a one-time code.
const OTPLength = 6

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// ValidOTPFormat reports whether code is exactly six ASCII digits.
func ValidOTPFormat(code string) bool {
	return otpPattern.MatchString(code)
}

type OTPPurpose string

const (
	OTPPurposeCustomer OTPPurpose = "customer"
	OTPPurposeBuyer    OTPPurpose = "buyer"
)

func (p OTPPurpose) PortalName() string {
	if p == OTPPurposeBuyer {
		return "Scrap Buyer Portal"
	}
	return "Customer Portal"
}
