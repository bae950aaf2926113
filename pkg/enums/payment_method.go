package enums

import "fmt"

// PaymentMethod identifies how an order is settled. Only the WhatsApp channel
// is wired today; "online" is accepted at the boundary but has no gateway.
type PaymentMethod string

const (
	PaymentMethodWhatsApp PaymentMethod = "whatsapp"
	PaymentMethodOnline   PaymentMethod = "online"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodWhatsApp,
	PaymentMethodOnline,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
