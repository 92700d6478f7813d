package usecasecontract

// IValidator validates request-level values before any store round trip.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
