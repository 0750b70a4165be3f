package service

// PhoneNormalizer turns user-entered phone numbers into E.164.
type PhoneNormalizer interface {
	// Normalize returns the E.164 form of phone. Input already starting with
	// '+' is returned unchanged after cleaning.
	Normalize(phone string) (string, error)
}
