package service

// QRCodeService renders payment links as QR codes.
type QRCodeService interface {
	// GeneratePaymentQR encodes a payment link as a PNG image
	GeneratePaymentQR(link string) ([]byte, error)
}
