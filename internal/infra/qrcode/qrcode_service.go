package qrcode

import (
	"net/url"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR renderer. Levels are L, M, Q, H or their names;
// anything else means medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseLevel(errorCorrectionLevel),
	}
}

func parseLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePaymentQR renders an absolute http(s) payment link as a PNG.
func (s *qrcodeService) GeneratePaymentQR(link string) ([]byte, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, errors.New("payment link is empty")
	}

	parsed, err := url.Parse(link)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "https" && parsed.Scheme != "http") {
		return nil, errors.Errorf("payment link %q is not an absolute http(s) URL", link)
	}

	pngBytes, err := qrcode.Encode(link, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment QR")
	}

	return pngBytes, nil
}
