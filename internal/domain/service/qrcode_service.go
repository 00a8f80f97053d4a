package service

// QRCodeService defines the interface for rendering vendor QR codes
type QRCodeService interface {
	// GenerateVendorQR renders the vendor's redemption token as a PNG image
	GenerateVendorQR(token string) ([]byte, error)
}
