package models

// TOTPSetupResponse carries the provisioning secret and QR code for an
// authenticator app.
type TOTPSetupResponse struct {
	Secret      string `json:"secret"`
	QRCode      string `json:"qr_code"`
	Issuer      string `json:"issuer"`
	AccountName string `json:"account_name"`
}

type TOTPVerifyRequest struct {
	TempToken string `json:"temp_token"`
	Code      string `json:"code"`
}

type TOTPEnableRequest struct {
	Code string `json:"code"`
}
