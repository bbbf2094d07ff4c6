package verify_otp

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
	Verified bool `json:"verified"`
}
