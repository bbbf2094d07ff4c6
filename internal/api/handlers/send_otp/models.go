package send_otp

// SendOTPRequest HTTP request model
type SendOTPRequest struct {
	Email string `json:"email"`
}

// SendOTPResponse HTTP response model
type SendOTPResponse struct {
	Message string `json:"message"`
}
