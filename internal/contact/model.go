package contact

// Form is the contact form DTO. The email format check happens here at the
// boundary, before the notification gateway is ever invoked.
type Form struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
