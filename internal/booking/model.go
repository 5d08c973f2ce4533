package booking

// Request is the event booking DTO. It is validated once at the HTTP
// boundary and then passed by value into the background work, so the
// dispatched tasks never see unvalidated input.
type Request struct {
	EventName    string `json:"eventName" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	Attendees    int    `json:"attendees" binding:"required"`
	Organizer    string `json:"organizer" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber"`
}
