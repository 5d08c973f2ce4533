package portal

// User is the captive-portal signup DTO, forwarded to the record store and
// not retained here.
type User struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
}
