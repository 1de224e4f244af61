package dto

// LoginRequest is the admin login form.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// CurrentUser is what the auth middleware stores for handlers.
type CurrentUser struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	SessionID string `json:"-"`
}
