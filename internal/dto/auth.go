package dto

// LoginRequest is the credential pair posted by the dashboard login form
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse acknowledges a login attempt. No token or session is
// issued; the dashboard only needs the boolean.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse reports process and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
