package models

// AdminPrincipal is the administrative account allowed to use token-gated endpoints
type AdminPrincipal struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // EXCLUDED from JSON - bcrypt hash
}

// LoginRequest is accepted either as a JSON body or as query/form parameters
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
