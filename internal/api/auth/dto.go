package auth

/* ---------- SESSION SNAPSHOT ---------- */

type MeResponse struct {
	User        UserDTO  `json:"user"`
	Permissions []string `json:"permissions"`
	Token       TokenDTO `json:"token"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	TenantID string `json:"tenant_id"`
}

type TokenDTO struct {
	IssuedAt  *int64 `json:"issued_at"`  // unix seconds, null when unknown
	ExpiresIn *int64 `json:"expires_in"` // seconds left, null when the token has no expiry
}
