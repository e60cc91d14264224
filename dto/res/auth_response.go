package res

// AuthResponse keeps the user fields flat so clients that expect a plain
// User object keep working; the token makes the in-memory session explicit.
type AuthResponse struct {
	UserResponse
	Token string `json:"token"`
}
