// Package models defines the client-side data structures of the BookNest
// application: the session identity and the server-owned resources mirrored
// by the list views.
package models

// Session is the authenticated identity held by the running client.
// IsAdmin is meaningful only while Token is non-empty.
type Session struct {
	Token    string
	Username string
	IsAdmin  bool
}

// LoggedIn reports whether the session carries a token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Credentials is the payload of a successful login response.
type Credentials struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
