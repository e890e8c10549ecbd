package models

// AdminUser is a user row of the admin back-office listing.
type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// AdminUserInput carries the fields of an admin user-create request.
type AdminUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// AdminUserUpdate carries the fields of an admin user-update request.
// Password changes go through the user's own profile, not here.
type AdminUserUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// ProfileUpdate carries the self-service profile patch. Empty fields are
// omitted from the request so the server leaves them unchanged.
type ProfileUpdate struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}
