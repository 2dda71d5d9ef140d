package domain

// Identity is the decoded, verified token payload. It lives only for the
// duration of one request.
type Identity struct {
	UserID string
	Role   Role
	Email  string
}

// Owns reports whether the identity refers to the user with the given id.
func (i Identity) Owns(userID string) bool {
	return i.UserID != "" && i.UserID == userID
}
