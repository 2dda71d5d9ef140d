package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Role is the closed set of roles a user may hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Roles lists every accepted role, in display order.
var Roles = []Role{RoleAdmin, RoleMember}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole normalises s and returns the matching role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", Invalid("role must be one of: admin, member")
	}
	return r, nil
}

// User models a registered household member.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Address      string    `json:"address"`
	Work         string    `json:"work"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the redacted view returned on login.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	FullName string `json:"fullName"`
}

// Public returns the redacted view of u.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role, FullName: u.FullName}
}

// ProfileUpdate carries the optional profile fields a user may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FullName *string
	Address  *string
	Work     *string
	Image    *string
}

// Empty reports whether the update changes nothing.
func (p ProfileUpdate) Empty() bool {
	return p.FullName == nil && p.Address == nil && p.Work == nil && p.Image == nil
}

// EmailKey returns the case-folded form of email used for uniqueness and lookup.
// A Caser is stateful, so a fresh one is built per call.
func EmailKey(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}
