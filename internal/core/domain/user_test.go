package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"admin": RoleAdmin, " Member ": RoleMember, "ADMIN": RoleAdmin} {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q): expected %q, got %q", in, want, got)
		}
	}

	for _, in := range []string{"", "owner", "root"} {
		if _, err := ParseRole(in); !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseRole(%q): expected ErrValidation, got %v", in, err)
		}
	}
}

func TestEmailKey(t *testing.T) {
	if EmailKey(" JO@X.com ") != EmailKey("jo@x.com") {
		t.Fatalf("expected case-insensitive keys to match")
	}
	if EmailKey("jo@x.com") == EmailKey("jo@y.com") {
		t.Fatalf("expected distinct addresses to differ")
	}
}

func TestIdentityOwns(t *testing.T) {
	id := Identity{UserID: "u1"}
	if !id.Owns("u1") || id.Owns("u2") {
		t.Fatalf("unexpected ownership result")
	}
	if (Identity{}).Owns("") {
		t.Fatalf("empty identity must not own anything")
	}
}

func TestUserPublicOmitsHash(t *testing.T) {
	u := &User{ID: "u1", Email: "jo@x.com", PasswordHash: "hash", Role: RoleMember, FullName: "Jo"}
	pub := u.Public()
	if pub.ID != "u1" || pub.Email != "jo@x.com" || pub.Role != RoleMember || pub.FullName != "Jo" {
		t.Fatalf("unexpected public view: %+v", pub)
	}
}
