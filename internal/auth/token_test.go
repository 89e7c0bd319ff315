package auth_test

import (
	"testing"
	"time"

	"github.com/newsdesk-cms/internal/auth"
)

func TestTokenManager_AdminRoundTrip(t *testing.T) {
	mgr := auth.NewTokenManager("test-secret")

	token, err := mgr.IssueAdmin(time.Hour)
	if err != nil {
		t.Fatalf("IssueAdmin failed: %v", err)
	}
	if err := mgr.VerifyAdmin(token); err != nil {
		t.Errorf("VerifyAdmin rejected a fresh token: %v", err)
	}
}

func TestTokenManager_SessionRoundTrip(t *testing.T) {
	mgr := auth.NewTokenManager("test-secret")

	token, err := mgr.IssueSession("user-42", time.Hour)
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	userID, err := mgr.VerifySession(token)
	if err != nil {
		t.Fatalf("VerifySession failed: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("Expected user-42, got %q", userID)
	}
}

func TestTokenManager_RoleIsolation(t *testing.T) {
	mgr := auth.NewTokenManager("test-secret")

	session, _ := mgr.IssueSession("user-42", time.Hour)
	if err := mgr.VerifyAdmin(session); err == nil {
		t.Error("A session token must not pass the admin gate")
	}

	admin, _ := mgr.IssueAdmin(time.Hour)
	if _, err := mgr.VerifySession(admin); err == nil {
		t.Error("An admin token must not resolve as a reader session")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	mgr := auth.NewTokenManager("test-secret")

	token, err := mgr.IssueAdmin(-time.Minute)
	if err != nil {
		t.Fatalf("IssueAdmin failed: %v", err)
	}
	if err := mgr.VerifyAdmin(token); err == nil {
		t.Error("Expired token should be rejected")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("secret-a").IssueAdmin(time.Hour)
	if err != nil {
		t.Fatalf("IssueAdmin failed: %v", err)
	}
	if err := auth.NewTokenManager("secret-b").VerifyAdmin(token); err == nil {
		t.Error("Token signed with a different secret should be rejected")
	}
}
