package auth

import "testing"

func TestAdminLoginExactPairOnly(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "yasirperfume", "yasir@313", true},
		{"wrong password", "yasirperfume", "wrong", false},
		{"wrong username", "someone", "yasir@313", false},
		{"case difference", "YasirPerfume", "yasir@313", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService()
			if got := service.AdminLogin(tt.username, tt.password); got != tt.want {
				t.Errorf("AdminLogin = %v, want %v", got, tt.want)
			}
			if service.IsAdminAuthenticated() != tt.want {
				t.Errorf("IsAdminAuthenticated = %v, want %v", service.IsAdminAuthenticated(), tt.want)
			}
		})
	}
}

func TestFailedAdminLoginClearsExistingSession(t *testing.T) {
	service := NewService()
	service.AdminLogin("yasirperfume", "yasir@313")

	service.AdminLogin("yasirperfume", "typo")

	if service.IsAdminAuthenticated() {
		t.Error("admin flag survived a failed login attempt")
	}
}

func TestAdminLogout(t *testing.T) {
	service := NewService()
	service.AdminLogin("yasirperfume", "yasir@313")

	service.AdminLogout()

	if service.IsAdminAuthenticated() {
		t.Error("admin flag still set after logout")
	}
}

func TestLoginAcceptsAnyNonEmptyPair(t *testing.T) {
	service := NewService()

	user, ok := service.Login("shopper@example.com", "whatever")
	if !ok {
		t.Fatal("Login rejected a non-empty pair")
	}
	if user.Name != "Test User" {
		t.Errorf("name = %q, want %q", user.Name, "Test User")
	}
	if user.Email != "shopper@example.com" {
		t.Errorf("email = %q, want the submitted email", user.Email)
	}

	current, ok := service.CurrentUser()
	if !ok || current != user {
		t.Errorf("CurrentUser = %+v ok=%v, want the logged-in user", current, ok)
	}
}

func TestLoginRejectsBlankFields(t *testing.T) {
	service := NewService()

	if _, ok := service.Login("", "pw"); ok {
		t.Error("Login accepted an empty email")
	}
	if _, ok := service.Login("a@b.c", "   "); ok {
		t.Error("Login accepted a whitespace password")
	}
	if _, ok := service.CurrentUser(); ok {
		t.Error("failed login still set a user")
	}
}

func TestSignupUsesSubmittedName(t *testing.T) {
	service := NewService()

	user, ok := service.Signup("Amina", "amina@example.com", "pw")
	if !ok {
		t.Fatal("Signup rejected non-empty fields")
	}
	if user.Name != "Amina" || user.Email != "amina@example.com" {
		t.Errorf("user = %+v, want submitted name and email", user)
	}

	if _, ok := service.Signup("", "x@y.z", "pw"); ok {
		t.Error("Signup accepted an empty name")
	}
}

func TestLogoutClearsCustomer(t *testing.T) {
	service := NewService()
	service.Login("shopper@example.com", "pw")

	service.Logout()

	if _, ok := service.CurrentUser(); ok {
		t.Error("user still present after logout")
	}
}

func TestCustomerAndAdminStateAreIndependent(t *testing.T) {
	service := NewService()
	service.AdminLogin("yasirperfume", "yasir@313")
	service.Login("shopper@example.com", "pw")

	service.Logout()
	if !service.IsAdminAuthenticated() {
		t.Error("customer logout cleared the admin flag")
	}

	service.AdminLogout()
	service.Login("shopper@example.com", "pw")
	if _, ok := service.CurrentUser(); !ok {
		t.Error("admin logout affected the customer record")
	}
}
