package util

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plainaddress", "user@", "@example.com", "user@example"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if ValidateUsername("ab") {
		t.Error("expected username shorter than 3 characters to be invalid")
	}
	if !ValidateUsername("abc") {
		t.Error("expected 3-character username to be valid")
	}
	long := make([]byte, 31)
	for i := range long {
		long[i] = 'a'
	}
	if ValidateUsername(string(long)) {
		t.Error("expected username longer than 30 characters to be invalid")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"short1!A", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSpecial123", false},
		{"Sh0rt!", false},
	}

	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
