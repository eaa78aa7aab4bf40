package model

import "testing"

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		role     string
		required []string
		expected bool
	}{
		{RoleAdmin, []string{RoleAdmin}, true},
		{RoleAdmin, []string{RoleAdmin, RoleStaff}, true},
		{RoleStaff, []string{RoleAdmin}, false},
		{RoleStaff, []string{RoleAdmin, RoleStaff}, true},
		{RoleStaff, []string{RoleStaff}, true},
		// Empty set means any valid role.
		{RoleAdmin, nil, true},
		{RoleStaff, nil, true},
		// Unknown roles fail-closed.
		{"unknown", []string{RoleStaff}, false},
		{"unknown", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		got := RoleAllowed(tt.role, tt.required...)
		if got != tt.expected {
			t.Errorf("RoleAllowed(%q, %v) = %v, want %v", tt.role, tt.required, got, tt.expected)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}
