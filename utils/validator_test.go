package utils

import (
	"strings"
	"testing"
)

type roleRequest struct {
	RoleName string `validate:"required,workspace_role"`
}

type statusRequest struct {
	Status string `validate:"required,join_status"`
}

func TestValidateStructWorkspaceRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		wantErr bool
	}{
		{"owner ok", "OWNER", false},
		{"admin ok", "ADMIN", false},
		{"member ok", "MEMBER", false},
		{"lowercase rejected", "owner", true},
		{"unknown rejected", "SUPERUSER", true},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(roleRequest{RoleName: tt.role})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct(role=%q) error = %v, wantErr %v", tt.role, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStructJoinStatus(t *testing.T) {
	if err := ValidateStruct(statusRequest{Status: "APPROVED"}); err != nil {
		t.Errorf("ValidateStruct(APPROVED) error = %v", err)
	}

	err := ValidateStruct(statusRequest{Status: "MAYBE"})
	if err == nil {
		t.Fatal("ValidateStruct(MAYBE) accepted an unknown status")
	}
	if !strings.Contains(err.Error(), "PENDING, APPROVED, REJECTED") {
		t.Errorf("error message %q does not list the valid statuses", err.Error())
	}
}
