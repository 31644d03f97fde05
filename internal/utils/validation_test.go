package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
)

func validEmployee() *domain.Employee {
	return &domain.Employee{
		EmployeeID:  "E001",
		Name:        "John Doe",
		Department:  "Engineering",
		Salary:      50000,
		JoiningDate: domain.NewDate(2024, time.January, 15),
		Skills:      []string{"Python", "SQL"},
	}
}

func TestValidateEmployee_Valid(t *testing.T) {
	require.NoError(t, ValidateEmployee(validEmployee()))
}

func TestValidateEmployeeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"ok", "E001", false},
		{"ok long", "EMP20240001", false},
		{"too short", "E1", true},
		{"too long", "E123456789012345678901", true},
		{"hyphen not allowed", "E-001", true},
		{"underscore not allowed", "E_001", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmployeeID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ok", "John Doe", false},
		{"single char", "J", true},
		{"digits", "John 2nd", true},
		{"only spaces", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDepartment(t *testing.T) {
	assert.NoError(t, ValidateDepartment("Engineering"))
	assert.NoError(t, ValidateDepartment("Research & Development"))
	assert.Error(t, ValidateDepartment("E"))
	assert.Error(t, ValidateDepartment("Dept.42"))
}

func TestValidateSalary(t *testing.T) {
	assert.NoError(t, ValidateSalary(50000))
	assert.Error(t, ValidateSalary(0))
	assert.Error(t, ValidateSalary(-1))
	assert.Error(t, ValidateSalary(1_000_001))
}

func TestValidateJoiningDate(t *testing.T) {
	assert.NoError(t, ValidateJoiningDate(domain.NewDate(2024, time.January, 15)))

	future := domain.Date{Time: time.Now().AddDate(0, 0, 1)}
	assert.Error(t, ValidateJoiningDate(future))

	assert.Error(t, ValidateJoiningDate(domain.NewDate(1999, time.December, 31)))
}

func TestValidateSkills(t *testing.T) {
	assert.NoError(t, ValidateSkills([]string{"Python", "C++", "C#", "CI/CD"}))
	assert.Error(t, ValidateSkills(nil))
	assert.Error(t, ValidateSkills([]string{}))
	assert.Error(t, ValidateSkills([]string{"Python", "  "}))
	assert.Error(t, ValidateSkills([]string{"技能"}))

	tooMany := make([]string, 21)
	for i := range tooMany {
		tooMany[i] = "Go"
	}
	assert.Error(t, ValidateSkills(tooMany))
}
