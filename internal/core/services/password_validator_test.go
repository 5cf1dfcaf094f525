package services

import (
	"testing"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

func TestPasswordValidator_Validate(t *testing.T) {
	v := NewPasswordValidator(domain.DefaultPasswordOptions(), NewErrorDescriber())

	tests := []struct {
		name      string
		password  string
		wantCodes []string
	}{
		{
			name:     "valid password",
			password: "Abcde1!",
		},
		{
			name:      "too short but all classes present",
			password:  "Ab1!",
			wantCodes: []string{CodePasswordTooShort},
		},
		{
			name:      "missing digit",
			password:  "Abcdefg!",
			wantCodes: []string{CodePasswordRequiresDigit},
		},
		{
			name:      "missing lowercase",
			password:  "ABCDE1!",
			wantCodes: []string{CodePasswordRequiresLower},
		},
		{
			name:      "missing uppercase",
			password:  "abcde1!",
			wantCodes: []string{CodePasswordRequiresUpper},
		},
		{
			name:      "missing non-alphanumeric",
			password:  "Abcdef1",
			wantCodes: []string{CodePasswordRequiresNonAlphanumeric},
		},
		{
			name:     "all violations reported at once",
			password: "abc",
			wantCodes: []string{
				CodePasswordTooShort,
				CodePasswordRequiresDigit,
				CodePasswordRequiresUpper,
				CodePasswordRequiresNonAlphanumeric,
			},
		},
		{
			name:     "empty password reports everything",
			password: "",
			wantCodes: []string{
				CodePasswordTooShort,
				CodePasswordRequiresDigit,
				CodePasswordRequiresLower,
				CodePasswordRequiresUpper,
				CodePasswordRequiresNonAlphanumeric,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.password)

			if len(tt.wantCodes) == 0 {
				if !result.Succeeded {
					t.Fatalf("expected success, got %s", result)
				}
				return
			}
			if result.Succeeded {
				t.Fatal("expected failure")
			}
			if len(result.Errors) != len(tt.wantCodes) {
				t.Fatalf("expected %d errors, got %d (%s)", len(tt.wantCodes), len(result.Errors), result)
			}
			for i, code := range tt.wantCodes {
				if result.Errors[i].Code != code {
					t.Errorf("error %d: expected code %s, got %s", i, code, result.Errors[i].Code)
				}
			}
		})
	}
}

func TestPasswordValidator_UnicodeLetters(t *testing.T) {
	// Letters outside ASCII count as letters, not as the
	// non-alphanumeric class.
	opts := domain.PasswordOptions{RequiredLength: 1, RequireNonAlphanumeric: true}
	v := NewPasswordValidator(opts, NewErrorDescriber())

	result := v.Validate("héllo")
	if result.Succeeded {
		t.Fatal("expected failure: accented letters are not symbols")
	}
	if result.Errors[0].Code != CodePasswordRequiresNonAlphanumeric {
		t.Errorf("expected %s, got %s", CodePasswordRequiresNonAlphanumeric, result.Errors[0].Code)
	}
}

func TestPasswordValidator_RelaxedPolicy(t *testing.T) {
	opts := domain.PasswordOptions{RequiredLength: 4}
	v := NewPasswordValidator(opts, NewErrorDescriber())

	if result := v.Validate("aaaa"); !result.Succeeded {
		t.Errorf("expected success with all class requirements off, got %s", result)
	}
}

func TestPasswordValidator_RuneLength(t *testing.T) {
	// Length is counted in runes, not bytes.
	opts := domain.PasswordOptions{RequiredLength: 6}
	v := NewPasswordValidator(opts, NewErrorDescriber())

	if result := v.Validate("éééééé"); !result.Succeeded {
		t.Errorf("expected 6 runes to satisfy length 6, got %s", result)
	}
	if result := v.Validate("ééééé"); result.Succeeded {
		t.Error("expected 5 runes to fail length 6")
	}
}
