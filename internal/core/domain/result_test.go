package domain

import "testing"

func TestOK(t *testing.T) {
	result := OK()
	if !result.Succeeded {
		t.Error("expected OK() to succeed")
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %d", len(result.Errors))
	}
}

func TestFail(t *testing.T) {
	result := Fail(
		IdentityError{Code: "PasswordTooShort", Description: "too short"},
		IdentityError{Code: "PasswordRequiresDigit", Description: "needs a digit"},
	)

	if result.Succeeded {
		t.Error("expected Fail() not to succeed")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(result.Errors))
	}
	if result.Errors[0].Code != "PasswordTooShort" {
		t.Errorf("expected errors in order, got %s first", result.Errors[0].Code)
	}
}

func TestCombine(t *testing.T) {
	errA := IdentityError{Code: "A"}
	errB := IdentityError{Code: "B"}

	tests := []struct {
		name          string
		a, b          IdentityResult
		wantSucceeded bool
		wantCodes     []string
	}{
		{"both ok", OK(), OK(), true, nil},
		{"first failed", Fail(errA), OK(), false, []string{"A"}},
		{"second failed", OK(), Fail(errB), false, []string{"B"}},
		{"both failed keeps order", Fail(errA), Fail(errB), false, []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Combine(tt.b)
			if got.Succeeded != tt.wantSucceeded {
				t.Errorf("expected Succeeded = %v", tt.wantSucceeded)
			}
			if len(got.Errors) != len(tt.wantCodes) {
				t.Fatalf("expected %d errors, got %d", len(tt.wantCodes), len(got.Errors))
			}
			for i, code := range tt.wantCodes {
				if got.Errors[i].Code != code {
					t.Errorf("error %d: expected code %s, got %s", i, code, got.Errors[i].Code)
				}
			}
		})
	}
}

func TestResultString(t *testing.T) {
	if got := OK().String(); got != "succeeded" {
		t.Errorf("expected %q, got %q", "succeeded", got)
	}

	failed := Fail(IdentityError{Code: "A"}, IdentityError{Code: "B"})
	if got := failed.String(); got != "failed: A, B" {
		t.Errorf("expected %q, got %q", "failed: A, B", got)
	}
}
