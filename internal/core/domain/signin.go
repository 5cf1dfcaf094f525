package domain

// PasswordVerificationResult is the tri-state outcome of a password
// hash comparison. A successful verification may still require the
// hash to be recomputed under updated hashing parameters.
type PasswordVerificationResult string

const (
	// VerificationFailed indicates the password does not match or the
	// stored hash is unrecognizable.
	VerificationFailed PasswordVerificationResult = "failed"
	// VerificationSuccess indicates the password matches.
	VerificationSuccess PasswordVerificationResult = "success"
	// VerificationSuccessRehashNeeded indicates the password matches
	// but the hash was produced with outdated parameters and should be
	// recomputed.
	VerificationSuccessRehashNeeded PasswordVerificationResult = "success_rehash_needed"
)

// SignInResult is the mutually exclusive outcome of a sign-in attempt.
type SignInResult string

const (
	// SignInSucceeded indicates the credentials were accepted.
	SignInSucceeded SignInResult = "succeeded"
	// SignInFailed indicates the attempt failed for a reason other
	// than the credential itself, such as an unknown user name.
	SignInFailed SignInResult = "failed"
	// SignInInvalidCredential indicates the password did not match.
	SignInInvalidCredential SignInResult = "invalid_credential"
	// SignInLockedOut indicates the user is currently locked out.
	SignInLockedOut SignInResult = "locked_out"
	// SignInNotAllowed indicates a sign-in policy rejected the attempt.
	SignInNotAllowed SignInResult = "not_allowed"
)
