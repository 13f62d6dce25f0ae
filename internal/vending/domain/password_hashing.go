package domain

// PasswordHasher hashes and verifies account credentials. Verification is
// needed wherever an operation re-confirms the caller's password, not just at
// login.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
