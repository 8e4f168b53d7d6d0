package quiz

import "golang.org/x/crypto/bcrypt"

// Verifier checks a supplied password against the stored credential.
type Verifier interface {
	Verify(stored, supplied string) bool
}

// PlaintextVerifier is the default: byte-equal comparison against the
// stored value. No normalization, no lockout.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool { return stored == supplied }

// BcryptVerifier treats the stored credential as a bcrypt hash. Drop-in
// replacement once user records carry hashes instead of plaintext.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// HashPassword produces a stored credential for BcryptVerifier.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), 12)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
