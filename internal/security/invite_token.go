package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// InviteTokenBytes is the entropy of an invitation token.
const InviteTokenBytes = 32

// NewInviteToken returns a random URL-safe invitation token and the hash to persist.
// The raw token is returned to the inviter once and never stored.
func NewInviteToken() (token, hash string, err error) {
	b := make([]byte, InviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	token = base64.RawURLEncoding.EncodeToString(b)
	return token, HashInviteToken(token), nil
}

// HashInviteToken returns the hex SHA-256 of token. Lookups go through this hash.
func HashInviteToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// InviteTokenMatches compares token against a stored hash in constant time.
func InviteTokenMatches(token, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashInviteToken(token)), []byte(storedHash)) == 1
}
