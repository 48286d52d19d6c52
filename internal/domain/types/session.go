package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// AccessTokenKey is the storage key used to persist the access token.
const AccessTokenKey = "accessToken"

// AccessToken is the opaque credential issued by the login service.
// The zero value means logged out.
type AccessToken string

// String returns the string form of the token.
func (t AccessToken) String() string { return string(t) }

// Empty reports whether no token is held.
func (t AccessToken) Empty() bool { return t == "" }

// Fingerprint returns a short hex digest of the token for logs. It hashes
// with SHA-256 and keeps the first 6 bytes.
func (t AccessToken) Fingerprint() string {
	if t.Empty() {
		return ""
	}
	sum := sha256.Sum256([]byte(t))
	return hex.EncodeToString(sum[:6])
}

// Credentials are posted to the login service.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ReviewSubmission is everything needed to post a review.
type ReviewSubmission struct {
	AccessToken  AccessToken `json:"-"`
	RestaurantID int64       `json:"-"`
	Score        int         `json:"score"`
	Description  string      `json:"description"`
}
