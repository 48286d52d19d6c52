package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenFingerprint(t *testing.T) {
	assert.Empty(t, AccessToken("").Fingerprint())

	fp := AccessToken("ACCESS_TOKEN").Fingerprint()
	assert.Len(t, fp, 12)
	assert.Equal(t, fp, AccessToken("ACCESS_TOKEN").Fingerprint())
	assert.NotEqual(t, fp, AccessToken("OTHER").Fingerprint())
	assert.NotContains(t, fp, "ACCESS")
}

func TestFieldsWithCopies(t *testing.T) {
	orig := Fields{"score": "", "description": ""}
	next := orig.With("score", "5")

	assert.Equal(t, "", orig.Get("score"))
	assert.Equal(t, "5", next.Get("score"))
	assert.Equal(t, "", next.Get("description"))
	assert.Equal(t, "", Fields(nil).Get("missing"))
}
