package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSealOpenRoundTrip(t *testing.T) {
	key := DeriveSealKey("a seal secret")

	sealed, err := Seal([]byte(`{"state":"basic_info"}`), &key)
	assert.NoError(t, err)
	assert.NotContains(t, string(sealed), "basic_info")

	opened, err := Open(sealed, &key)
	assert.NoError(t, err)
	assert.Equal(t, `{"state":"basic_info"}`, string(opened))
}

func TestOpenRejectsWrongKey(t *testing.T) {
	key := DeriveSealKey("a seal secret")
	otherKey := DeriveSealKey("a different secret")

	sealed, err := Seal([]byte("payload"), &key)
	assert.NoError(t, err)

	_, err = Open(sealed, &otherKey)
	assert.Error(t, err)
}

func TestOpenRejectsGarbage(t *testing.T) {
	key := DeriveSealKey("a seal secret")

	_, err := Open([]byte("short"), &key)
	assert.Error(t, err)
}

func TestWizardTokenRoundTrip(t *testing.T) {
	token, err := GenerateWizardToken("draft-1", "jwt-secret", 1)
	assert.NoError(t, err)

	draftID, err := ParseWizardToken(token, "jwt-secret")
	assert.NoError(t, err)
	assert.Equal(t, "draft-1", draftID)
}

func TestWizardTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateWizardToken("draft-1", "jwt-secret", 1)
	assert.NoError(t, err)

	_, err = ParseWizardToken(token, "another-secret")
	assert.Error(t, err)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ada@example.com"))
	assert.Equal(t, "***", MaskEmail("a@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}
