package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"time"

	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/nacl/secretbox"
)

// GenerateWizardToken signs a short-lived token binding a browser session to
// its draft.
func GenerateWizardToken(draftID, secret string, expTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"draft_id": draftID,
		"exp":      time.Now().Add(time.Duration(expTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

func ParseWizardToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if draftID, ok := claims["draft_id"].(string); ok {
			return draftID, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(errors.New("draft_id claim missing"))
}

// DeriveSealKey turns the configured secret into the 32-byte secretbox key.
func DeriveSealKey(secret string) [32]byte {
	return sha256.Sum256([]byte(secret))
}

// Seal encrypts a payload with a random nonce prepended to the box. Drafts
// carry credentials and health data, so they never sit in Redis in the clear.
func Seal(payload []byte, key *[32]byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], payload, &nonce, key), nil
}

// Open reverses Seal. Callers treat any failure as "no usable draft".
func Open(sealed []byte, key *[32]byte) ([]byte, error) {
	if len(sealed) < 24 {
		return nil, errors.New("sealed payload too short")
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	payload, ok := secretbox.Open(nil, sealed[24:], &nonce, key)
	if !ok {
		return nil, errors.New("payload failed to open")
	}
	return payload, nil
}

// MaskEmail keeps the first character of the local part and the full domain.
func MaskEmail(email string) string {
	at := -1
	for i, r := range email {
		if r == '@' {
			at = i
			break
		}
	}
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
