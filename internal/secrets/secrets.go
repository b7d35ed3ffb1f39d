// Package secrets encrypts provider credentials before they are stored.
// The exchange-rate API key sits in the provider_setting table fernet-encrypted;
// only a process holding the configured secret key can read it back.
package secrets

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrDecryptFailed indicates that a stored token could not be verified and
// decrypted with the configured key.
var ErrDecryptFailed = errors.New("failed to decrypt token")

// Encryptor encrypts and decrypts short secret strings with a fernet key.
type Encryptor struct {
	key *fernet.Key
}

// NewEncryptor creates an Encryptor from a base64-encoded fernet key.
func NewEncryptor(encodedKey string) (*Encryptor, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret key: %w", err)
	}
	return &Encryptor{key: key}, nil
}

// GenerateKey creates a new random fernet key in base64 encoding.
// Intended for one-time setup; the result goes into EXCHANGE_RATE_SECRET_KEY.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}
	return key.Encode(), nil
}

// Encrypt encrypts and signs the plaintext, returning a fernet token.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), e.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt token: %w", err)
	}
	return string(token), nil
}

// Decrypt verifies and decrypts a fernet token produced by Encrypt.
// Tokens do not expire; a zero TTL disables the age check.
func (e *Encryptor) Decrypt(token string) (string, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{e.key})
	if plaintext == nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}
