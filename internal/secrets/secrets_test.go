package secrets

import (
	"errors"
	"testing"
)

func TestEncryptor(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	encryptor, err := NewEncryptor(key)
	if err != nil {
		t.Fatalf("NewEncryptor failed: %v", err)
	}

	t.Run("round trip recovers the plaintext", func(t *testing.T) {
		token, err := encryptor.Encrypt("my-api-key-12345")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if token == "my-api-key-12345" {
			t.Error("Token should not equal the plaintext")
		}

		plaintext, err := encryptor.Decrypt(token)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if plaintext != "my-api-key-12345" {
			t.Errorf("Expected round trip to return plaintext, got %q", plaintext)
		}
	})

	t.Run("wrong key cannot decrypt", func(t *testing.T) {
		token, err := encryptor.Encrypt("secret-value")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		otherKey, err := GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey failed: %v", err)
		}
		other, err := NewEncryptor(otherKey)
		if err != nil {
			t.Fatalf("NewEncryptor failed: %v", err)
		}

		_, err = other.Decrypt(token)
		if !errors.Is(err, ErrDecryptFailed) {
			t.Errorf("Expected ErrDecryptFailed, got %v", err)
		}
	})

	t.Run("garbage token fails to decrypt", func(t *testing.T) {
		_, err := encryptor.Decrypt("not-a-fernet-token")
		if !errors.Is(err, ErrDecryptFailed) {
			t.Errorf("Expected ErrDecryptFailed, got %v", err)
		}
	})
}

func TestNewEncryptor_InvalidKey(t *testing.T) {
	if _, err := NewEncryptor("too-short"); err == nil {
		t.Error("Expected error for invalid key, got nil")
	}
}
