package service

import (
	"context"
	"errors"

	"github.com/rkaranam/Savings-Planner-Backend/internal/apperrors"
	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"github.com/rkaranam/Savings-Planner-Backend/internal/secrets"
)

// apiKeySettingKey is where the exchange-rate provider API key lives in the
// provider_setting table, fernet-encrypted.
const apiKeySettingKey = "exchange_rate_api_key"

// CredentialService stores and retrieves the exchange-rate provider API key.
// Keys are encrypted at rest; a database copy alone is not enough to recover
// the credential.
type CredentialService struct {
	settingRepo *repository.SettingRepository
	encryptor   *secrets.Encryptor
}

// NewCredentialService creates a new CredentialService with the provided dependencies.
func NewCredentialService(settingRepo *repository.SettingRepository, encryptor *secrets.Encryptor) *CredentialService {
	return &CredentialService{
		settingRepo: settingRepo,
		encryptor:   encryptor,
	}
}

// StoreAPIKey encrypts and stores the provider API key, replacing any prior key.
func (s *CredentialService) StoreAPIKey(ctx context.Context, apiKey string) error {
	encrypted, err := s.encryptor.Encrypt(apiKey)
	if err != nil {
		return err
	}
	return s.settingRepo.UpsertSetting(ctx, apiKeySettingKey, encrypted)
}

// LoadAPIKey retrieves and decrypts the stored provider API key.
// Returns an empty string (no error) when no key has been stored yet.
func (s *CredentialService) LoadAPIKey() (string, error) {
	encrypted, err := s.settingRepo.GetSetting(apiKeySettingKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return s.encryptor.Decrypt(encrypted)
}
