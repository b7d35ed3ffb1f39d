package service_test

import (
	"context"
	"testing"

	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"github.com/rkaranam/Savings-Planner-Backend/internal/secrets"
	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
	"github.com/rkaranam/Savings-Planner-Backend/internal/testutil"
)

func newTestCredentialService(t *testing.T) (*service.CredentialService, *repository.SettingRepository) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	settingRepo := repository.NewSettingRepository(db)

	key, err := secrets.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	encryptor, err := secrets.NewEncryptor(key)
	if err != nil {
		t.Fatalf("NewEncryptor failed: %v", err)
	}

	return service.NewCredentialService(settingRepo, encryptor), settingRepo
}

func TestCredentialService(t *testing.T) {
	t.Run("stored key round trips", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)

		if err := svc.StoreAPIKey(context.Background(), "live-api-key"); err != nil {
			t.Fatalf("StoreAPIKey failed: %v", err)
		}
		loaded, err := svc.LoadAPIKey()
		if err != nil {
			t.Fatalf("LoadAPIKey failed: %v", err)
		}
		if loaded != "live-api-key" {
			t.Errorf("Expected 'live-api-key', got %q", loaded)
		}
	})

	t.Run("key is not stored in the clear", func(t *testing.T) {
		svc, settingRepo := newTestCredentialService(t)

		if err := svc.StoreAPIKey(context.Background(), "live-api-key"); err != nil {
			t.Fatalf("StoreAPIKey failed: %v", err)
		}
		stored, err := settingRepo.GetSetting("exchange_rate_api_key")
		if err != nil {
			t.Fatalf("GetSetting failed: %v", err)
		}
		if stored == "live-api-key" {
			t.Error("API key stored as plaintext")
		}
	})

	t.Run("no stored key yields empty string", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)

		loaded, err := svc.LoadAPIKey()
		if err != nil {
			t.Fatalf("LoadAPIKey failed: %v", err)
		}
		if loaded != "" {
			t.Errorf("Expected empty string, got %q", loaded)
		}
	})

	t.Run("storing again replaces the key", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)
		ctx := context.Background()

		if err := svc.StoreAPIKey(ctx, "old-key"); err != nil {
			t.Fatalf("StoreAPIKey failed: %v", err)
		}
		if err := svc.StoreAPIKey(ctx, "new-key"); err != nil {
			t.Fatalf("Second StoreAPIKey failed: %v", err)
		}
		loaded, err := svc.LoadAPIKey()
		if err != nil {
			t.Fatalf("LoadAPIKey failed: %v", err)
		}
		if loaded != "new-key" {
			t.Errorf("Expected 'new-key', got %q", loaded)
		}
	})
}
