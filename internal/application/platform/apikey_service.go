package platform

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/quickvendor/backend/internal/domain/platform"
	"github.com/quickvendor/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// keyPrefix marks generated secrets so they are recognizable in client
// configuration without revealing anything
const keyPrefix = "qv_"

// keySecretBytes is the entropy of a generated key secret
const keySecretBytes = 32

// APIKeyService provisions and lists integration credentials. Secrets are
// generated server-side and only their bcrypt hash is persisted.
type APIKeyService struct {
	keyRepo platform.APIKeyRepository
}

// NewAPIKeyService creates a new APIKeyService
func NewAPIKeyService(keyRepo platform.APIKeyRepository) *APIKeyService {
	return &APIKeyService{keyRepo: keyRepo}
}

// Create generates a fresh secret, stores its hash and returns the raw
// secret. This response is the only time the secret is visible.
func (s *APIKeyService) Create(ctx context.Context, req CreateAPIKeyRequest) (*CreatedAPIKeyResponse, error) {
	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("generating API key secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing API key secret: %w", err)
	}

	key, err := platform.NewAPIKey(req.Name, string(hash), platform.ServiceType(req.Service))
	if err != nil {
		return nil, err
	}

	if err := s.keyRepo.Save(ctx, key); err != nil {
		return nil, err
	}

	return &CreatedAPIKeyResponse{
		APIKeyResponse: ToAPIKeyResponse(key),
		Key:            secret,
	}, nil
}

// ListActive lists active keys without their hashes
func (s *APIKeyService) ListActive(ctx context.Context) ([]APIKeyResponse, error) {
	keys, err := s.keyRepo.FindAllActive(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToAPIKeyResponses(keys), nil
}

func generateSecret() (string, error) {
	buf := make([]byte, keySecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return keyPrefix + hex.EncodeToString(buf), nil
}
