package bootstrap

import (
	"context"
	"errors"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/pennywise-app/pennywise-backend/internal/config"
)

func InitSecretManager(ctx context.Context) (*secretmanager.Client, error) {
	return secretmanager.NewClient(ctx)
}

// ResolveAPIKey returns the web API key for password sign-in. Secret
// Manager wins when a secret name is configured; the APIKEY env var is
// the local-development fallback.
func ResolveAPIKey(ctx context.Context, client *secretmanager.Client, cfg *config.Config) (string, error) {
	if cfg.APIKeySecretName == "" {
		if cfg.APIKey == "" {
			return "", errors.New("neither APIKEYSECRETNAME nor APIKEY is set")
		}
		return cfg.APIKey, nil
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", cfg.ProjectID, cfg.APIKeySecretName)
	res, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to access api key secret: %w", err)
	}
	return string(res.Payload.Data), nil
}
