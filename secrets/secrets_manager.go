package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/ledgerline/sfin/api"
)

// Manager stores claimed access credentials in AWS Secrets Manager so a
// setup token only ever has to be claimed once.
type Manager struct {
	client *secretsmanager.Client
}

func NewManager(ctx context.Context) (*Manager, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Manager{client: secretsmanager.NewFromConfig(cfg)}, nil
}

func NewManagerWithConfig(cfg aws.Config) *Manager {
	return &Manager{client: secretsmanager.NewFromConfig(cfg)}
}

// storedCredentials is the secret's JSON shape. Only the access URL is
// persisted; the rest re-derives from it on retrieval.
type storedCredentials struct {
	AccessURL string `json:"access_url"`
}

// StoreCredentials writes credentials under secretName, updating the
// secret if it already exists.
func (m *Manager) StoreCredentials(ctx context.Context, secretName string, credentials api.Credentials) error {
	payload, err := json.Marshal(storedCredentials{AccessURL: credentials.AccessURL})
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	input := &secretsmanager.CreateSecretInput{
		Name:         aws.String(secretName),
		SecretString: aws.String(string(payload)),
		Description:  aws.String("SimpleFIN access credentials for sfin"),
	}
	_, err = m.client.CreateSecret(ctx, input)
	if err != nil {
		updateInput := &secretsmanager.UpdateSecretInput{
			SecretId:     aws.String(secretName),
			SecretString: aws.String(string(payload)),
		}
		_, updateErr := m.client.UpdateSecret(ctx, updateInput)
		if updateErr != nil {
			return fmt.Errorf("failed to create or update secret: create error: %w, update error: %v", err, updateErr)
		}
	}
	return nil
}

// RetrieveCredentials reads the secret and re-parses the stored access
// URL into usable credentials.
func (m *Manager) RetrieveCredentials(ctx context.Context, secretName string) (api.Credentials, error) {
	result, err := m.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return api.Credentials{}, fmt.Errorf("failed to get secret value: %w", err)
	}
	if result.SecretString == nil {
		return api.Credentials{}, fmt.Errorf("secret string is nil")
	}

	var stored storedCredentials
	if err := json.Unmarshal([]byte(*result.SecretString), &stored); err != nil {
		return api.Credentials{}, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return api.ParseCredentials(stored.AccessURL)
}

// DeleteCredentials permanently removes the secret.
func (m *Manager) DeleteCredentials(ctx context.Context, secretName string) error {
	_, err := m.client.DeleteSecret(ctx, &secretsmanager.DeleteSecretInput{
		SecretId:                   aws.String(secretName),
		ForceDeleteWithoutRecovery: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}
	return nil
}

// ListSecrets lists secret names, optionally filtered by a name prefix.
func (m *Manager) ListSecrets(ctx context.Context, prefix string) ([]string, error) {
	input := &secretsmanager.ListSecretsInput{}
	if prefix != "" {
		input.Filters = []types.Filter{
			{
				Key:    types.FilterNameStringTypeName,
				Values: []string{prefix},
			},
		}
	}

	var names []string
	paginator := secretsmanager.NewListSecretsPaginator(m.client, input)
	for paginator.HasMorePages() {
		result, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets: %w", err)
		}
		for _, secret := range result.SecretList {
			if secret.Name != nil {
				if prefix == "" || strings.Contains(*secret.Name, prefix) {
					names = append(names, *secret.Name)
				}
			}
		}
	}
	return names, nil
}
