package database

import (
	"context"
	"testing"

	"takaful_quote/internal/infrastructure/config"
)

func TestNewDynamoDBConfig_UsesStaticCredentials(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
		Region:           "me-south-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local-secret",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "me-south-1" {
		t.Fatalf("expected region me-south-1, got %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local-secret" {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}
