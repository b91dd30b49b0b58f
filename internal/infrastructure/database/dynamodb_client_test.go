package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "ap-south-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Region != "ap-south-1" {
		t.Fatalf("expected region ap-south-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected creds err: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
		t.Fatalf("expected local static credentials, got %+v", creds)
	}
}

func TestLocalEndpoint(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "")
	if LocalEndpoint() {
		t.Fatalf("expected no endpoint")
	}
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	if !LocalEndpoint() {
		t.Fatalf("expected endpoint")
	}
}
