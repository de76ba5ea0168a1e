package database

import (
	"context"
	"log"

	"repairflow/internal/infrastructure/awsconfig"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from environment configuration.
// See awsconfig.NewFromEnv for the supported variables.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := awsconfig.NewFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}
