package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	log.Printf("[database] dynamodb client ready region=%s endpoint=%q", cfg.Region, os.Getenv("DYNAMODB_ENDPOINT"))
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// Tables holds the DynamoDB table names used by the repositories.
//
// Index requirements:
//   - client_id-index on quotes, work_orders and payments
//   - quote_id-index on work_orders
//   - work_order_id-index on checklists and payments
type Tables struct {
	Clients            string
	Quotes             string
	WorkOrders         string
	Equipments         string
	Checklists         string
	ChecklistTemplates string
	Payments           string
	Guards             string
}

func TablesFromEnv() Tables {
	return Tables{
		Clients:            getenvDefault("CLIENTS_TABLE", "clients"),
		Quotes:             getenvDefault("QUOTES_TABLE", "quotes"),
		WorkOrders:         getenvDefault("WORK_ORDERS_TABLE", "work_orders"),
		Equipments:         getenvDefault("EQUIPMENTS_TABLE", "equipments"),
		Checklists:         getenvDefault("CHECKLISTS_TABLE", "checklists"),
		ChecklistTemplates: getenvDefault("CHECKLIST_TEMPLATES_TABLE", "checklist_templates"),
		Payments:           getenvDefault("PAYMENTS_TABLE", "payments"),
		Guards:             getenvDefault("SERVICE_FLOW_GUARDS_TABLE", "service_flow_guards"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
