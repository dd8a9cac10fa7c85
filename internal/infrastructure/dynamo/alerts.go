package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/medicare-companion/adherence-api/internal/domain"
)

// AlertAuditRepo provides typed DynamoDB operations for the alert-audit table.
type AlertAuditRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAlertAuditRepo(client *dynamodb.Client, tableName string) *AlertAuditRepo {
	return &AlertAuditRepo{client: client, tableName: tableName}
}

func (r *AlertAuditRepo) Put(ctx context.Context, a *domain.AlertAudit) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal alert audit: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
