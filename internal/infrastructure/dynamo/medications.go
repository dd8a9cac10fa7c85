package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/medicare-companion/adherence-api/internal/domain"
)

// MedicationRepo provides typed DynamoDB operations for the medications table.
type MedicationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewMedicationRepo(client *dynamodb.Client, tableName string) *MedicationRepo {
	return &MedicationRepo{client: client, tableName: tableName}
}

func (r *MedicationRepo) Get(ctx context.Context, medicationID string) (*domain.Medication, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("medication_id", medicationID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("medication %s: %w", medicationID, domain.ErrNotFound)
	}
	var m domain.Medication
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
