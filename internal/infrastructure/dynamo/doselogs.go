package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/medicare-companion/adherence-api/internal/domain"
)

// DoseLogRepo provides typed DynamoDB operations for the dose-log table.
type DoseLogRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewDoseLogRepo(client *dynamodb.Client, tableName string) *DoseLogRepo {
	return &DoseLogRepo{client: client, tableName: tableName}
}

// Find looks up the single log for (scheduleID, date). A missing row is the
// normal "dose not taken" outcome and comes back as domain.ErrNotFound;
// callers must keep it distinct from a real query failure.
func (r *DoseLogRepo) Find(ctx context.Context, scheduleID, date string) (*domain.DoseLog, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("schedule_id", scheduleID, "date", date),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("dose log for schedule %s on %s: %w", scheduleID, date, domain.ErrNotFound)
	}
	var l domain.DoseLog
	if err := attributevalue.UnmarshalMap(out.Item, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
