package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/medicare-companion/adherence-api/internal/domain"
)

// CaretakerRepo provides typed DynamoDB operations for the caretakers table.
type CaretakerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCaretakerRepo(client *dynamodb.Client, tableName string) *CaretakerRepo {
	return &CaretakerRepo{client: client, tableName: tableName}
}

func (r *CaretakerRepo) Get(ctx context.Context, userID string) (*domain.Caretaker, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("caretaker %s: %w", userID, domain.ErrNotFound)
	}
	var c domain.Caretaker
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
