package dynamo

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/medicare-companion/adherence-api/internal/domain"
)

// ScheduleRepo provides typed DynamoDB operations for the schedules table.
type ScheduleRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewScheduleRepo(client *dynamodb.Client, tableName string) *ScheduleRepo {
	return &ScheduleRepo{client: client, tableName: tableName}
}

// windowFilter builds the scan predicate for a (start, end] time-of-day
// window. Bounds are zero-padded HH:MM:SS strings, so lexicographic
// comparison is time comparison — except when the window wraps midnight
// (start sorts after end): the band is then the union of the late-evening
// and early-morning segments, and the predicate flips from AND to OR.
func windowFilter(start, end string) string {
	if start > end {
		return "schedule_time > :start OR schedule_time <= :end"
	}
	return "schedule_time > :start AND schedule_time <= :end"
}

// ListInWindow returns every schedule whose time-of-day is in (start, end],
// including windows that wrap midnight. Pagination is handled across scan
// pages; results come back ordered by time then id.
func (r *ScheduleRepo) ListInWindow(ctx context.Context, start, end string) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String(windowFilter(start, end)),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":start": &types.AttributeValueMemberS{Value: start},
				":end":   &types.AttributeValueMemberS{Value: end},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Schedule
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		schedules = append(schedules, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.Slice(schedules, func(i, j int) bool {
		if schedules[i].Time != schedules[j].Time {
			return schedules[i].Time < schedules[j].Time
		}
		return schedules[i].ScheduleID < schedules[j].ScheduleID
	})
	return schedules, nil
}
