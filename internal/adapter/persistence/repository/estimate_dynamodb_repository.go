package repository

import (
	"context"
	"errors"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	CustomerName  string  `dynamodbav:"customer_name"`
	Email         string  `dynamodbav:"email"`
	PhoneNumber   string  `dynamodbav:"phone_number"`
	Postcode      string  `dynamodbav:"postcode"`
	Status        string  `dynamodbav:"status"`
	DefaultMarkup float64 `dynamodbav:"default_markup"`
	Notes         string  `dynamodbav:"notes"`
	MinTotal      float64 `dynamodbav:"total_min"`
	MaxTotal      float64 `dynamodbav:"total_max"`
	EstimateData  string  `dynamodbav:"estimate_data"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Rooms live in estimate_data as one JSON document; the other attributes are
// the flattened summary used by listings. Every write replaces both together.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	if tableName == "" {
		tableName = defaultEstimatesTableName
	}
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	return r.put(ctx, e, "attribute_not_exists(#id)")
}

// Replace overwrites an existing estimate. A missing estimate yields a zero
// Estimate and no error.
func (r *EstimateDynamoRepository) Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	out, err := r.put(ctx, e, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return out, nil
}

func (r *EstimateDynamoRepository) put(ctx context.Context, e entities.Estimate, condition string) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus, updatedAt time.Time) (entities.Estimate, error) {
	return r.update(ctx, id, updatedAt, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// List scans the table. Status is filtered server side; search and ordering
// are applied in memory.
func (r *EstimateDynamoRepository) List(ctx context.Context, filter entities.EstimateListFilter) ([]entities.Estimate, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if filter.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
		}
	}

	var estimates []entities.Estimate
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}
	}
	return applyListFilter(estimates, filter), nil
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	at time.Time,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := formatTime(at)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	data, err := encodeEstimateData(e.Rooms)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:            e.ID,
		Name:          e.Name,
		CustomerName:  e.Customer.Name,
		Email:         e.Customer.Email,
		PhoneNumber:   e.Customer.Phone,
		Postcode:      e.Customer.Postcode,
		Status:        string(e.Status),
		DefaultMarkup: e.DefaultMarkup,
		Notes:         e.Notes,
		MinTotal:      e.MinTotal,
		MaxTotal:      e.MaxTotal,
		EstimateData:  data,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}, nil
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:   it.ID,
		Name: it.Name,
		Customer: entities.Customer{
			Name:     it.CustomerName,
			Email:    it.Email,
			Phone:    it.PhoneNumber,
			Postcode: it.Postcode,
		},
		Status:        entities.EstimateStatus(it.Status),
		DefaultMarkup: it.DefaultMarkup,
		Notes:         it.Notes,
		Rooms:         decodeEstimateData(it.ID, it.EstimateData),
		MinTotal:      it.MinTotal,
		MaxTotal:      it.MaxTotal,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
