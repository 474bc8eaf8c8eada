package repository

import (
	"context"
	"errors"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCategoryRelationsTableName = "category_relations"

type categoryRelationItem struct {
	ID               string   `dynamodbav:"id"`
	SourceCategories []string `dynamodbav:"source_category"`
	RelationType     string   `dynamodbav:"relation_type"`
	TargetCategory   string   `dynamodbav:"target_category,omitempty"`
	ProductID        string   `dynamodbav:"product_id,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// CategoryRelationDynamoRepository persists category relation rules.
//
// Table requirements:
//   - PK: id (string)

type CategoryRelationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICategoryRelationRepository = (*CategoryRelationDynamoRepository)(nil)

func NewCategoryRelationDynamoRepository(ddb *dynamodb.Client, tableName string) *CategoryRelationDynamoRepository {
	if tableName == "" {
		tableName = defaultCategoryRelationsTableName
	}
	return &CategoryRelationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CategoryRelationDynamoRepository) Create(ctx context.Context, rel entities.CategoryRelation) (entities.CategoryRelation, error) {
	return r.put(ctx, rel, "attribute_not_exists(#id)")
}

func (r *CategoryRelationDynamoRepository) Update(ctx context.Context, rel entities.CategoryRelation) (entities.CategoryRelation, error) {
	out, err := r.put(ctx, rel, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CategoryRelation{}, nil
		}
		return entities.CategoryRelation{}, err
	}
	return out, nil
}

func (r *CategoryRelationDynamoRepository) put(ctx context.Context, rel entities.CategoryRelation, condition string) (entities.CategoryRelation, error) {
	av, err := attributevalue.MarshalMap(toCategoryRelationItem(rel))
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	return rel, nil
}

func (r *CategoryRelationDynamoRepository) GetByID(ctx context.Context, id string) (entities.CategoryRelation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	if len(out.Item) == 0 {
		return entities.CategoryRelation{}, nil
	}

	var it categoryRelationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CategoryRelation{}, err
	}
	return fromCategoryRelationItem(it), nil
}

// List returns every rule in registration order.
func (r *CategoryRelationDynamoRepository) List(ctx context.Context) ([]entities.CategoryRelation, error) {
	var rules []entities.CategoryRelation
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []categoryRelationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rules = append(rules, fromCategoryRelationItem(it))
		}
	}
	sortRelations(rules)
	return rules, nil
}

func (r *CategoryRelationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toCategoryRelationItem(rel entities.CategoryRelation) categoryRelationItem {
	return categoryRelationItem{
		ID:               rel.ID,
		SourceCategories: rel.SourceCategories,
		RelationType:     string(rel.RelationType),
		TargetCategory:   rel.TargetCategory,
		ProductID:        rel.ProductID,
		CreatedAt:        formatTime(rel.CreatedAt),
	}
}

func fromCategoryRelationItem(it categoryRelationItem) entities.CategoryRelation {
	return entities.CategoryRelation{
		ID:               it.ID,
		SourceCategories: it.SourceCategories,
		RelationType:     entities.RelationType(it.RelationType),
		TargetCategory:   it.TargetCategory,
		ProductID:        it.ProductID,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
