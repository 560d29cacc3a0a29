package repository

import (
	"context"
	"encoding/json"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccessoriesTableName = "accessories"

type accessoryItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Unit      string `dynamodbav:"unit,omitempty"`
	Colors    string `dynamodbav:"colors,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AccessoryDynamoRepository persists Accessory entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AccessoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccessoryRepository = (*AccessoryDynamoRepository)(nil)

func NewAccessoryDynamoRepository(ddb *dynamodb.Client) *AccessoryDynamoRepository {
	return &AccessoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCESSORIES_TABLE", defaultAccessoriesTableName),
	}
}

func (r *AccessoryDynamoRepository) Create(ctx context.Context, a entities.Accessory) (entities.Accessory, error) {
	it, err := toAccessoryItem(a)
	if err != nil {
		return entities.Accessory{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Accessory{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Accessory{}, err
	}
	return a, nil
}

func (r *AccessoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Accessory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Accessory{}, err
	}
	if len(out.Item) == 0 {
		return entities.Accessory{}, nil
	}

	var it accessoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Accessory{}, err
	}
	return fromAccessoryItem(it)
}

func (r *AccessoryDynamoRepository) List(ctx context.Context) ([]entities.Accessory, error) {
	accessories := make([]entities.Accessory, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it accessoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			a, err := fromAccessoryItem(it)
			if err != nil {
				return nil, err
			}
			accessories = append(accessories, a)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return accessories, nil
}

func (r *AccessoryDynamoRepository) Update(ctx context.Context, a entities.Accessory) (entities.Accessory, error) {
	it, err := toAccessoryItem(a)
	if err != nil {
		return entities.Accessory{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Accessory{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Accessory{}, err
	}
	return a, nil
}

func (r *AccessoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAccessoryItem(a entities.Accessory) (accessoryItem, error) {
	it := accessoryItem{
		ID:        a.ID,
		Name:      a.Name,
		Unit:      a.Unit,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(a.Colors) > 0 {
		raw, err := json.Marshal(a.Colors)
		if err != nil {
			return accessoryItem{}, err
		}
		it.Colors = string(raw)
	}
	return it, nil
}

func fromAccessoryItem(it accessoryItem) (entities.Accessory, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	a := entities.Accessory{
		ID:        it.ID,
		Name:      it.Name,
		Unit:      it.Unit,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.Colors != "" {
		if err := json.Unmarshal([]byte(it.Colors), &a.Colors); err != nil {
			return entities.Accessory{}, err
		}
	}
	return a, nil
}
