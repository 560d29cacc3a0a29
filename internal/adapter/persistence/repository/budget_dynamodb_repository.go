package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsCustomerIDIndex  = "customer_id-index"
)

type budgetItem struct {
	ID              string `dynamodbav:"id"`
	CustomerID      string `dynamodbav:"customer_id"`
	Number          int    `dynamodbav:"number"`
	LineItems       string `dynamodbav:"line_items,omitempty"`
	Accessories     string `dynamodbav:"accessories,omitempty"`
	Observation     string `dynamodbav:"observation,omitempty"`
	TotalValue      string `dynamodbav:"total_value"`
	NegotiatedValue string `dynamodbav:"negotiated_value,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Line items and accessories are stored as JSON strings: they are always read
// and written as a whole document, so there is no value in mapping them to
// nested DynamoDB attributes.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	budgets := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		b, err := fromBudgetItem(it)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

// HighestNumber scans the numbers of every budget to find the highest one
// assigned so far. The table stays small (hundreds of quotes per year), so a
// projected scan is cheaper than maintaining a counter item.
func (r *BudgetDynamoRepository) HighestNumber(ctx context.Context) (int, error) {
	highest := 0
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			ProjectionExpression:     aws.String("#number"),
			ExpressionAttributeNames: map[string]string{"#number": "number"},
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return 0, err
		}

		for _, raw := range out.Items {
			n, ok := raw["number"].(*types.AttributeValueMemberN)
			if !ok {
				continue
			}
			v, err := strconv.Atoi(n.Value)
			if err != nil {
				continue
			}
			if v > highest {
				highest = v
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return highest, nil
}

func toBudgetItem(b entities.Budget) (budgetItem, error) {
	it := budgetItem{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		Number:      b.Number,
		Observation: b.Observation,
		TotalValue:  floatToString(b.TotalValue),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.NegotiatedValue != nil {
		it.NegotiatedValue = floatToString(*b.NegotiatedValue)
	}

	if len(b.LineItems) > 0 {
		raw, err := json.Marshal(b.LineItems)
		if err != nil {
			return budgetItem{}, err
		}
		it.LineItems = string(raw)
	}
	if len(b.Accessories) > 0 {
		raw, err := json.Marshal(b.Accessories)
		if err != nil {
			return budgetItem{}, err
		}
		it.Accessories = string(raw)
	}
	return it, nil
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalValue, 64)

	b := entities.Budget{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		Number:      it.Number,
		Observation: it.Observation,
		TotalValue:  total,
		Status:      entities.BudgetStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.NegotiatedValue != "" {
		if v, err := strconv.ParseFloat(it.NegotiatedValue, 64); err == nil {
			b.NegotiatedValue = &v
		}
	}
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &b.LineItems); err != nil {
			return entities.Budget{}, err
		}
	}
	if it.Accessories != "" {
		if err := json.Unmarshal([]byte(it.Accessories), &b.Accessories); err != nil {
			return entities.Budget{}, err
		}
	}
	return b, nil
}
