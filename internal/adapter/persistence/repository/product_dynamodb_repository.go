package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	ModelTag       string  `dynamodbav:"model_tag,omitempty"`
	Method         string  `dynamodbav:"method"`
	CostPrice      string  `dynamodbav:"cost_price"`
	ProfitMargin   float64 `dynamodbav:"profit_margin"`
	SalePrice      string  `dynamodbav:"sale_price"`
	MinWidth       float64 `dynamodbav:"min_width"`
	MinHeight      float64 `dynamodbav:"min_height"`
	MinArea        float64 `dynamodbav:"min_area"`
	MaxWidth       float64 `dynamodbav:"max_width"`
	ScaleToMinArea bool    `dynamodbav:"scale_to_min_area"`
	HeightTiers    string  `dynamodbav:"height_tiers,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	it, err := toProductItem(p)
	if err != nil {
		return entities.Product{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it)
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	products := make([]entities.Product, 0)
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
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromProductItem(it)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	it, err := toProductItem(p)
	if err != nil {
		return entities.Product{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProductItem(p entities.Product) (productItem, error) {
	it := productItem{
		ID:             p.ID,
		Name:           p.Name,
		ModelTag:       p.ModelTag,
		Method:         string(p.Method),
		CostPrice:      floatToString(p.CostPrice),
		ProfitMargin:   p.ProfitMargin,
		SalePrice:      floatToString(p.SalePrice),
		MinWidth:       p.MinWidth,
		MinHeight:      p.MinHeight,
		MinArea:        p.MinArea,
		MaxWidth:       p.MaxWidth,
		ScaleToMinArea: p.ScaleToMinArea,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(p.HeightTiers) > 0 {
		raw, err := json.Marshal(p.HeightTiers)
		if err != nil {
			return productItem{}, err
		}
		it.HeightTiers = string(raw)
	}
	return it, nil
}

func fromProductItem(it productItem) (entities.Product, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	costPrice, _ := strconv.ParseFloat(it.CostPrice, 64)
	salePrice, _ := strconv.ParseFloat(it.SalePrice, 64)

	p := entities.Product{
		ID:             it.ID,
		Name:           it.Name,
		ModelTag:       it.ModelTag,
		Method:         entities.CalculationMethod(it.Method),
		CostPrice:      costPrice,
		ProfitMargin:   it.ProfitMargin,
		SalePrice:      salePrice,
		MinWidth:       it.MinWidth,
		MinHeight:      it.MinHeight,
		MinArea:        it.MinArea,
		MaxWidth:       it.MaxWidth,
		ScaleToMinArea: it.ScaleToMinArea,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.HeightTiers != "" {
		if err := json.Unmarshal([]byte(it.HeightTiers), &p.HeightTiers); err != nil {
			return entities.Product{}, err
		}
	}
	return p, nil
}
