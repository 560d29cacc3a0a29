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

const (
	defaultPricingConfigTableName = "pricing_config"

	railTableConfigID = "rails"
	valanceConfigID   = "valance"
)

type pricingConfigItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingConfigDynamoRepository persists the pricing configuration in a
// single DynamoDB table keyed by config id. An absent item is a valid state
// and maps to an empty config: the budget engine prices the related add-on at
// zero until the table is configured.
//
// Table requirements:
//   - PK: id (string)

type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_CONFIG_TABLE", defaultPricingConfigTableName),
	}
}

func (r *PricingConfigDynamoRepository) GetRailTable(ctx context.Context) (entities.RailPricingTable, error) {
	payload, err := r.getPayload(ctx, railTableConfigID)
	if err != nil {
		return nil, err
	}
	if payload == "" {
		return entities.RailPricingTable{}, nil
	}

	var table entities.RailPricingTable
	if err := json.Unmarshal([]byte(payload), &table); err != nil {
		return nil, err
	}
	return table, nil
}

func (r *PricingConfigDynamoRepository) PutRailTable(ctx context.Context, table entities.RailPricingTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return r.putPayload(ctx, railTableConfigID, string(raw))
}

func (r *PricingConfigDynamoRepository) GetValanceConfig(ctx context.Context) (entities.ValanceConfig, error) {
	payload, err := r.getPayload(ctx, valanceConfigID)
	if err != nil {
		return entities.ValanceConfig{}, err
	}
	if payload == "" {
		return entities.ValanceConfig{}, nil
	}

	var cfg entities.ValanceConfig
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return entities.ValanceConfig{}, err
	}
	return cfg, nil
}

func (r *PricingConfigDynamoRepository) PutValanceConfig(ctx context.Context, cfg entities.ValanceConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.putPayload(ctx, valanceConfigID, string(raw))
}

func (r *PricingConfigDynamoRepository) getPayload(ctx context.Context, id string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it pricingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Payload, nil
}

func (r *PricingConfigDynamoRepository) putPayload(ctx context.Context, id, payload string) error {
	av, err := attributevalue.MarshalMap(pricingConfigItem{
		ID:        id,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
