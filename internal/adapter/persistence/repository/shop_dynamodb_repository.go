package repository

import (
	"context"

	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultShopsTableName = "shops"

type shopRecord struct {
	ID                string          `dynamodbav:"id"`
	Name              string          `dynamodbav:"name,omitempty"`
	SalesTax          float64         `dynamodbav:"sales_tax"`
	PartTax           *float64        `dynamodbav:"part_tax,omitempty"`
	LaborTax          *float64        `dynamodbav:"labor_tax,omitempty"`
	SuppliesTax       *float64        `dynamodbav:"supplies_tax,omitempty"`
	FeeTax            *float64        `dynamodbav:"fee_tax,omitempty"`
	DefaultHourlyRate float64         `dynamodbav:"default_hourly_rate"`
	LaborRate         float64         `dynamodbav:"labor_rate"`
	Options           map[string]bool `dynamodbav:"options,omitempty"`
}

// ShopDynamoRepository persists Shop configuration in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ShopDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShopRepository = (*ShopDynamoRepository)(nil)

func NewShopDynamoRepository(ddb *dynamodb.Client) *ShopDynamoRepository {
	return &ShopDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHOPS_TABLE", defaultShopsTableName),
	}
}

func (r *ShopDynamoRepository) GetByID(ctx context.Context, id string) (entities.Shop, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Shop{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shop{}, nil
	}

	var rec shopRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Shop{}, err
	}
	return entities.Shop(rec), nil
}

func (r *ShopDynamoRepository) Put(ctx context.Context, s entities.Shop) (entities.Shop, error) {
	av, err := attributevalue.MarshalMap(shopRecord(s))
	if err != nil {
		return entities.Shop{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Shop{}, err
	}
	return s, nil
}
