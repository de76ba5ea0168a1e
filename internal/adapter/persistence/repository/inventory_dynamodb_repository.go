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

const defaultInventoryTableName = "inventory"

type inventoryRecord struct {
	ShopID            string  `dynamodbav:"shop_id"`
	PartNumber        string  `dynamodbav:"part_number"`
	Description       string  `dynamodbav:"description,omitempty"`
	Quantity          float64 `dynamodbav:"quantity"`
	AvailableQuantity float64 `dynamodbav:"available_quantity"`
	Cost              float64 `dynamodbav:"cost"`
	PartPrice         float64 `dynamodbav:"part_price"`
	VendorID          string  `dynamodbav:"vendor_id,omitempty"`
}

// InventoryDynamoRepository persists InventoryRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: shop_id (string), SK: part_number (string)
//
// The Adjust* methods use ADD update expressions so concurrent reservations
// against the same part resolve to the correct net quantity without a
// read-modify-write race.

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) Put(ctx context.Context, rec entities.InventoryRecord) (entities.InventoryRecord, error) {
	av, err := attributevalue.MarshalMap(inventoryRecord(rec))
	if err != nil {
		return entities.InventoryRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.InventoryRecord{}, err
	}
	return rec, nil
}

func (r *InventoryDynamoRepository) GetByPartNumber(ctx context.Context, shopID, partNumber string) (entities.InventoryRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"shop_id":     &types.AttributeValueMemberS{Value: shopID},
			"part_number": &types.AttributeValueMemberS{Value: partNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryRecord{}, nil
	}

	var rec inventoryRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.InventoryRecord{}, err
	}
	return entities.InventoryRecord(rec), nil
}

func (r *InventoryDynamoRepository) AdjustAvailableQuantity(ctx context.Context, shopID, partNumber string, delta float64) (entities.InventoryRecord, error) {
	return r.adjust(ctx, shopID, partNumber, "available_quantity", delta)
}

func (r *InventoryDynamoRepository) AdjustOnHandQuantity(ctx context.Context, shopID, partNumber string, delta float64) (entities.InventoryRecord, error) {
	return r.adjust(ctx, shopID, partNumber, "quantity", delta)
}

func (r *InventoryDynamoRepository) adjust(ctx context.Context, shopID, partNumber, attr string, delta float64) (entities.InventoryRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"shop_id":     &types.AttributeValueMemberS{Value: shopID},
			"part_number": &types.AttributeValueMemberS{Value: partNumber},
		},
		UpdateExpression: aws.String("ADD #qty :delta"),
		ExpressionAttributeNames: map[string]string{
			"#qty": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: floatToString(delta)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.InventoryRecord{}, err
	}

	var rec inventoryRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.InventoryRecord{}, err
	}
	return entities.InventoryRecord(rec), nil
}
