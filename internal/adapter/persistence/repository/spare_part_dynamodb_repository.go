package repository

import (
	"context"
	"sort"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	partIDSequence    = "spare_parts"
	partsOrderIDIndex = "order_id-index"
)

type sparePartItem struct {
	ID      int    `dynamodbav:"id"`
	OrderID int    `dynamodbav:"order_id"`
	Name    string `dynamodbav:"name"`
	Cost    int    `dynamodbav:"cost"`
}

// SparePartDynamoRepository persists SparePart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: order_id-index (PK: order_id)

type SparePartDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	counter   *IDCounter
}

var _ interfaces.ISparePartRepository = (*SparePartDynamoRepository)(nil)

func NewSparePartDynamoRepository(ddb *dynamodb.Client, tableName string, counter *IDCounter) *SparePartDynamoRepository {
	return &SparePartDynamoRepository{ddb: ddb, tableName: tableName, counter: counter}
}

func (r *SparePartDynamoRepository) Create(ctx context.Context, p entities.SparePart) (entities.SparePart, error) {
	id, err := r.counter.NextID(ctx, partIDSequence)
	if err != nil {
		return entities.SparePart{}, err
	}
	p.ID = id

	av, err := attributevalue.MarshalMap(toSparePartItem(p))
	if err != nil {
		return entities.SparePart{}, err
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
		return entities.SparePart{}, err
	}
	return p, nil
}

func (r *SparePartDynamoRepository) GetByID(ctx context.Context, id int) (entities.SparePart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SparePart{}, err
	}
	if len(out.Item) == 0 {
		return entities.SparePart{}, nil
	}

	var it sparePartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SparePart{}, err
	}
	return fromSparePartItem(it), nil
}

func (r *SparePartDynamoRepository) ListByOrder(ctx context.Context, orderID int) ([]entities.SparePart, error) {
	items, err := queryPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(partsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": numberValue(orderID),
		},
	})
	if err != nil {
		return nil, err
	}

	parts := make([]entities.SparePart, 0, len(items))
	for _, raw := range items {
		var it sparePartItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		parts = append(parts, fromSparePartItem(it))
	}

	// Stable listing order regardless of index layout.
	sort.Slice(parts, func(i, j int) bool { return parts[i].ID < parts[j].ID })
	return parts, nil
}

func (r *SparePartDynamoRepository) Update(ctx context.Context, p entities.SparePart) (entities.SparePart, error) {
	av, err := attributevalue.MarshalMap(toSparePartItem(p))
	if err != nil {
		return entities.SparePart{}, err
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
		if conditionFailed(err) {
			return entities.SparePart{}, nil
		}
		return entities.SparePart{}, err
	}
	return p, nil
}

func (r *SparePartDynamoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       numberKey(id),
	})
	return err
}

func toSparePartItem(p entities.SparePart) sparePartItem {
	return sparePartItem{
		ID:      p.ID,
		OrderID: p.OrderID,
		Name:    p.Name,
		Cost:    p.Cost,
	}
}

func fromSparePartItem(it sparePartItem) entities.SparePart {
	return entities.SparePart{
		ID:      it.ID,
		OrderID: it.OrderID,
		Name:    it.Name,
		Cost:    it.Cost,
	}
}
