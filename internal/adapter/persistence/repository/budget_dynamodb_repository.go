package repository

import (
	"context"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	budgetIDSequence    = "budgets"
	budgetsOrderIDIndex = "order_id-index"
)

type budgetItem struct {
	ID       int  `dynamodbav:"id"`
	OrderID  int  `dynamodbav:"order_id"`
	Cost     int  `dynamodbav:"cost"`
	Labor    int  `dynamodbav:"labor"`
	Accepted bool `dynamodbav:"accepted"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: order_id-index (PK: order_id)

type BudgetDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	counter   *IDCounter
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName string, counter *IDCounter) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName, counter: counter}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	id, err := r.counter.NextID(ctx, budgetIDSequence)
	if err != nil {
		return entities.Budget{}, err
	}
	b.ID = id

	av, err := attributevalue.MarshalMap(toBudgetItem(b))
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

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id int) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
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
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) FindByOrder(ctx context.Context, orderID int) (entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": numberValue(orderID),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Items) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListAll(ctx context.Context) ([]entities.Budget, error) {
	items, err := scanPages(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBudgets(items)
}

func (r *BudgetDynamoRepository) ListPending(ctx context.Context) ([]entities.Budget, error) {
	return r.listByAccepted(ctx, false)
}

func (r *BudgetDynamoRepository) ListAccepted(ctx context.Context) ([]entities.Budget, error) {
	return r.listByAccepted(ctx, true)
}

func (r *BudgetDynamoRepository) listByAccepted(ctx context.Context, accepted bool) ([]entities.Budget, error) {
	items, err := scanPages(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("accepted = :a"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":a": &types.AttributeValueMemberBOOL{Value: accepted},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBudgets(items)
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
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
		if conditionFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       numberKey(id),
	})
	return err
}

func unmarshalBudgets(raws []map[string]types.AttributeValue) ([]entities.Budget, error) {
	budgets := make([]entities.Budget, 0, len(raws))
	for _, raw := range raws {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		budgets = append(budgets, fromBudgetItem(it))
	}
	return budgets, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:       b.ID,
		OrderID:  b.OrderID,
		Cost:     b.Cost,
		Labor:    b.Labor,
		Accepted: b.Accepted,
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:       it.ID,
		OrderID:  it.OrderID,
		Cost:     it.Cost,
		Labor:    it.Labor,
		Accepted: it.Accepted,
	}
}
