package repository

import (
	"context"
	"time"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsBudgetIDIndex = "budget_id-index"

type budgetPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	BudgetID     int                    `dynamodbav:"budget_id"`
	Amount       int                    `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BudgetPaymentDynamoRepository persists BudgetPayment entities in DynamoDB.
// The id is the provider's payment id, so no counter is involved.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type BudgetPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBudgetPaymentRepository = (*BudgetPaymentDynamoRepository)(nil)

func NewBudgetPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetPaymentDynamoRepository {
	return &BudgetPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetPaymentDynamoRepository) Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
	av, err := attributevalue.MarshalMap(toBudgetPaymentItem(p))
	if err != nil {
		return entities.BudgetPayment{}, err
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
		return entities.BudgetPayment{}, err
	}
	return p, nil
}

func (r *BudgetPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetPayment{}, nil
	}

	var it budgetPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetPayment{}, err
	}
	return fromBudgetPaymentItem(it), nil
}

func (r *BudgetPaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID int) ([]entities.BudgetPayment, error) {
	items, err := queryPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": numberValue(budgetID),
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.BudgetPayment, 0, len(items))
	for _, raw := range items {
		var it budgetPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromBudgetPaymentItem(it))
	}
	return payments, nil
}

func toBudgetPaymentItem(p entities.BudgetPayment) budgetPaymentItem {
	return budgetPaymentItem{
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Amount:       p.Amount,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.Payload,
		MPPayloadRaw: string(p.RawPayload),
	}
}

func fromBudgetPaymentItem(it budgetPaymentItem) entities.BudgetPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.BudgetPayment{
		ID:         it.ID,
		BudgetID:   it.BudgetID,
		Amount:     it.Amount,
		Date:       dt,
		Status:     entities.PaymentStatus(it.Status),
		Payload:    it.MPPayload,
		RawPayload: []byte(it.MPPayloadRaw),
	}
}
