package repository

import (
	"context"
	"sort"
	"time"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	orderIDSequence       = "service_orders"
	ordersCustomerIDIndex = "customer_id-index"
)

type serviceOrderItem struct {
	ID            int    `dynamodbav:"id"`
	CustomerID    int    `dynamodbav:"customer_id"`
	Date          string `dynamodbav:"date"`
	Product       string `dynamodbav:"product"`
	Model         string `dynamodbav:"model,omitempty"`
	Description   string `dynamodbav:"description,omitempty"`
	Fault         string `dynamodbav:"fault,omitempty"`
	Reviewed      bool   `dynamodbav:"reviewed"`
	Notes         string `dynamodbav:"notes,omitempty"`
	EstimatedCost int    `dynamodbav:"estimated_cost"`
	Repaired      bool   `dynamodbav:"repaired"`
	Delivered     bool   `dynamodbav:"delivered"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: customer_id-index (PK: customer_id)
//
// The queue listings filter on the lifecycle flags and sort client side, since
// the flags are too low-cardinality to be worth an index each.

type ServiceOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	counter   *IDCounter
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client, tableName string, counter *IDCounter) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName, counter: counter}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, s entities.ServiceOrder) (entities.ServiceOrder, error) {
	id, err := r.counter.NextID(ctx, orderIDSequence)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	s.ID = id

	av, err := attributevalue.MarshalMap(toServiceOrderItem(s))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return s, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	items, err := scanPages(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(items)
}

func (r *ServiceOrderDynamoRepository) ListByCustomer(ctx context.Context, customerID int) ([]entities.ServiceOrder, error) {
	items, err := queryPages(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": numberValue(customerID),
		},
	})
	if err != nil {
		return nil, err
	}

	orders, err := unmarshalOrders(items)
	if err != nil {
		return nil, err
	}

	// Most recent first: the index has no sort key, so the history is
	// ordered here.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) ListPendingReview(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.listByFlags(ctx, "reviewed = :f", map[string]types.AttributeValue{
		":f": &types.AttributeValueMemberBOOL{Value: false},
	})
}

func (r *ServiceOrderDynamoRepository) ListInProgress(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.listByFlags(ctx, "reviewed = :t AND repaired = :f", map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
		":f": &types.AttributeValueMemberBOOL{Value: false},
	})
}

func (r *ServiceOrderDynamoRepository) ListReadyForDelivery(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.listByFlags(ctx, "repaired = :t AND delivered = :f", map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
		":f": &types.AttributeValueMemberBOOL{Value: false},
	})
}

func (r *ServiceOrderDynamoRepository) ListDelivered(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.listByFlags(ctx, "delivered = :t", map[string]types.AttributeValue{
		":t": &types.AttributeValueMemberBOOL{Value: true},
	})
}

func (r *ServiceOrderDynamoRepository) listByFlags(
	ctx context.Context,
	filterExpr string,
	values map[string]types.AttributeValue,
) ([]entities.ServiceOrder, error) {
	items, err := scanPages(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	orders, err := unmarshalOrders(items)
	if err != nil {
		return nil, err
	}

	// Oldest first: the queues are worked in arrival order.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Date.Before(orders[j].Date)
	})
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, s entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(s))
	if err != nil {
		return entities.ServiceOrder{}, err
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
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return s, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       numberKey(id),
	})
	return err
}

func unmarshalOrders(raws []map[string]types.AttributeValue) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0, len(raws))
	for _, raw := range raws {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

func toServiceOrderItem(s entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Date:          s.Date.UTC().Format(time.RFC3339Nano),
		Product:       s.Product,
		Model:         s.Model,
		Description:   s.Description,
		Fault:         s.Fault,
		Reviewed:      s.Reviewed,
		Notes:         s.Notes,
		EstimatedCost: s.EstimatedCost,
		Repaired:      s.Repaired,
		Delivered:     s.Delivered,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.ServiceOrder{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		Date:          date,
		Product:       it.Product,
		Model:         it.Model,
		Description:   it.Description,
		Fault:         it.Fault,
		Reviewed:      it.Reviewed,
		Notes:         it.Notes,
		EstimatedCost: it.EstimatedCost,
		Repaired:      it.Repaired,
		Delivered:     it.Delivered,
	}
}
