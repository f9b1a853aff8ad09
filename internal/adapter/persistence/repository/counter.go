package repository

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// IDCounter hands out sequential integer ids, one sequence per entity name.
//
// Table requirements:
//   - PK: name (string)
//
// The ADD update is atomic, so concurrent writers never receive the same id.

type IDCounter struct {
	ddb       dynamoAPI
	tableName string
}

func NewIDCounter(ddb *dynamodb.Client, tableName string) *IDCounter {
	return &IDCounter{ddb: ddb, tableName: tableName}
}

func (c *IDCounter) NextID(ctx context.Context, name string) (int, error) {
	out, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	return strconv.Atoi(attr.Value)
}
