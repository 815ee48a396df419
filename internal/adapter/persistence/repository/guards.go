package repository

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Guard items live in their own table and make a uniqueness rule enforceable by a
// conditional write: the item exists exactly while the rule is "taken".
//
//   - work_order_quote#<quoteID>: a quote has been converted to a work order.
//   - pending_payment#<workOrderID>: a work order has a PENDING payment.
type guardItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	RefID     string `dynamodbav:"ref_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

func quoteGuardID(quoteID string) string { return "work_order_quote#" + quoteID }

func pendingPaymentGuardID(workOrderID string) string { return "pending_payment#" + workOrderID }

// putIfAbsent is a transactional Put that fails when the id is already taken.
func putIfAbsent(table string, item itemMap) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(table),
			Item:                     item,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}
}

func guardPut(table, guardID, ownerID, refID string, now time.Time) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(guardItem{
		ID:        guardID,
		OwnerID:   ownerID,
		RefID:     refID,
		CreatedAt: formatTime(now),
	})
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return putIfAbsent(table, av), nil
}

// guardDelete releases a guard only if it is still held by refID.
func guardDelete(table, guardID, refID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(table),
			Key:                      idKey(guardID),
			ConditionExpression:      aws.String("#ref = :ref"),
			ExpressionAttributeNames: map[string]string{"#ref": "ref_id"},
			ExpressionAttributeValues: itemMap{
				":ref": &types.AttributeValueMemberS{Value: refID},
			},
		},
	}
}
