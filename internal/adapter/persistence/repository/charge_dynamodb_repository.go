package repository

import (
	"context"
	"errors"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChargesTableName = "charges"

type chargeItem struct {
	OrderID         string `dynamodbav:"order_id"`
	GatewayChargeID string `dynamodbav:"gateway_charge_id,omitempty"`
	Method          string `dynamodbav:"method"`
	Status          string `dynamodbav:"status"`
	AmountCents     int64  `dynamodbav:"amount_cents"`
	FailureReason   string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string) — one live charge per order.
//
// Concurrency model: all status writes go through conditional updates, so
// the polling loop, the webhook and the manual re-check can race freely;
// only one of them wins a non-terminal -> terminal transition and the rest
// observe applied=false.

type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

// Create writes a fresh charge row. A new attempt is allowed when no charge
// exists yet or the previous one failed terminally; a PAID or in-flight
// charge blocks the put.
func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	av, err := attributevalue.MarshalMap(toChargeItem(c))
	if err != nil {
		return entities.Charge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#oid) OR #st IN (:declined, :canceled, :expired)"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
			"#st":  "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":declined": &types.AttributeValueMemberS{Value: string(entities.ChargeStatusDeclined)},
			":canceled": &types.AttributeValueMemberS{Value: string(entities.ChargeStatusCanceled)},
			":expired":  &types.AttributeValueMemberS{Value: string(entities.ChargeStatusExpired)},
		},
	})
	if err != nil {
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) AttachGatewayCharge(ctx context.Context, orderID, gatewayChargeID string) (entities.Charge, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:    aws.String("SET #gid = :gid, #upd = :upd"),
		ConditionExpression: aws.String("attribute_exists(#oid)"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
			"#gid": "gateway_charge_id",
			"#upd": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: gatewayChargeID},
			":upd": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Charge{}, err
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

// TransitionStatus applies the state machine under a conditional update:
// the stored status must still be one the target is reachable from. A failed
// condition is not an error; the current row is fetched and returned with
// applied=false so callers can treat duplicate terminal writes as no-ops.
func (r *ChargeDynamoRepository) TransitionStatus(ctx context.Context, orderID string, next entities.ChargeStatus, reason string) (entities.Charge, bool, error) {
	var condition string
	values := map[string]types.AttributeValue{
		":st":  &types.AttributeValueMemberS{Value: string(next)},
		":rsn": &types.AttributeValueMemberS{Value: reason},
		":upd": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	if next == entities.ChargeStatusPending {
		condition = "#st = :created"
		values[":created"] = &types.AttributeValueMemberS{Value: string(entities.ChargeStatusCreated)}
	} else {
		// Terminal targets are reachable from any non-terminal state.
		condition = "#st IN (:created, :pending)"
		values[":created"] = &types.AttributeValueMemberS{Value: string(entities.ChargeStatusCreated)}
		values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.ChargeStatusPending)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:          aws.String("SET #st = :st, #rsn = :rsn, #upd = :upd"),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  map[string]string{"#st": "status", "#rsn": "failure_reason", "#upd": "updated_at"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			current, gerr := r.GetByOrderID(ctx, orderID)
			if gerr != nil {
				return entities.Charge{}, false, gerr
			}
			return current, false, nil
		}
		return entities.Charge{}, false, err
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Charge{}, false, err
	}
	return fromChargeItem(it), true, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		OrderID:         c.OrderID,
		GatewayChargeID: c.GatewayChargeID,
		Method:          string(c.Method),
		Status:          string(c.Status),
		AmountCents:     c.AmountCents,
		FailureReason:   c.FailureReason,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Charge{
		OrderID:         it.OrderID,
		GatewayChargeID: it.GatewayChargeID,
		Method:          entities.PaymentMethod(it.Method),
		Status:          entities.ChargeStatus(it.Status),
		AmountCents:     it.AmountCents,
		FailureReason:   it.FailureReason,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
