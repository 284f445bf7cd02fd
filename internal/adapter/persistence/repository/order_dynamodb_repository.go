package repository

import (
	"context"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                   string             `dynamodbav:"id"`
	Customer             entities.Customer  `dynamodbav:"customer"`
	Address              entities.Address   `dynamodbav:"address"`
	Lines                []entities.OrderLine `dynamodbav:"lines"`
	CouponCodes          []string           `dynamodbav:"coupon_codes,omitempty"`
	ShippingFeeCents     int64              `dynamodbav:"shipping_fee_cents"`
	TotalAtCreationCents int64              `dynamodbav:"total_at_creation_cents"`
	ChosenPaymentMethod  string             `dynamodbav:"chosen_payment_method,omitempty"`
	CreatedAt            string             `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Orders are write-once: the conditional put rejects duplicate IDs and no
// update path exists.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                   o.ID,
		Customer:             o.Customer,
		Address:              o.Address,
		Lines:                o.Lines,
		CouponCodes:          o.CouponCodes,
		ShippingFeeCents:     o.ShippingFeeCents,
		TotalAtCreationCents: o.TotalAtCreationCents,
		ChosenPaymentMethod:  string(o.ChosenPaymentMethod),
		CreatedAt:            o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Order{
		ID:                   it.ID,
		Customer:             it.Customer,
		Address:              it.Address,
		Lines:                it.Lines,
		CouponCodes:          it.CouponCodes,
		ShippingFeeCents:     it.ShippingFeeCents,
		TotalAtCreationCents: it.TotalAtCreationCents,
		ChosenPaymentMethod:  entities.PaymentMethod(it.ChosenPaymentMethod),
		CreatedAt:            createdAt,
	}
}
