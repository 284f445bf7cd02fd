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

const defaultAuthTokensTableName = "auth_tokens"

type authTokenItem struct {
	Provider         string `dynamodbav:"provider"`
	AccessToken      string `dynamodbav:"access_token"`
	RefreshToken     string `dynamodbav:"refresh_token"`
	ExpiresAt        string `dynamodbav:"expires_at"`
	RefreshExpiresAt string `dynamodbav:"refresh_expires_at"`
	IsActive         bool   `dynamodbav:"is_active"`
}

// AuthTokenDynamoRepository persists the ERP OAuth token pair.
//
// Table requirements:
//   - PK: provider (string)
//
// The provider key makes the row a singleton: a full-item put replaces the
// pair atomically, so a refresh can never leave two active tokens behind.

type AuthTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuthTokenRepository = (*AuthTokenDynamoRepository)(nil)

func NewAuthTokenDynamoRepository(ddb *dynamodb.Client) *AuthTokenDynamoRepository {
	return &AuthTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUTH_TOKENS_TABLE", defaultAuthTokensTableName),
	}
}

func (r *AuthTokenDynamoRepository) GetByProvider(ctx context.Context, provider string) (entities.AuthToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider": &types.AttributeValueMemberS{Value: provider},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AuthToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.AuthToken{}, nil
	}

	var it authTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AuthToken{}, err
	}
	return fromAuthTokenItem(it), nil
}

func (r *AuthTokenDynamoRepository) Upsert(ctx context.Context, t entities.AuthToken) (entities.AuthToken, error) {
	av, err := attributevalue.MarshalMap(toAuthTokenItem(t))
	if err != nil {
		return entities.AuthToken{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AuthToken{}, err
	}
	return t, nil
}

func toAuthTokenItem(t entities.AuthToken) authTokenItem {
	return authTokenItem{
		Provider:         t.Provider,
		AccessToken:      t.AccessToken,
		RefreshToken:     t.RefreshToken,
		ExpiresAt:        t.ExpiresAt.UTC().Format(time.RFC3339Nano),
		RefreshExpiresAt: t.RefreshExpiresAt.UTC().Format(time.RFC3339Nano),
		IsActive:         t.IsActive,
	}
}

func fromAuthTokenItem(it authTokenItem) entities.AuthToken {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	refreshExpiresAt, _ := time.Parse(time.RFC3339Nano, it.RefreshExpiresAt)
	return entities.AuthToken{
		Provider:         it.Provider,
		AccessToken:      it.AccessToken,
		RefreshToken:     it.RefreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		IsActive:         it.IsActive,
	}
}
