// Package dynamo provides the DynamoDB implementation of the record-store
// contract. The table uses a single string partition key "id"; every record
// carries exactly the four user attributes.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"user-directory-api/internal/models"
	"user-directory-api/internal/repositories"
)

// Client is the subset of the DynamoDB API the repository uses.
// Declared locally so tests can substitute a fake.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// UserRepository implements repositories.UserRepository on DynamoDB
type UserRepository struct {
	client    Client
	tableName string
}

// NewUserRepository creates a DynamoDB-backed user repository
func NewUserRepository(client Client, tableName string) *UserRepository {
	return &UserRepository{
		client:    client,
		tableName: tableName,
	}
}

// Create writes the complete record with a single PutItem
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return repositories.NewRepositoryError("create", "user", user.ID, fmt.Errorf("%w: %v", repositories.ErrValidation, err))
	}

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return repositories.NewRepositoryError("create", "user", user.ID, fmt.Errorf("marshal item: %w", err))
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("create", "user", user.ID, err)
	}

	return nil
}

// GetByID performs a single-key lookup
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", "user", id, err)
	}

	if len(out.Item) == 0 {
		return nil, repositories.NewRepositoryError("get", "user", id, repositories.ErrNotFound)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, repositories.NewRepositoryError("get", "user", id, fmt.Errorf("unmarshal item: %w", err))
	}

	return &user, nil
}

// List scans the full table, following LastEvaluatedKey across pages
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "user", "", err)
		}

		var page []*models.User
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, repositories.NewRepositoryError("list", "user", "", fmt.Errorf("unmarshal items: %w", err))
		}
		users = append(users, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return users, nil
}

// Ping verifies the table is reachable
func (r *UserRepository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", repositories.ErrConnection, err)
	}
	return nil
}
