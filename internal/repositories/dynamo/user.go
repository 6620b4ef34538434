package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
)

// UserRepository implements repositories.UserRepository backed by a single
// DynamoDB table keyed by user_id.
type UserRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *logrus.Logger
}

// NewUserRepository creates a new DynamoDB user repository
func NewUserRepository(client *dynamodb.Client, tableName string, logger *logrus.Logger) repositories.UserRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &UserRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save writes the full user record. No condition expression: a put with an
// existing key overwrites the record.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return repositories.NewStorageError("put", user.UserID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logger.WithError(err).WithField("user_id", user.UserID).Error("PutItem failed")
		return repositories.NewStorageError("put", user.UserID, err)
	}

	return nil
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       userKey(id),
	})
	if err != nil {
		r.logger.WithError(err).WithField("user_id", id).Error("GetItem failed")
		return nil, repositories.NewStorageError("get", id, err)
	}

	if len(result.Item) == 0 {
		return nil, repositories.ErrNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, repositories.NewStorageError("get", id, err)
	}

	return &user, nil
}

// List scans the entire table and returns every record in storage order
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	var startKey map[string]types.AttributeValue
	for {
		result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			r.logger.WithError(err).Error("Scan failed")
			return nil, repositories.NewStorageError("scan", "", err)
		}

		var page []models.User
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, repositories.NewStorageError("scan", "", err)
		}
		users = append(users, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return users, nil
}

// UpdateAttributes overwrites name and email on the record matching id.
// DynamoDB's UpdateItem has create-if-absent semantics, so updating an
// unknown id creates a partial record.
func (r *UserRepository) UpdateAttributes(ctx context.Context, id, name, email string) error {
	if id == "" {
		return repositories.ErrInvalidID
	}

	update := expression.Set(expression.Name("name"), expression.Value(name)).
		Set(expression.Name("email"), expression.Value(email))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return repositories.NewStorageError("update", id, err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       userKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		r.logger.WithError(err).WithField("user_id", id).Error("UpdateItem failed")
		return repositories.NewStorageError("update", id, err)
	}

	return nil
}

// Delete removes the record matching id. DynamoDB treats a delete on a
// missing key as a successful no-op.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return repositories.ErrInvalidID
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       userKey(id),
	})
	if err != nil {
		r.logger.WithError(err).WithField("user_id", id).Error("DeleteItem failed")
		return repositories.NewStorageError("delete", id, err)
	}

	return nil
}

func userKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: id},
	}
}
