package repository

import (
	"context"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "usuarios"

type userItem struct {
	ID           string `dynamodbav:"id"`
	Username     string `dynamodbav:"username"`
	Email        string `dynamodbav:"email"`
	FirstName    string `dynamodbav:"first_name,omitempty"`
	LastName     string `dynamodbav:"last_name,omitempty"`
	Phone        string `dynamodbav:"telefono,omitempty"`
	Address      string `dynamodbav:"direccion,omitempty"`
	Role         string `dynamodbav:"rol"`
	RegisteredAt string `dynamodbav:"date_joined"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Role lookups scan with a filter; the account table is small enough that a
// dedicated GSI buys nothing.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	return r.scan(ctx, nil)
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role string) ([]entities.User, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		FilterExpression:         aws.String("#rol = :rol"),
		ExpressionAttributeNames: map[string]string{"#rol": "rol"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rol": &types.AttributeValueMemberS{Value: role},
		},
	})
}

func (r *UserDynamoRepository) scan(ctx context.Context, base *dynamodb.ScanInput) ([]entities.User, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if base != nil {
		input.FilterExpression = base.FilterExpression
		input.ExpressionAttributeNames = base.ExpressionAttributeNames
		input.ExpressionAttributeValues = base.ExpressionAttributeValues
	}

	var users []entities.User
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
	}
	return users, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Address:      u.Address,
		Role:         u.Role,
		RegisteredAt: formatTime(u.RegisteredAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Username:     it.Username,
		Email:        it.Email,
		FirstName:    it.FirstName,
		LastName:     it.LastName,
		Phone:        it.Phone,
		Address:      it.Address,
		Role:         it.Role,
		RegisteredAt: parseTime(it.RegisteredAt),
	}
}
