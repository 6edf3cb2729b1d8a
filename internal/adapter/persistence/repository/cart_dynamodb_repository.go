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

const (
	defaultCartsTableName = "carritos"
	cartsUserIDIndex      = "usuario_id-index"
)

type cartLineItem struct {
	ProductID   string `dynamodbav:"producto_id"`
	ProductName string `dynamodbav:"producto"`
	Quantity    int    `dynamodbav:"cantidad"`
	UnitPrice   string `dynamodbav:"precio_unitario"`
}

type cartItem struct {
	ID        string         `dynamodbav:"id"`
	UserID    string         `dynamodbav:"usuario_id"`
	Items     []cartLineItem `dynamodbav:"detalles"`
	Active    bool           `dynamodbav:"activo"`
	CreatedAt string         `dynamodbav:"fecha_creacion"`
	UpdatedAt string         `dynamodbav:"fecha_actualizacion"`
}

// CartDynamoRepository persists Cart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: usuario_id-index (PK: usuario_id)

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Create(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return entities.Cart{}, err
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
		return entities.Cart{}, err
	}
	return c, nil
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

// GetActiveByUser queries the user index and keeps the first active cart.
// Checkout deactivates carts, so at most one item passes the filter.
func (r *CartDynamoRepository) GetActiveByUser(ctx context.Context, userID string) (entities.Cart, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cartsUserIDIndex),
		KeyConditionExpression: aws.String("usuario_id = :uid"),
		FilterExpression:       aws.String("#activo = :activo"),
		ExpressionAttributeNames: map[string]string{
			"#activo": "activo",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":activo": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Items) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Update(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return entities.Cart{}, err
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
		return entities.Cart{}, err
	}
	return c, nil
}

func toCartItem(c entities.Cart) cartItem {
	lines := make([]cartLineItem, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, cartLineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
		})
	}
	return cartItem{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     lines,
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCartItem(it cartItem) entities.Cart {
	lines := make([]entities.CartItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.CartItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   parseFloatDefault(l.UnitPrice),
		})
	}
	return entities.Cart{
		ID:        it.ID,
		UserID:    it.UserID,
		Items:     lines,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
