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

const defaultDiscountsTableName = "descuentos"

type discountItem struct {
	ID          string `dynamodbav:"id"`
	ProductID   string `dynamodbav:"producto_id,omitempty"`
	Percentage  string `dynamodbav:"porcentaje"`
	Start       string `dynamodbav:"fecha_inicio"`
	End         string `dynamodbav:"fecha_fin"`
	Description string `dynamodbav:"descripcion,omitempty"`
	Active      bool   `dynamodbav:"activo"`
	CreatedAt   string `dynamodbav:"fecha_creacion"`
}

// DiscountDynamoRepository persists Discount entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Storewide promotions have no producto_id attribute, so the per-product
// lookup matches on "equals or absent".

type DiscountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiscountRepository = (*DiscountDynamoRepository)(nil)

func NewDiscountDynamoRepository(ddb *dynamodb.Client) *DiscountDynamoRepository {
	return &DiscountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNTS_TABLE", defaultDiscountsTableName),
	}
}

func (r *DiscountDynamoRepository) Create(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
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
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Discount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Item) == 0 {
		return entities.Discount{}, nil
	}

	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

func (r *DiscountDynamoRepository) Update(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
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
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *DiscountDynamoRepository) List(ctx context.Context) ([]entities.Discount, error) {
	return r.scan(ctx, nil)
}

func (r *DiscountDynamoRepository) ListByProduct(ctx context.Context, productID string) ([]entities.Discount, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		FilterExpression:         aws.String("#pid = :pid OR attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{"#pid": "producto_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
}

func (r *DiscountDynamoRepository) scan(ctx context.Context, base *dynamodb.ScanInput) ([]entities.Discount, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if base != nil {
		input.FilterExpression = base.FilterExpression
		input.ExpressionAttributeNames = base.ExpressionAttributeNames
		input.ExpressionAttributeValues = base.ExpressionAttributeValues
	}

	var discounts []entities.Discount
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it discountItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			discounts = append(discounts, fromDiscountItem(it))
		}
	}
	return discounts, nil
}

func toDiscountItem(d entities.Discount) discountItem {
	return discountItem{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Percentage:  floatToString(d.Percentage),
		Start:       formatTime(d.Start),
		End:         formatTime(d.End),
		Description: d.Description,
		Active:      d.Active,
		CreatedAt:   formatTime(d.CreatedAt),
	}
}

func fromDiscountItem(it discountItem) entities.Discount {
	return entities.Discount{
		ID:          it.ID,
		ProductID:   it.ProductID,
		Percentage:  parseFloatDefault(it.Percentage),
		Start:       parseTime(it.Start),
		End:         parseTime(it.End),
		Description: it.Description,
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
