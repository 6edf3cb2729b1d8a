package repository

import (
	"context"
	"errors"
	"strconv"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "productos"

var errStockConditionFailed = errors.New("stock below requested quantity")

type productItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"nombre"`
	Description    string `dynamodbav:"descripcion,omitempty"`
	Price          string `dynamodbav:"precio"`
	Stock          int    `dynamodbav:"stock"`
	BrandID        string `dynamodbav:"marca_id,omitempty"`
	BrandName      string `dynamodbav:"marca,omitempty"`
	CategoryID     string `dynamodbav:"categoria_id,omitempty"`
	CategoryName   string `dynamodbav:"categoria,omitempty"`
	ImageURL       string `dynamodbav:"imagen,omitempty"`
	WarrantyMonths int    `dynamodbav:"garantia,omitempty"`
	Active         bool   `dynamodbav:"estado"`
	CreatedAt      string `dynamodbav:"fecha_creacion"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// DecrementStock relies on a conditional update (stock >= quantity), which is
// what keeps concurrent checkouts from overselling.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	return r.scan(ctx, nil)
}

func (r *ProductDynamoRepository) ListActive(ctx context.Context) ([]entities.Product, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		FilterExpression:         aws.String("#estado = :activo"),
		ExpressionAttributeNames: map[string]string{"#estado": "estado"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":activo": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
}

func (r *ProductDynamoRepository) scan(ctx context.Context, base *dynamodb.ScanInput) ([]entities.Product, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if base != nil {
		input.FilterExpression = base.FilterExpression
		input.ExpressionAttributeNames = base.ExpressionAttributeNames
		input.ExpressionAttributeValues = base.ExpressionAttributeValues
	}

	var products []entities.Product
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
	}
	return products, nil
}

// DecrementStock subtracts quantity atomically. The conditional expression
// rejects the update when stock is short, so the caller never observes a
// negative stock.
func (r *ProductDynamoRepository) DecrementStock(ctx context.Context, id string, quantity int) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :q"),
		UpdateExpression:    aws.String("SET #stock = #stock - :q"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#stock": "stock",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, errStockConditionFailed
		}
		return entities.Product{}, err
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          floatToString(p.Price),
		Stock:          p.Stock,
		BrandID:        p.BrandID,
		BrandName:      p.BrandName,
		CategoryID:     p.CategoryID,
		CategoryName:   p.CategoryName,
		ImageURL:       p.ImageURL,
		WarrantyMonths: p.WarrantyMonths,
		Active:         p.Active,
		CreatedAt:      formatTime(p.CreatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:             it.ID,
		Name:           it.Name,
		Description:    it.Description,
		Price:          parseFloatDefault(it.Price),
		Stock:          it.Stock,
		BrandID:        it.BrandID,
		BrandName:      it.BrandName,
		CategoryID:     it.CategoryID,
		CategoryName:   it.CategoryName,
		ImageURL:       it.ImageURL,
		WarrantyMonths: it.WarrantyMonths,
		Active:         it.Active,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
