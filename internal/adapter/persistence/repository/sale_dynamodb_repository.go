package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSalesTableName = "ventas"
	salesUserIDIndex      = "usuario_id-index"
)

type saleLineItem struct {
	ProductID   string `dynamodbav:"producto_id"`
	ProductName string `dynamodbav:"producto"`
	Quantity    int    `dynamodbav:"cantidad"`
	UnitPrice   string `dynamodbav:"precio_unitario"`
	Subtotal    string `dynamodbav:"subtotal"`
}

type saleItem struct {
	ID       string         `dynamodbav:"id"`
	UserID   string         `dynamodbav:"usuario_id"`
	Username string         `dynamodbav:"usuario"`
	Date     string         `dynamodbav:"fecha"`
	Total    string         `dynamodbav:"total"`
	Status   string         `dynamodbav:"estado"`
	Items    []saleLineItem `dynamodbav:"detalles"`
}

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: usuario_id-index (PK: usuario_id)
//
// Dates are stored as RFC3339, so the report range filter compares them
// lexicographically in a scan. Sales volume for one store stays well inside
// scan territory.

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	it := toSaleItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Sale{}, err
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
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Sale, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salesUserIDIndex),
		KeyConditionExpression: aws.String("usuario_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSales(out.Items)
}

// ListByDateRange scans for sales inside [start, end]. Zero bounds drop the
// corresponding side of the filter; two zero bounds read the whole table.
func (r *SaleDynamoRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Sale, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	switch {
	case !start.IsZero() && !end.IsZero():
		input.FilterExpression = aws.String("#fecha BETWEEN :start AND :end")
		input.ExpressionAttributeNames = map[string]string{"#fecha": "fecha"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatTime(start)},
			":end":   &types.AttributeValueMemberS{Value: formatTime(endOfDay(end))},
		}
	case !start.IsZero():
		input.FilterExpression = aws.String("#fecha >= :start")
		input.ExpressionAttributeNames = map[string]string{"#fecha": "fecha"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatTime(start)},
		}
	case !end.IsZero():
		input.FilterExpression = aws.String("#fecha <= :end")
		input.ExpressionAttributeNames = map[string]string{"#fecha": "fecha"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":end": &types.AttributeValueMemberS{Value: formatTime(endOfDay(end))},
		}
	}

	var sales []entities.Sale
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalSales(page.Items)
		if err != nil {
			return nil, err
		}
		sales = append(sales, batch...)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].Date.Before(sales[j].Date) })
	return sales, nil
}

func (r *SaleDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SaleStatus) (entities.Sale, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #estado = :estado"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#estado": "estado",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func unmarshalSales(raw []map[string]types.AttributeValue) ([]entities.Sale, error) {
	sales := make([]entities.Sale, 0, len(raw))
	for _, m := range raw {
		var it saleItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		sales = append(sales, fromSaleItem(it))
	}
	return sales, nil
}

// endOfDay widens a date-only end bound to cover the whole closing day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func toSaleItem(s entities.Sale) saleItem {
	lines := make([]saleLineItem, 0, len(s.Items))
	for _, it := range s.Items {
		lines = append(lines, saleLineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
			Subtotal:    floatToString(it.Subtotal),
		})
	}
	return saleItem{
		ID:       s.ID,
		UserID:   s.UserID,
		Username: s.Username,
		Date:     formatTime(s.Date),
		Total:    floatToString(s.Total),
		Status:   string(s.Status),
		Items:    lines,
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	lines := make([]entities.SaleItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.SaleItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   parseFloatDefault(l.UnitPrice),
			Subtotal:    parseFloatDefault(l.Subtotal),
		})
	}
	return entities.Sale{
		ID:       it.ID,
		UserID:   it.UserID,
		Username: it.Username,
		Date:     parseTime(it.Date),
		Total:    parseFloatDefault(it.Total),
		Status:   entities.SaleStatus(it.Status),
		Items:    lines,
	}
}
