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

const defaultMaintenanceTableName = "mantenimientos"

type maintenanceItem struct {
	ID           string `dynamodbav:"id"`
	ProductID    string `dynamodbav:"producto_id"`
	SaleID       string `dynamodbav:"venta_id"`
	TechnicianID string `dynamodbav:"tecnico_id,omitempty"`
	RequestedAt  string `dynamodbav:"fecha_solicitud"`
	PerformedAt  string `dynamodbav:"fecha_realizacion,omitempty"`
	Type         string `dynamodbav:"tipo_mantenimiento"`
	Status       string `dynamodbav:"estado"`
	Details      string `dynamodbav:"detalles,omitempty"`
}

// MaintenanceDynamoRepository persists Maintenance entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MaintenanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceRepository = (*MaintenanceDynamoRepository)(nil)

func NewMaintenanceDynamoRepository(ddb *dynamodb.Client) *MaintenanceDynamoRepository {
	return &MaintenanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAINTENANCE_TABLE", defaultMaintenanceTableName),
	}
}

func (r *MaintenanceDynamoRepository) Create(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceItem(m))
	if err != nil {
		return entities.Maintenance{}, err
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
		return entities.Maintenance{}, err
	}
	return m, nil
}

func (r *MaintenanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Maintenance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Maintenance{}, err
	}
	if len(out.Item) == 0 {
		return entities.Maintenance{}, nil
	}

	var it maintenanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Maintenance{}, err
	}
	return fromMaintenanceItem(it), nil
}

func (r *MaintenanceDynamoRepository) Update(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceItem(m))
	if err != nil {
		return entities.Maintenance{}, err
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
		return entities.Maintenance{}, err
	}
	return m, nil
}

func (r *MaintenanceDynamoRepository) List(ctx context.Context) ([]entities.Maintenance, error) {
	var requests []entities.Maintenance
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it maintenanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			requests = append(requests, fromMaintenanceItem(it))
		}
	}
	return requests, nil
}

func toMaintenanceItem(m entities.Maintenance) maintenanceItem {
	it := maintenanceItem{
		ID:           m.ID,
		ProductID:    m.ProductID,
		SaleID:       m.SaleID,
		TechnicianID: m.TechnicianID,
		RequestedAt:  formatTime(m.RequestedAt),
		Type:         string(m.Type),
		Status:       string(m.Status),
		Details:      m.Details,
	}
	if m.PerformedAt != nil {
		it.PerformedAt = formatTime(*m.PerformedAt)
	}
	return it
}

func fromMaintenanceItem(it maintenanceItem) entities.Maintenance {
	m := entities.Maintenance{
		ID:           it.ID,
		ProductID:    it.ProductID,
		SaleID:       it.SaleID,
		TechnicianID: it.TechnicianID,
		RequestedAt:  parseTime(it.RequestedAt),
		Type:         entities.MaintenanceType(it.Type),
		Status:       entities.MaintenanceStatus(it.Status),
		Details:      it.Details,
	}
	if it.PerformedAt != "" {
		t := parseTime(it.PerformedAt)
		m.PerformedAt = &t
	}
	return m
}
