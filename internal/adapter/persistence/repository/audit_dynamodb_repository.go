package repository

import (
	"context"
	"sort"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditTableName = "bitacora"

type auditItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"usuario"`
	Action   string `dynamodbav:"accion"`
	IP       string `dynamodbav:"ip,omitempty"`
	Date     string `dynamodbav:"fecha_hora"`
	Success  bool   `dynamodbav:"estado"`
}

// AuditDynamoRepository persists bitácora entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Create(ctx context.Context, e entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(toAuditItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// List returns entries, optionally filtered to one username, newest first.
func (r *AuditDynamoRepository) List(ctx context.Context, username string) ([]entities.AuditEntry, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if username != "" {
		input.FilterExpression = aws.String("#usuario = :u")
		input.ExpressionAttributeNames = map[string]string{"#usuario": "usuario"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		}
	}

	var entries []entities.AuditEntry
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromAuditItem(it))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func toAuditItem(e entities.AuditEntry) auditItem {
	return auditItem{
		ID:       e.ID,
		Username: e.Username,
		Action:   e.Action,
		IP:       e.IP,
		Date:     formatTime(e.Date),
		Success:  e.Success,
	}
}

func fromAuditItem(it auditItem) entities.AuditEntry {
	return entities.AuditEntry{
		ID:       it.ID,
		Username: it.Username,
		Action:   it.Action,
		IP:       it.IP,
		Date:     parseTime(it.Date),
		Success:  it.Success,
	}
}
