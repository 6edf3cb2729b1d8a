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

const (
	defaultReportsTableName = "reportes"
	reportsGeneratedByIndex = "generado_por-index"
)

type reportItem struct {
	ID          string         `dynamodbav:"id"`
	Type        string         `dynamodbav:"tipo"`
	Format      string         `dynamodbav:"formato"`
	Description string         `dynamodbav:"descripcion"`
	GeneratedBy string         `dynamodbav:"generado_por"`
	Params      map[string]any `dynamodbav:"parametros,omitempty"`
	DateStart   string         `dynamodbav:"fecha_inicio,omitempty"`
	DateEnd     string         `dynamodbav:"fecha_fin,omitempty"`
	GeneratedAt string         `dynamodbav:"fecha_generacion"`
	FileName    string         `dynamodbav:"nombre_archivo,omitempty"`
}

// ReportDynamoRepository persists generated-report metadata in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: generado_por-index (PK: generado_por)

type ReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb *dynamodb.Client) *ReportDynamoRepository {
	return &ReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.Report{}, err
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
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

// ListByUser returns the user's history, most recent first.
func (r *ReportDynamoRepository) ListByUser(ctx context.Context, username string) ([]entities.Report, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reportsGeneratedByIndex),
		KeyConditionExpression: aws.String("generado_por = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, err
	}

	reports := make([]entities.Report, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reportItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		reports = append(reports, fromReportItem(it))
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].GeneratedAt.After(reports[j].GeneratedAt) })
	return reports, nil
}

func (r *ReportDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toReportItem(rep entities.Report) reportItem {
	it := reportItem{
		ID:          rep.ID,
		Type:        rep.Type,
		Format:      rep.Format,
		Description: rep.Description,
		GeneratedBy: rep.GeneratedBy,
		Params:      rep.Params,
		GeneratedAt: formatTime(rep.GeneratedAt),
		FileName:    rep.FileName,
	}
	if rep.DateStart != nil {
		it.DateStart = formatTime(*rep.DateStart)
	}
	if rep.DateEnd != nil {
		it.DateEnd = formatTime(*rep.DateEnd)
	}
	return it
}

func fromReportItem(it reportItem) entities.Report {
	rep := entities.Report{
		ID:          it.ID,
		Type:        it.Type,
		Format:      it.Format,
		Description: it.Description,
		GeneratedBy: it.GeneratedBy,
		Params:      it.Params,
		GeneratedAt: parseTime(it.GeneratedAt),
		FileName:    it.FileName,
	}
	if it.DateStart != "" {
		t := parseTime(it.DateStart)
		rep.DateStart = &t
	}
	if it.DateEnd != "" {
		t := parseTime(it.DateEnd)
		rep.DateEnd = &t
	}
	return rep
}
