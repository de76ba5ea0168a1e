package repository

import (
	"context"
	"fmt"

	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobRecord struct {
	ID              string          `dynamodbav:"id"`
	ShopID          string          `dynamodbav:"shop_id"`
	JobNumber       int64           `dynamodbav:"job_number"`
	LifecycleState  string          `dynamodbav:"lifecycle_state"`
	CustomerStatus  int             `dynamodbav:"customer_status"`
	ApprovalStatus  string          `dynamodbav:"approval_status"`
	IsEstimate      bool            `dynamodbav:"is_estimate"`
	StateClosed     bool            `dynamodbav:"state_closed"`
	ProfitCenter    string          `dynamodbav:"profit_center,omitempty"`
	TechnicianRate  *float64        `dynamodbav:"technician_rate,omitempty"`
	TaxRates        taxRatesRecord  `dynamodbav:"tax_rates"`
	Items           []jobItemRecord `dynamodbav:"items,omitempty"`
	FinalizedAt     string          `dynamodbav:"finalized_at,omitempty"`
	ClosedAt        string          `dynamodbav:"closed_at,omitempty"`
	WorkStartedAt   string          `dynamodbav:"work_started_at,omitempty"`
	WorkCompletedAt string          `dynamodbav:"work_completed_at,omitempty"`
	StateChangedAt  string          `dynamodbav:"state_changed_at"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

type taxRatesRecord struct {
	Part     float64 `dynamodbav:"part"`
	Labor    float64 `dynamodbav:"labor"`
	Supplies float64 `dynamodbav:"supplies"`
	Fee      float64 `dynamodbav:"fee"`
}

type jobItemRecord struct {
	ID            string               `dynamodbav:"id"`
	Description   string               `dynamodbav:"description,omitempty"`
	State         string               `dynamodbav:"state"`
	ApprovalType  string               `dynamodbav:"approval_type,omitempty"`
	PackagePrice  *float64             `dynamodbav:"package_price,omitempty"`
	LaborPrice    *float64             `dynamodbav:"labor_price,omitempty"`
	Position      int                  `dynamodbav:"position"`
	EstimateItems []estimateItemRecord `dynamodbav:"estimate_items,omitempty"`
}

type estimateItemRecord struct {
	ID            string  `dynamodbav:"id"`
	ItemType      string  `dynamodbav:"item_type"`
	Description   string  `dynamodbav:"description,omitempty"`
	Quantity      float64 `dynamodbav:"quantity"`
	Cost          float64 `dynamodbav:"cost"`
	PricePerUnit  float64 `dynamodbav:"price_per_unit"`
	PartNumber    string  `dynamodbav:"part_number,omitempty"`
	SavedThrough  string  `dynamodbav:"saved_through,omitempty"`
	TotalQuantity float64 `dynamodbav:"total_quantity"`
	Additional    bool    `dynamodbav:"additional,omitempty"`
	PackageAdd    float64 `dynamodbav:"package_add,omitempty"`
	FeeAmount     float64 `dynamodbav:"fee_amount,omitempty"`
	FeePercentage float64 `dynamodbav:"fee_percentage,omitempty"`
	BaseItemID    string  `dynamodbav:"base_item_id,omitempty"`
	NeedsReview   bool    `dynamodbav:"needs_review,omitempty"`
	OrderedAt     string  `dynamodbav:"ordered_at,omitempty"`
	ReceivedAt    string  `dynamodbav:"received_at,omitempty"`
}

// jobCounterRecord is the per-shop sequence item, stored in the jobs table
// under a synthetic id so no second table is needed.
type jobCounterRecord struct {
	Seq int64 `dynamodbav:"seq"`
}

// JobDynamoRepository persists Job aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// A job record nests its job items and estimate lines. Every unit of work
// goes through a single writer for its job, so a whole-record put is the
// update primitive; only the per-shop job number sequence needs an atomic
// ADD.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobRecord(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var rec jobRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Job{}, err
	}
	return fromJobRecord(rec), nil
}

func (r *JobDynamoRepository) Save(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobRecord(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

// NextJobNumber advances the per-shop sequence with an atomic ADD and
// returns the new value.
func (r *JobDynamoRepository) NextJobNumber(ctx context.Context, shopID string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: fmt.Sprintf("jobnumber#%s", shopID)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var rec jobCounterRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return 0, err
	}
	return rec.Seq, nil
}

func toJobRecord(j entities.Job) jobRecord {
	items := make([]jobItemRecord, 0, len(j.Items))
	for _, it := range j.Items {
		items = append(items, toJobItemRecord(it))
	}
	return jobRecord{
		ID:              j.ID,
		ShopID:          j.ShopID,
		JobNumber:       j.JobNumber,
		LifecycleState:  string(j.LifecycleState),
		CustomerStatus:  int(j.CustomerStatus),
		ApprovalStatus:  string(j.ApprovalStatus),
		IsEstimate:      j.IsEstimate,
		StateClosed:     j.StateClosed,
		ProfitCenter:    j.ProfitCenter,
		TechnicianRate:  j.TechnicianRate,
		TaxRates:        taxRatesRecord(j.TaxRates),
		Items:           items,
		FinalizedAt:     formatOptTime(j.FinalizedAt),
		ClosedAt:        formatOptTime(j.ClosedAt),
		WorkStartedAt:   formatOptTime(j.WorkStartedAt),
		WorkCompletedAt: formatOptTime(j.WorkCompletedAt),
		StateChangedAt:  formatTime(j.StateChangedAt),
		CreatedAt:       formatTime(j.CreatedAt),
		UpdatedAt:       formatTime(j.UpdatedAt),
	}
}

func fromJobRecord(rec jobRecord) entities.Job {
	items := make([]entities.JobItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, fromJobItemRecord(rec.ID, it))
	}
	return entities.Job{
		ID:              rec.ID,
		ShopID:          rec.ShopID,
		JobNumber:       rec.JobNumber,
		LifecycleState:  entities.LifecycleState(rec.LifecycleState),
		CustomerStatus:  entities.CustomerStatus(rec.CustomerStatus),
		ApprovalStatus:  entities.ApprovalStatus(rec.ApprovalStatus),
		IsEstimate:      rec.IsEstimate,
		StateClosed:     rec.StateClosed,
		ProfitCenter:    rec.ProfitCenter,
		TechnicianRate:  rec.TechnicianRate,
		TaxRates:        entities.TaxRates(rec.TaxRates),
		Items:           items,
		FinalizedAt:     parseOptTime(rec.FinalizedAt),
		ClosedAt:        parseOptTime(rec.ClosedAt),
		WorkStartedAt:   parseOptTime(rec.WorkStartedAt),
		WorkCompletedAt: parseOptTime(rec.WorkCompletedAt),
		StateChangedAt:  parseTime(rec.StateChangedAt),
		CreatedAt:       parseTime(rec.CreatedAt),
		UpdatedAt:       parseTime(rec.UpdatedAt),
	}
}

func toJobItemRecord(it entities.JobItem) jobItemRecord {
	lines := make([]estimateItemRecord, 0, len(it.EstimateItems))
	for _, ei := range it.EstimateItems {
		lines = append(lines, estimateItemRecord{
			ID:            ei.ID,
			ItemType:      string(ei.ItemType),
			Description:   ei.Description,
			Quantity:      ei.Quantity,
			Cost:          ei.Cost,
			PricePerUnit:  ei.PricePerUnit,
			PartNumber:    ei.PartNumber,
			SavedThrough:  ei.SavedThrough,
			TotalQuantity: ei.TotalQuantity,
			Additional:    ei.Additional,
			PackageAdd:    ei.PackageAdd,
			FeeAmount:     ei.FeeAmount,
			FeePercentage: ei.FeePercentage,
			BaseItemID:    ei.BaseItemID,
			NeedsReview:   ei.NeedsReview,
			OrderedAt:     formatOptTime(ei.OrderedAt),
			ReceivedAt:    formatOptTime(ei.ReceivedAt),
		})
	}
	return jobItemRecord{
		ID:            it.ID,
		Description:   it.Description,
		State:         string(it.State),
		ApprovalType:  it.ApprovalType,
		PackagePrice:  it.PackagePrice,
		LaborPrice:    it.LaborPrice,
		Position:      it.Position,
		EstimateItems: lines,
	}
}

func fromJobItemRecord(jobID string, rec jobItemRecord) entities.JobItem {
	lines := make([]entities.EstimateItem, 0, len(rec.EstimateItems))
	for _, ei := range rec.EstimateItems {
		lines = append(lines, entities.EstimateItem{
			ID:            ei.ID,
			JobItemID:     rec.ID,
			ItemType:      entities.ItemType(ei.ItemType),
			Description:   ei.Description,
			Quantity:      ei.Quantity,
			Cost:          ei.Cost,
			PricePerUnit:  ei.PricePerUnit,
			PartNumber:    ei.PartNumber,
			SavedThrough:  ei.SavedThrough,
			TotalQuantity: ei.TotalQuantity,
			Additional:    ei.Additional,
			PackageAdd:    ei.PackageAdd,
			FeeAmount:     ei.FeeAmount,
			FeePercentage: ei.FeePercentage,
			BaseItemID:    ei.BaseItemID,
			NeedsReview:   ei.NeedsReview,
			OrderedAt:     parseOptTime(ei.OrderedAt),
			ReceivedAt:    parseOptTime(ei.ReceivedAt),
		})
	}
	return entities.JobItem{
		ID:            rec.ID,
		JobID:         jobID,
		Description:   rec.Description,
		State:         entities.JobItemState(rec.State),
		ApprovalType:  rec.ApprovalType,
		PackagePrice:  rec.PackagePrice,
		LaborPrice:    rec.LaborPrice,
		Position:      rec.Position,
		EstimateItems: lines,
	}
}
