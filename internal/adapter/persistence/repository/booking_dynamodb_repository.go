package repository

import (
	"context"
	"sort"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	bookingsStatusIndex = "status-index"
	bookingsUserIndex   = "user_id-index"
)

type scrapItemAV struct {
	Type   string  `dynamodbav:"type"`
	Weight float64 `dynamodbav:"weight"`
}

type bookingItem struct {
	ID                  string        `dynamodbav:"id"`
	UserID              string        `dynamodbav:"user_id"`
	FullName            string        `dynamodbav:"full_name"`
	Email               string        `dynamodbav:"email"`
	Phone               string        `dynamodbav:"phone"`
	Address             string        `dynamodbav:"address"`
	City                string        `dynamodbav:"city"`
	District            string        `dynamodbav:"district"`
	State               string        `dynamodbav:"state"`
	Pincode             string        `dynamodbav:"pincode"`
	ScrapTypes          []scrapItemAV `dynamodbav:"scrap_types"`
	TotalWeight         float64       `dynamodbav:"total_weight"`
	EstimatedValue      float64       `dynamodbav:"estimated_value"`
	OwnTransport        bool          `dynamodbav:"own_transport"`
	PickupDate          string        `dynamodbav:"pickup_date"`
	PickupTime          string        `dynamodbav:"pickup_time"`
	SpecialInstructions string        `dynamodbav:"special_instructions,omitempty"`
	Status              string        `dynamodbav:"status"`
	CompletedBy         string        `dynamodbav:"completed_by,omitempty"`
	CancellationReason  string        `dynamodbav:"cancellation_reason,omitempty"`
	CreatedAt           string        `dynamodbav:"created_at"`
	UpdatedAt           string        `dynamodbav:"updated_at"`
	CompletedAt         string        `dynamodbav:"completed_at,omitempty"`
	CancelledAt         string        `dynamodbav:"cancelled_at,omitempty"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (HASH), created_at (RANGE)
//   - GSI user_id-index: user_id (HASH), created_at (RANGE)
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		if isConditionFailed(err) {
			return entities.Booking{}, interfaces.ErrDuplicate
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// List returns bookings newest first. A user filter queries user_id-index and
// narrows by status server-side; a status-only filter queries status-index;
// an empty filter scans the table.
func (r *BookingDynamoRepository) List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error) {
	var raws []map[string]types.AttributeValue
	var err error

	switch {
	case filter.UserID != "":
		in := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(bookingsUserIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": stringAV(filter.UserID),
			},
			ScanIndexForward: aws.Bool(false),
		}
		if filter.Status != "" {
			in.FilterExpression = aws.String("#status = :status")
			in.ExpressionAttributeNames = map[string]string{"#status": "status"}
			in.ExpressionAttributeValues[":status"] = stringAV(string(filter.Status))
		}
		raws, err = r.query(ctx, in)
	case filter.Status != "":
		raws, err = r.query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(bookingsStatusIndex),
			KeyConditionExpression:   aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{"#status": "status"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": stringAV(string(filter.Status)),
			},
			ScanIndexForward: aws.Bool(false),
		})
	default:
		raws, err = scanAll(ctx, r.ddb, r.tableName)
	}
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(raws))
	for _, raw := range raws {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *BookingDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var out []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

// Transition writes the new status only if the stored status still equals t.From.
func (r *BookingDynamoRepository) Transition(ctx context.Context, id string, t entities.BookingTransition) (entities.Booking, error) {
	at := formatTime(t.At)
	expr := "SET #status = :to, #updated_at = :at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":   stringAV(string(t.To)),
		":from": stringAV(string(t.From)),
		":at":   stringAV(at),
	}
	switch t.To {
	case entities.BookingStatusCompleted:
		expr += ", #completed_at = :at"
		names["#completed_at"] = "completed_at"
		if t.CompletedBy != "" {
			expr += ", #completed_by = :by"
			names["#completed_by"] = "completed_by"
			values[":by"] = stringAV(t.CompletedBy)
		}
	case entities.BookingStatusCancelled:
		expr += ", #cancelled_at = :at, #reason = :reason"
		names["#cancelled_at"] = "cancelled_at"
		names["#reason"] = "cancellation_reason"
		values[":reason"] = stringAV(t.CancellationReason)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func scanAll(ctx context.Context, ddb *dynamodb.Client, table string) ([]map[string]types.AttributeValue, error) {
	var out []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	items := make([]scrapItemAV, 0, len(b.ScrapTypes))
	for _, it := range b.ScrapTypes {
		items = append(items, scrapItemAV{Type: string(it.Type), Weight: it.Weight})
	}
	return bookingItem{
		ID:                  b.ID,
		UserID:              b.UserID,
		FullName:            b.FullName,
		Email:               b.Email,
		Phone:               b.Phone,
		Address:             b.Address,
		City:                b.City,
		District:            b.District,
		State:               b.State,
		Pincode:             b.Pincode,
		ScrapTypes:          items,
		TotalWeight:         b.TotalWeight,
		EstimatedValue:      b.EstimatedValue,
		OwnTransport:        b.OwnTransport,
		PickupDate:          b.PickupDate,
		PickupTime:          string(b.PickupTime),
		SpecialInstructions: b.SpecialInstructions,
		Status:              string(b.Status),
		CompletedBy:         b.CompletedBy,
		CancellationReason:  b.CancellationReason,
		CreatedAt:           formatTime(b.CreatedAt),
		UpdatedAt:           formatTime(b.UpdatedAt),
		CompletedAt:         formatTimePtr(b.CompletedAt),
		CancelledAt:         formatTimePtr(b.CancelledAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	items := make([]entities.ScrapItem, 0, len(it.ScrapTypes))
	for _, s := range it.ScrapTypes {
		items = append(items, entities.ScrapItem{Type: entities.ScrapType(s.Type), Weight: s.Weight})
	}
	return entities.Booking{
		ID:                  it.ID,
		UserID:              it.UserID,
		FullName:            it.FullName,
		Email:               it.Email,
		Phone:               it.Phone,
		Address:             it.Address,
		City:                it.City,
		District:            it.District,
		State:               it.State,
		Pincode:             it.Pincode,
		ScrapTypes:          items,
		TotalWeight:         it.TotalWeight,
		EstimatedValue:      it.EstimatedValue,
		OwnTransport:        it.OwnTransport,
		PickupDate:          it.PickupDate,
		PickupTime:          entities.PickupSlot(it.PickupTime),
		SpecialInstructions: it.SpecialInstructions,
		Status:              entities.BookingStatus(it.Status),
		CompletedBy:         it.CompletedBy,
		CancellationReason:  it.CancellationReason,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		CompletedAt:         parseTimePtr(it.CompletedAt),
		CancelledAt:         parseTimePtr(it.CancelledAt),
	}
}
