package repository

import (
	"context"
	"time"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const scrapBuyersEmailIndex = "email-index"

type scrapBuyerItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id,omitempty"`
	FullName        string `dynamodbav:"full_name"`
	Phone           string `dynamodbav:"phone"`
	Email           string `dynamodbav:"email"`
	PanCard         string `dynamodbav:"pan_card"`
	Address         string `dynamodbav:"address,omitempty"`
	City            string `dynamodbav:"city,omitempty"`
	State           string `dynamodbav:"state,omitempty"`
	Pincode         string `dynamodbav:"pincode,omitempty"`
	CarNumber       string `dynamodbav:"car_number,omitempty"`
	Verified        bool   `dynamodbav:"verified"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	ReviewedAt      string `dynamodbav:"reviewed_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ScrapBuyerDynamoRepository persists ScrapBuyer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email (HASH)
type ScrapBuyerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScrapBuyerRepository = (*ScrapBuyerDynamoRepository)(nil)

func NewScrapBuyerDynamoRepository(ddb *dynamodb.Client, tableName string) *ScrapBuyerDynamoRepository {
	return &ScrapBuyerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ScrapBuyerDynamoRepository) Create(ctx context.Context, b entities.ScrapBuyer) (entities.ScrapBuyer, error) {
	av, err := attributevalue.MarshalMap(toScrapBuyerItem(b))
	if err != nil {
		return entities.ScrapBuyer{}, err
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
			return entities.ScrapBuyer{}, interfaces.ErrDuplicate
		}
		return entities.ScrapBuyer{}, err
	}
	return b, nil
}

func (r *ScrapBuyerDynamoRepository) GetByID(ctx context.Context, id string) (entities.ScrapBuyer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAV(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScrapBuyer{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScrapBuyer{}, nil
	}
	var it scrapBuyerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ScrapBuyer{}, err
	}
	return fromScrapBuyerItem(it), nil
}

func (r *ScrapBuyerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.ScrapBuyer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(scrapBuyersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": stringAV(email),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ScrapBuyer{}, err
	}
	if len(out.Items) == 0 {
		return entities.ScrapBuyer{}, nil
	}
	var it scrapBuyerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ScrapBuyer{}, err
	}
	return fromScrapBuyerItem(it), nil
}

func (r *ScrapBuyerDynamoRepository) List(ctx context.Context) ([]entities.ScrapBuyer, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.ScrapBuyer, 0, len(raws))
	for _, raw := range raws {
		var it scrapBuyerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromScrapBuyerItem(it))
	}
	return items, nil
}

// UpdateReview records a staff decision. Approval clears any previous rejection reason.
func (r *ScrapBuyerDynamoRepository) UpdateReview(ctx context.Context, id string, verified bool, reason string, at time.Time) (entities.ScrapBuyer, error) {
	ts := formatTime(at)
	expr := "SET #verified = :verified, #reviewed_at = :at, #updated_at = :at"
	names := map[string]string{
		"#verified":    "verified",
		"#reviewed_at": "reviewed_at",
		"#updated_at":  "updated_at",
		"#reason":      "rejection_reason",
	}
	values := map[string]types.AttributeValue{
		":verified": &types.AttributeValueMemberBOOL{Value: verified},
		":at":       stringAV(ts),
	}
	if verified {
		expr += " REMOVE #reason"
	} else {
		expr += ", #reason = :reason"
		values[":reason"] = stringAV(reason)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": stringAV(id)},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.ScrapBuyer{}, nil
		}
		return entities.ScrapBuyer{}, err
	}
	var it scrapBuyerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ScrapBuyer{}, err
	}
	return fromScrapBuyerItem(it), nil
}

func toScrapBuyerItem(b entities.ScrapBuyer) scrapBuyerItem {
	return scrapBuyerItem{
		ID:              b.ID,
		UserID:          b.UserID,
		FullName:        b.FullName,
		Phone:           b.Phone,
		Email:           b.Email,
		PanCard:         b.PanCard,
		Address:         b.Address,
		City:            b.City,
		State:           b.State,
		Pincode:         b.Pincode,
		CarNumber:       b.CarNumber,
		Verified:        b.Verified,
		RejectionReason: b.RejectionReason,
		ReviewedAt:      formatTimePtr(b.ReviewedAt),
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

func fromScrapBuyerItem(it scrapBuyerItem) entities.ScrapBuyer {
	return entities.ScrapBuyer{
		ID:              it.ID,
		UserID:          it.UserID,
		FullName:        it.FullName,
		Phone:           it.Phone,
		Email:           it.Email,
		PanCard:         it.PanCard,
		Address:         it.Address,
		City:            it.City,
		State:           it.State,
		Pincode:         it.Pincode,
		CarNumber:       it.CarNumber,
		Verified:        it.Verified,
		RejectionReason: it.RejectionReason,
		ReviewedAt:      parseTimePtr(it.ReviewedAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
