package repository

import (
	"context"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type scrapSellerItem struct {
	UID         string `dynamodbav:"uid"`
	Email       string `dynamodbav:"email"`
	DisplayName string `dynamodbav:"display_name"`
	PhotoURL    string `dynamodbav:"photo_url"`
	PhoneNumber string `dynamodbav:"phone_number"`
	Address     string `dynamodbav:"address"`
	City        string `dynamodbav:"city"`
	State       string `dynamodbav:"state"`
	Pincode     string `dynamodbav:"pincode"`
	PanCard     string `dynamodbav:"pan_card"`
	CarNumber   string `dynamodbav:"car_number"`
	Verified    bool   `dynamodbav:"verified"`
	LoginMethod string `dynamodbav:"login_method"`
	CreatedAt   string `dynamodbav:"created_at"`
	LastLoginAt string `dynamodbav:"last_login_at"`
}

// ScrapSellerDynamoRepository stores federated seller profiles (PK: uid).
type ScrapSellerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScrapSellerRepository = (*ScrapSellerDynamoRepository)(nil)

func NewScrapSellerDynamoRepository(ddb *dynamodb.Client, tableName string) *ScrapSellerDynamoRepository {
	return &ScrapSellerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ScrapSellerDynamoRepository) Create(ctx context.Context, s entities.ScrapSeller) (entities.ScrapSeller, error) {
	return r.put(ctx, s, "attribute_not_exists(#uid)", interfaces.ErrDuplicate)
}

// Update replaces the stored profile; a zero value is returned for an unknown uid.
func (r *ScrapSellerDynamoRepository) Update(ctx context.Context, s entities.ScrapSeller) (entities.ScrapSeller, error) {
	return r.put(ctx, s, "attribute_exists(#uid)", nil)
}

func (r *ScrapSellerDynamoRepository) put(ctx context.Context, s entities.ScrapSeller, condition string, onConditionFailed error) (entities.ScrapSeller, error) {
	av, err := attributevalue.MarshalMap(toScrapSellerItem(s))
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#uid": "uid",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.ScrapSeller{}, onConditionFailed
		}
		return entities.ScrapSeller{}, err
	}
	return s, nil
}

func (r *ScrapSellerDynamoRepository) GetByUID(ctx context.Context, uid string) (entities.ScrapSeller, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"uid": stringAV(uid)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScrapSeller{}, nil
	}
	var it scrapSellerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ScrapSeller{}, err
	}
	return fromScrapSellerItem(it), nil
}

func toScrapSellerItem(s entities.ScrapSeller) scrapSellerItem {
	return scrapSellerItem{
		UID:         s.UID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		PhotoURL:    s.PhotoURL,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Pincode:     s.Pincode,
		PanCard:     s.PanCard,
		CarNumber:   s.CarNumber,
		Verified:    s.Verified,
		LoginMethod: s.LoginMethod,
		CreatedAt:   formatTime(s.CreatedAt),
		LastLoginAt: formatTime(s.LastLoginAt),
	}
}

func fromScrapSellerItem(it scrapSellerItem) entities.ScrapSeller {
	return entities.ScrapSeller{
		UID:         it.UID,
		Email:       it.Email,
		DisplayName: it.DisplayName,
		PhotoURL:    it.PhotoURL,
		PhoneNumber: it.PhoneNumber,
		Address:     it.Address,
		City:        it.City,
		State:       it.State,
		Pincode:     it.Pincode,
		PanCard:     it.PanCard,
		CarNumber:   it.CarNumber,
		Verified:    it.Verified,
		LoginMethod: it.LoginMethod,
		CreatedAt:   parseTime(it.CreatedAt),
		LastLoginAt: parseTime(it.LastLoginAt),
	}
}
