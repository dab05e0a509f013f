package repository

import (
	"context"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type partnerInquiryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	Company     string `dynamodbav:"company,omitempty"`
	PartnerType string `dynamodbav:"partner_type"`
	Message     string `dynamodbav:"message"`
	Status      string `dynamodbav:"status"`
	SubmittedAt string `dynamodbav:"submitted_at"`
}

type PartnerInquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartnerInquiryRepository = (*PartnerInquiryDynamoRepository)(nil)

func NewPartnerInquiryDynamoRepository(ddb *dynamodb.Client, tableName string) *PartnerInquiryDynamoRepository {
	return &PartnerInquiryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PartnerInquiryDynamoRepository) Create(ctx context.Context, p entities.PartnerInquiry) (entities.PartnerInquiry, error) {
	av, err := attributevalue.MarshalMap(toPartnerInquiryItem(p))
	if err != nil {
		return entities.PartnerInquiry{}, err
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
			return entities.PartnerInquiry{}, interfaces.ErrDuplicate
		}
		return entities.PartnerInquiry{}, err
	}
	return p, nil
}

func (r *PartnerInquiryDynamoRepository) List(ctx context.Context) ([]entities.PartnerInquiry, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.PartnerInquiry, 0, len(raws))
	for _, raw := range raws {
		var it partnerInquiryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPartnerInquiryItem(it))
	}
	return items, nil
}

func toPartnerInquiryItem(p entities.PartnerInquiry) partnerInquiryItem {
	return partnerInquiryItem{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Company:     p.Company,
		PartnerType: string(p.PartnerType),
		Message:     p.Message,
		Status:      p.Status,
		SubmittedAt: formatTime(p.SubmittedAt),
	}
}

func fromPartnerInquiryItem(it partnerInquiryItem) entities.PartnerInquiry {
	return entities.PartnerInquiry{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		Company:     it.Company,
		PartnerType: entities.PartnerType(it.PartnerType),
		Message:     it.Message,
		Status:      it.Status,
		SubmittedAt: parseTime(it.SubmittedAt),
	}
}
