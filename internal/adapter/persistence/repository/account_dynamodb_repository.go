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

const accountsUsernameIndex = "username-index"

type accountItem struct {
	Email          string `dynamodbav:"email"`
	ID             string `dynamodbav:"id"`
	Username       string `dynamodbav:"username"`
	PasswordHash   string `dynamodbav:"password_hash"`
	Role           string `dynamodbav:"role"`
	FullName       string `dynamodbav:"full_name,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	EmailConfirmed bool   `dynamodbav:"email_confirmed"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// AccountDynamoRepository persists credential records in DynamoDB.
//
// Table requirements:
//   - PK: email (string, lower-cased)
//   - GSI username-index: username (HASH)
//
// Keying on e-mail makes "one account per e-mail" a conditional put.
type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client, tableName string) *AccountDynamoRepository {
	return &AccountDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Account{}, interfaces.ErrDuplicate
		}
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"email": stringAV(email)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Account, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accountsUsernameIndex),
		KeyConditionExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": stringAV(username),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Items) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Email:          a.Email,
		ID:             a.ID,
		Username:       a.Username,
		PasswordHash:   a.PasswordHash,
		Role:           string(a.Role),
		FullName:       a.FullName,
		Phone:          a.Phone,
		EmailConfirmed: a.EmailConfirmed,
		CreatedAt:      formatTime(a.CreatedAt),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		ID:             it.ID,
		Username:       it.Username,
		Email:          it.Email,
		PasswordHash:   it.PasswordHash,
		Role:           entities.Role(it.Role),
		FullName:       it.FullName,
		Phone:          it.Phone,
		EmailConfirmed: it.EmailConfirmed,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
