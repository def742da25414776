package repository

import (
	"context"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsTokenIndex       = "token-index"
)

type transactionItem struct {
	ID          string            `dynamodbav:"id"`
	Type        string            `dynamodbav:"type"`
	Amount      float64           `dynamodbav:"amount"`
	Currency    string            `dynamodbav:"currency,omitempty"`
	Description string            `dynamodbav:"description,omitempty"`
	PayerEmail  string            `dynamodbav:"payer_email,omitempty"`
	PayerID     string            `dynamodbav:"payer_id,omitempty"`
	Metadata    map[string]string `dynamodbav:"metadata,omitempty"`

	Authorised            bool   `dynamodbav:"authorised"`
	Token                 string `dynamodbav:"token,omitempty"`
	RedirectURL           string `dynamodbav:"redirect_url,omitempty"`
	ProviderTransactionID string `dynamodbav:"provider_transaction_id,omitempty"`
	ProviderStatus        string `dynamodbav:"provider_status,omitempty"`
	RawResponse           string `dynamodbav:"raw_response,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB,
// carrying the redirect token across the browser round trip.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: token-index (PK: token)
//
// Card data is deliberately not persisted.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsTokenIndex),
		KeyConditionExpression: aws.String("#token = :tok"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tok": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Currency:    t.Currency,
		Description: t.Description,
		PayerEmail:  t.PayerEmail,
		PayerID:     t.PayerID,
		Metadata:    t.Metadata,

		Authorised:            t.Authorised,
		Token:                 t.Token,
		RedirectURL:           t.RedirectURL,
		ProviderTransactionID: t.ProviderTransactionID,
		ProviderStatus:        t.ProviderStatus,
		RawResponse:           string(t.RawResponse),

		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		ID:          it.ID,
		Type:        entities.TransactionType(it.Type),
		Amount:      it.Amount,
		Currency:    it.Currency,
		Description: it.Description,
		PayerEmail:  it.PayerEmail,
		PayerID:     it.PayerID,
		Metadata:    it.Metadata,

		Authorised:            it.Authorised,
		Token:                 it.Token,
		RedirectURL:           it.RedirectURL,
		ProviderTransactionID: it.ProviderTransactionID,
		ProviderStatus:        it.ProviderStatus,
		RawResponse:           []byte(it.RawResponse),

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
