package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

// Well-known document keys. The whole saved-quotes collection lives under one
// key and the settings singleton under another; each write replaces the full
// blob. Last write wins.
const (
	DocumentKeyQuotes   = "quotes"
	DocumentKeySettings = "settings"
)

type documentItem struct {
	Key       string `dynamodbav:"key"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository is a string-keyed store of whole-document JSON
// blobs in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

// Get returns the raw JSON blob stored under key, or nil when the document
// does not exist yet.
func (r *DocumentDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Data), nil
}

// Put overwrites the whole document stored under key.
func (r *DocumentDynamoRepository) Put(ctx context.Context, key string, blob []byte) error {
	it := documentItem{
		Key:       key,
		Data:      string(blob),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
