package repository

import (
	"context"
	"time"

	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "manager_sessions"

// dynamoAPI is the slice of the DynamoDB client the session store uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type sessionItem struct {
	ID        string `dynamodbav:"id"`
	Token     string `dynamodbav:"token"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	TTL       int64  `dynamodbav:"ttl,omitempty"`
}

// SessionDynamoRepository persists manager sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: ttl (epoch seconds), so expired sessions are reaped
type SessionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb dynamoAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            sessionKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       sessionKey(id),
	})
	return err
}

func sessionKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:        s.ID,
		Token:     s.Token,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.UTC().Format(time.RFC3339Nano)
		it.TTL = s.ExpiresAt.Unix()
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var expiresAt time.Time
	if it.ExpiresAt != "" {
		expiresAt, _ = time.Parse(time.RFC3339Nano, it.ExpiresAt)
	}
	return entities.Session{
		ID:        it.ID,
		Token:     it.Token,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
}
