package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"smartassist-bot/internal/domain"
)

const (
	pkPrefix           = "STATE#"
	skConversationData = "ConversationData"
	skUserData         = "UserData"
	defaultTTL         = 30 * 24 * time.Hour
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Client stores turn state in a single DynamoDB table keyed by state key (PK)
// and property name (SK).
type Client struct {
	api       dynamodbAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

type Option func(*Client)

// WithTTL sets how long a record lives after its last save. Zero or negative
// values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string, opts ...Option) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	c := &Client{api: api, tableName: tableName, ttl: defaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// statePK returns the partition key for a state key.
func statePK(key string) string {
	return pkPrefix + key
}

func (c *Client) ttlValue() int64 {
	return c.now().Add(c.ttl).Unix()
}

// GetConversationData reads the conversation record. found is false when the
// conversation has no stored state.
func (c *Client) GetConversationData(ctx context.Context, key string) (domain.ConversationData, bool, error) {
	item, err := c.getItem(ctx, key, skConversationData)
	if err != nil {
		return domain.ConversationData{}, false, fmt.Errorf("repository: GetConversationData: %w", err)
	}
	if item == nil {
		return domain.ConversationData{}, false, nil
	}
	escalated, err := boolAttr(item, "isEscalated")
	if err != nil {
		return domain.ConversationData{}, false, fmt.Errorf("repository: GetConversationData decode: %w", err)
	}
	return domain.ConversationData{Escalated: escalated}, true, nil
}

// SaveConversationData writes or replaces the conversation record.
func (c *Client) SaveConversationData(ctx context.Context, key string, data domain.ConversationData) error {
	if err := validKey(key); err != nil {
		return fmt.Errorf("repository: SaveConversationData: %w", err)
	}
	item := c.baseItem(key, skConversationData)
	item["isEscalated"] = &types.AttributeValueMemberBOOL{Value: data.Escalated}
	if err := c.putItem(ctx, item); err != nil {
		return fmt.Errorf("repository: SaveConversationData: %w", err)
	}
	return nil
}

// GetUserData reads the user record. found is false for unseen users.
func (c *Client) GetUserData(ctx context.Context, key string) (domain.UserData, bool, error) {
	item, err := c.getItem(ctx, key, skUserData)
	if err != nil {
		return domain.UserData{}, false, fmt.Errorf("repository: GetUserData: %w", err)
	}
	if item == nil {
		return domain.UserData{}, false, nil
	}
	userID, err := strAttr(item, "userId")
	if err != nil {
		return domain.UserData{}, false, fmt.Errorf("repository: GetUserData decode: %w", err)
	}
	return domain.UserData{UserID: userID}, true, nil
}

// SaveUserData writes or replaces the user record.
func (c *Client) SaveUserData(ctx context.Context, key string, data domain.UserData) error {
	if err := validKey(key); err != nil {
		return fmt.Errorf("repository: SaveUserData: %w", err)
	}
	item := c.baseItem(key, skUserData)
	item["userId"] = &types.AttributeValueMemberS{Value: data.UserID}
	if err := c.putItem(ctx, item); err != nil {
		return fmt.Errorf("repository: SaveUserData: %w", err)
	}
	return nil
}

func (c *Client) getItem(ctx context.Context, key, sk string) (map[string]types.AttributeValue, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: statePK(key)},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out == nil || len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (c *Client) putItem(ctx context.Context, item map[string]types.AttributeValue) error {
	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      item,
	})
	return err
}

func (c *Client) baseItem(key, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: statePK(key)},
		"SK":        &types.AttributeValueMemberS{Value: sk},
		"updatedAt": &types.AttributeValueMemberS{Value: c.now().UTC().Format(time.RFC3339)},
		"ttl":       &types.AttributeValueMemberN{Value: strconv.FormatInt(c.ttlValue(), 10)},
	}
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("state key is required")
	}
	return nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

// boolAttr treats a missing attribute as false so records written before the
// attribute existed still load.
func boolAttr(item map[string]types.AttributeValue, key string) (bool, error) {
	v, ok := item[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(*types.AttributeValueMemberBOOL)
	if !ok {
		return false, fmt.Errorf("repository: attribute %q is not a bool", key)
	}
	return b.Value, nil
}
