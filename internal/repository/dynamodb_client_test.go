package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"smartassist-bot/internal/domain"
)

type fakeDynamo struct {
	getOut       *dynamodb.GetItemOutput
	getErr       error
	putErr       error
	lastGetInput *dynamodb.GetItemInput
	lastPutInput *dynamodb.PutItemInput
	putCalls     int
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGetInput = in
	return f.getOut, f.getErr
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPutInput = in
	f.putCalls++
	return &dynamodb.PutItemOutput{}, f.putErr
}

const convKey = "omnichannel/conversations/conv-1"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mustNewClient(t *testing.T, db *fakeDynamo, opts ...Option) *Client {
	t.Helper()
	c, err := New(db, "state-table", opts...)
	require.NoError(t, err)
	c.now = func() time.Time { return fixedNow }
	return c
}

func keyValue(t *testing.T, m map[string]types.AttributeValue, name string) string {
	t.Helper()
	v, ok := m[name].(*types.AttributeValueMemberS)
	require.True(t, ok, name)
	return v.Value
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil, "state-table")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestNew_EmptyTableName(t *testing.T) {
	_, err := New(&fakeDynamo{}, " ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}

func TestGetConversationData_Missing(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{}}
	c := mustNewClient(t, db)

	data, found, err := c.GetConversationData(context.Background(), convKey)
	require.NoError(t, err)
	require.False(t, found)
	require.False(t, data.Escalated)

	require.Equal(t, "state-table", *db.lastGetInput.TableName)
	require.True(t, *db.lastGetInput.ConsistentRead)
	require.Equal(t, "STATE#"+convKey, keyValue(t, db.lastGetInput.Key, "PK"))
	require.Equal(t, "ConversationData", keyValue(t, db.lastGetInput.Key, "SK"))
}

func TestGetConversationData_Escalated(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"PK":          &types.AttributeValueMemberS{Value: "STATE#" + convKey},
		"SK":          &types.AttributeValueMemberS{Value: skConversationData},
		"isEscalated": &types.AttributeValueMemberBOOL{Value: true},
	}}}
	c := mustNewClient(t, db)

	data, found, err := c.GetConversationData(context.Background(), convKey)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, data.Escalated)
}

func TestGetConversationData_MissingFlagDefaultsFalse(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "STATE#" + convKey},
	}}}
	c := mustNewClient(t, db)

	data, found, err := c.GetConversationData(context.Background(), convKey)
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, data.Escalated)
}

func TestGetConversationData_MalformedFlag(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"isEscalated": &types.AttributeValueMemberS{Value: "true"},
	}}}
	c := mustNewClient(t, db)

	_, _, err := c.GetConversationData(context.Background(), convKey)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestGetConversationData_GetItemError(t *testing.T) {
	boom := errors.New("ResourceNotFoundException")
	db := &fakeDynamo{getErr: boom}
	c := mustNewClient(t, db)

	_, _, err := c.GetConversationData(context.Background(), convKey)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "GetConversationData")
}

func TestGetConversationData_EmptyKey(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	_, _, err := c.GetConversationData(context.Background(), " ")
	require.Error(t, err)
	require.Nil(t, db.lastGetInput)
}

func TestSaveConversationData_WritesItem(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db, WithTTL(24*time.Hour))

	err := c.SaveConversationData(context.Background(), convKey, domain.ConversationData{Escalated: true})
	require.NoError(t, err)

	item := db.lastPutInput.Item
	require.Equal(t, "state-table", *db.lastPutInput.TableName)
	require.Equal(t, "STATE#"+convKey, keyValue(t, item, "PK"))
	require.Equal(t, "ConversationData", keyValue(t, item, "SK"))
	require.True(t, item["isEscalated"].(*types.AttributeValueMemberBOOL).Value)
	require.Equal(t, "2026-03-01T12:00:00Z", keyValue(t, item, "updatedAt"))
	require.Equal(t, strconv.FormatInt(fixedNow.Add(24*time.Hour).Unix(), 10), item["ttl"].(*types.AttributeValueMemberN).Value)
}

func TestSaveConversationData_DefaultTTL(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db, WithTTL(0))

	require.NoError(t, c.SaveConversationData(context.Background(), convKey, domain.ConversationData{}))
	want := strconv.FormatInt(fixedNow.Add(defaultTTL).Unix(), 10)
	require.Equal(t, want, db.lastPutInput.Item["ttl"].(*types.AttributeValueMemberN).Value)
}

func TestSaveConversationData_DynamoError(t *testing.T) {
	db := &fakeDynamo{putErr: errors.New("ProvisionedThroughputExceededException")}
	c := mustNewClient(t, db)

	err := c.SaveConversationData(context.Background(), convKey, domain.ConversationData{Escalated: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "SaveConversationData")
}

func TestSaveConversationData_EmptyKey(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	err := c.SaveConversationData(context.Background(), "", domain.ConversationData{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
	require.Zero(t, db.putCalls)
}

func TestGetUserData_HappyPath(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: "user-1"},
	}}}
	c := mustNewClient(t, db)

	data, found, err := c.GetUserData(context.Background(), "omnichannel/users/user-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "user-1", data.UserID)
	require.Equal(t, "UserData", keyValue(t, db.lastGetInput.Key, "SK"))
}

func TestGetUserData_MissingUserID(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "STATE#omnichannel/users/user-1"},
	}}}
	c := mustNewClient(t, db)

	_, _, err := c.GetUserData(context.Background(), "omnichannel/users/user-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "userId")
}

func TestSaveUserData_WritesItem(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	err := c.SaveUserData(context.Background(), "omnichannel/users/user-1", domain.UserData{UserID: "user-1"})
	require.NoError(t, err)
	require.Equal(t, "UserData", keyValue(t, db.lastPutInput.Item, "SK"))
	require.Equal(t, "user-1", keyValue(t, db.lastPutInput.Item, "userId"))
}

func TestSaveUserData_DynamoError(t *testing.T) {
	db := &fakeDynamo{putErr: errors.New("internal server error")}
	c := mustNewClient(t, db)

	err := c.SaveUserData(context.Background(), "omnichannel/users/user-1", domain.UserData{UserID: "user-1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "SaveUserData")
}

func TestStatePK(t *testing.T) {
	require.Equal(t, "STATE#msteams/conversations/a", statePK("msteams/conversations/a"))
}
