package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo/dataset"
)

type mockScanClient struct {
	mock.Mock
}

func (m *mockScanClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.ScanOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func row(item, features string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrItem:     &types.AttributeValueMemberN{Value: item},
		AttrFeatures: &types.AttributeValueMemberS{Value: features},
	}
}

func firstPage(in *dynamodb.ScanInput) bool { return in.ExclusiveStartKey == nil }

func TestLoad_Paginated(t *testing.T) {
	client := new(mockScanClient)

	labeled := row("0", "1100")
	labeled[AttrLabel] = &types.AttributeValueMemberS{Value: "alice"}
	lastKey := map[string]types.AttributeValue{AttrItem: &types.AttributeValueMemberN{Value: "2"}}

	client.On("Scan", mock.Anything, mock.MatchedBy(firstPage)).Return(&dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{row("2", "0011"), labeled},
		LastEvaluatedKey: lastKey,
	}, nil).Once()
	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return !firstPage(in) && aws.ToString(in.TableName) == "purchases"
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{row("1", "0110")},
	}, nil).Once()

	m, err := Load(context.Background(), client, "purchases")
	require.NoError(t, err)

	assert.Equal(t, 4, m.Features)
	assert.Equal(t, [][]uint8{{1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 1, 1}}, m.Rows)
	assert.Equal(t, "alice", m.Label(0))
	assert.Equal(t, "2", m.Label(2))
	client.AssertExpectations(t)
}

func TestLoad_ScanError(t *testing.T) {
	client := new(mockScanClient)
	boom := errors.New("throttled")
	client.On("Scan", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := Load(context.Background(), client, "t")
	assert.ErrorIs(t, err, boom)
}

func TestLoad_BadItems(t *testing.T) {
	tests := []struct {
		name string
		item map[string]types.AttributeValue
	}{
		{"MissingItem", map[string]types.AttributeValue{AttrFeatures: &types.AttributeValueMemberS{Value: "1"}}},
		{"StringItem", map[string]types.AttributeValue{
			AttrItem:     &types.AttributeValueMemberS{Value: "1"},
			AttrFeatures: &types.AttributeValueMemberS{Value: "1"},
		}},
		{"FractionalItem", row("1.5", "1")},
		{"MissingFeatures", map[string]types.AttributeValue{AttrItem: &types.AttributeValueMemberN{Value: "1"}}},
		{"NotBinary", row("1", "102")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockScanClient)
			client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{tt.item},
			}, nil)

			_, err := Load(context.Background(), client, "t")
			assert.ErrorIs(t, err, dataset.ErrFormat)
		})
	}
}

func TestLoad_EmptyTable(t *testing.T) {
	client := new(mockScanClient)
	client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{}, nil)

	_, err := Load(context.Background(), client, "t")
	assert.ErrorIs(t, err, dataset.ErrFormat)
}
