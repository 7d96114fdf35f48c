// Package dynamo loads datasets from a DynamoDB table.
//
// Each table item is one row:
//
//	item      N  row position, unique
//	features  S  "0101..." or "0 1 0 1 ..."
//	label     S  optional
//
// Rows are ordered by item regardless of scan order.
package dynamo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/artgo/dataset"
)

// Attribute names.
const (
	AttrItem     = "item"
	AttrFeatures = "features"
	AttrLabel    = "label"
)

// Load scans table and returns its rows as a validated matrix.
func Load(ctx context.Context, client dynamodb.ScanAPIClient, table string) (*dataset.Matrix, error) {
	p := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName:            aws.String(table),
		ProjectionExpression: aws.String("#i, #f, #l"),
		ExpressionAttributeNames: map[string]string{
			"#i": AttrItem,
			"#f": AttrFeatures,
			"#l": AttrLabel,
		},
	})

	var records []dataset.Record
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamo: scan %s: %w", table, err)
		}
		for _, item := range page.Items {
			rec, err := decode(item)
			if err != nil {
				return nil, fmt.Errorf("dynamo: %s: %w", table, err)
			}
			records = append(records, rec)
		}
	}

	m, err := dataset.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("dynamo: %s: %w", table, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func decode(item map[string]types.AttributeValue) (dataset.Record, error) {
	n, ok := item[AttrItem].(*types.AttributeValueMemberN)
	if !ok {
		return dataset.Record{}, fmt.Errorf("%w: missing numeric %q attribute", dataset.ErrFormat, AttrItem)
	}
	idx, err := strconv.Atoi(n.Value)
	if err != nil {
		return dataset.Record{}, fmt.Errorf("%w: %s %q: %v", dataset.ErrFormat, AttrItem, n.Value, err)
	}

	f, ok := item[AttrFeatures].(*types.AttributeValueMemberS)
	if !ok {
		return dataset.Record{}, fmt.Errorf("%w: item %d: missing string %q attribute", dataset.ErrFormat, idx, AttrFeatures)
	}

	rec := dataset.Record{Item: idx, Features: f.Value}
	if l, ok := item[AttrLabel].(*types.AttributeValueMemberS); ok {
		rec.Label = l.Value
	}
	return rec, nil
}
