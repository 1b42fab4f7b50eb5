package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// DynamoAPI is the slice of the DynamoDB client the store layer uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// DynamoService wraps the DynamoDB client with the access patterns the
// domain services share: point reads, conditional creates, atomic field
// updates, GSI queries, counted scans, transactional multi-document commits
// and chunked batch deletes.
type DynamoService struct {
	Client DynamoAPI
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// GetItem retrieves an item from DynamoDB. Returns models.ErrNotFound when
// no document exists under the key.
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}

	if output.Item == nil {
		return nil, models.ErrNotFound
	}

	return output.Item, nil
}

// marshalItem marshals with timestamps in the fixed-width layout so stored
// time attributes stay comparable by the lexicographic range filters.
func marshalItem(item interface{}) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(item, func(o *attributevalue.EncoderOptions) {
		o.EncodeTime = func(t time.Time) (types.AttributeValue, error) {
			return utils.TimeAttr(t), nil
		}
	})
}

// PutItem marshals and writes an item unconditionally.
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaledItem, err := marshalItem(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// PutItemIfAbsent writes the item only when no document already exists under
// keyAttr. Returns true when this call created the document, false when one
// was already there. Both directions of a mutual swipe can race here; the
// condition on the canonical key is what keeps the pair down to one match.
func (ds *DynamoService) PutItemIfAbsent(ctx context.Context, tableName string, item interface{}, keyAttr string) (bool, error) {
	marshaledItem, err := marshalItem(item)
	if err != nil {
		return false, fmt.Errorf("failed to marshal item: %w", err)
	}

	condition := "attribute_not_exists(#pk)"
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                &tableName,
		Item:                     marshaledItem,
		ConditionExpression:      &condition,
		ExpressionAttributeNames: map[string]string{"#pk": keyAttr},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, fmt.Errorf("failed to conditionally put item in table '%s': %w", tableName, err)
	}
	return true, nil
}

// UpdateItem applies a raw update expression to one document.
func (ds *DynamoService) UpdateItem(
	ctx context.Context,
	tableName string,
	updateExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, errors.New("update failed: key cannot be empty")
	}
	if updateExpression == "" {
		return nil, errors.New("update failed: updateExpression cannot be empty")
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 &tableName,
		Key:                       key,
		UpdateExpression:          &updateExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}

	output, err := ds.Client.UpdateItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update item in table '%s': %w", tableName, err)
	}

	if output.Attributes == nil {
		return map[string]types.AttributeValue{}, nil
	}
	return output.Attributes, nil
}

// IncrementFields atomically adds the given deltas to number attributes and
// overwrites the given set attributes, in one update. Increments commute, so
// concurrent handlers bumping the same document never need coordination.
func (ds *DynamoService) IncrementFields(
	ctx context.Context,
	tableName string,
	key map[string]types.AttributeValue,
	add map[string]float64,
	set map[string]types.AttributeValue,
) error {
	if len(add) == 0 && len(set) == 0 {
		return errors.New("increment failed: nothing to update")
	}

	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var addParts, setParts []string

	for i, field := range sortedKeys(add) {
		n := fmt.Sprintf("#a%d", i)
		v := fmt.Sprintf(":a%d", i)
		names[n] = field
		values[v] = &types.AttributeValueMemberN{Value: formatNumber(add[field])}
		addParts = append(addParts, n+" "+v)
	}
	for i, field := range sortedAttrKeys(set) {
		n := fmt.Sprintf("#s%d", i)
		v := fmt.Sprintf(":s%d", i)
		names[n] = field
		values[v] = set[field]
		setParts = append(setParts, n+" = "+v)
	}

	var expr []string
	if len(addParts) > 0 {
		expr = append(expr, "ADD "+strings.Join(addParts, ", "))
	}
	if len(setParts) > 0 {
		expr = append(expr, "SET "+strings.Join(setParts, ", "))
	}

	_, err := ds.UpdateItem(ctx, tableName, strings.Join(expr, " "), key, values, names)
	return err
}

// QueryItemsWithIndex queries items from DynamoDB using a Global Secondary
// Index (GSI), following pagination until limit matching documents are
// collected or the key range is exhausted. DynamoDB applies a request Limit
// to the items it evaluates before the filter expression runs, so a single
// page can come back empty while matches still sit behind LastEvaluatedKey;
// limit here caps filtered results, never evaluated items. limit <= 0 means
// no cap.
func (ds *DynamoService) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	filterExpression string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:                 &tableName,
			IndexName:                 &indexName,
			KeyConditionExpression:    &keyConditionExpression,
			ExpressionAttributeValues: expressionAttributeValues,
			ExclusiveStartKey:         startKey,
		}
		if len(expressionAttributeNames) > 0 {
			input.ExpressionAttributeNames = expressionAttributeNames
		}
		if filterExpression != "" {
			input.FilterExpression = &filterExpression
		}

		output, err := ds.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query GSI '%s': %w", indexName, err)
		}

		for _, item := range output.Items {
			items = append(items, item)
			if limit > 0 && len(items) >= int(limit) {
				return items, nil
			}
		}

		if output.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// CountItemsWithIndex counts documents matching a key condition on a GSI,
// following pagination so counts past one page stay correct.
func (ds *DynamoService) CountItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
) (int, error) {
	var total int
	var startKey map[string]types.AttributeValue

	for {
		output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 &tableName,
			IndexName:                 &indexName,
			KeyConditionExpression:    &keyConditionExpression,
			ExpressionAttributeValues: expressionAttributeValues,
			Select:                    types.SelectCount,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to count items on GSI '%s': %w", indexName, err)
		}
		total += int(output.Count)
		if output.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// ScanWithFilter scans a table with a filter expression, following
// pagination until limit matching documents are collected or the table is
// exhausted. limit <= 0 means no cap.
func (ds *DynamoService) ScanWithFilter(
	ctx context.Context,
	tableName string,
	filterExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         &tableName,
			ExclusiveStartKey: startKey,
		}
		if filterExpression != "" {
			input.FilterExpression = &filterExpression
			input.ExpressionAttributeValues = expressionAttributeValues
		}
		if len(expressionAttributeNames) > 0 {
			input.ExpressionAttributeNames = expressionAttributeNames
		}

		output, err := ds.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
		}

		for _, item := range output.Items {
			items = append(items, item)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}

		if output.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// CountWithFilter counts documents matching a filter expression across the
// whole table. An empty filter counts every document.
func (ds *DynamoService) CountWithFilter(
	ctx context.Context,
	tableName string,
	filterExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (int, error) {
	var total int
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         &tableName,
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		}
		if filterExpression != "" {
			input.FilterExpression = &filterExpression
			input.ExpressionAttributeValues = expressionAttributeValues
		}
		if len(expressionAttributeNames) > 0 {
			input.ExpressionAttributeNames = expressionAttributeNames
		}

		output, err := ds.Client.Scan(ctx, input)
		if err != nil {
			return 0, fmt.Errorf("failed to count on table '%s': %w", tableName, err)
		}
		total += int(output.Count)
		if output.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// FieldUpdate is one document's worth of a transactional multi-document
// commit: the key plus the attributes to overwrite.
type FieldUpdate struct {
	Key map[string]types.AttributeValue
	Set map[string]types.AttributeValue
}

// transactChunkSize is the DynamoDB TransactWriteItems item ceiling.
const transactChunkSize = 100

// TransactUpdateFields applies the updates in all-or-nothing transactions.
// Updates beyond one transaction's ceiling commit chunk by chunk; a chunk
// failure aborts the remainder, leaving it untouched for the caller's next
// pass.
func (ds *DynamoService) TransactUpdateFields(ctx context.Context, tableName string, updates []FieldUpdate) error {
	for start := 0; start < len(updates); start += transactChunkSize {
		end := start + transactChunkSize
		if end > len(updates) {
			end = len(updates)
		}

		var items []types.TransactWriteItem
		for _, u := range updates[start:end] {
			names := map[string]string{}
			values := map[string]types.AttributeValue{}
			var parts []string
			for i, field := range sortedAttrKeys(u.Set) {
				n := fmt.Sprintf("#f%d", i)
				v := fmt.Sprintf(":v%d", i)
				names[n] = field
				values[v] = u.Set[field]
				parts = append(parts, n+" = "+v)
			}
			expr := "SET " + strings.Join(parts, ", ")

			items = append(items, types.TransactWriteItem{
				Update: &types.Update{
					TableName:                 &tableName,
					Key:                       u.Key,
					UpdateExpression:          &expr,
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			})
		}

		_, err := ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
		})
		if err != nil {
			return fmt.Errorf("failed to commit transactional update on table '%s': %w", tableName, err)
		}
	}
	return nil
}

// BatchDeleteItems deletes the keyed documents in write batches of 25.
func (ds *DynamoService) BatchDeleteItems(ctx context.Context, tableName string, keys []map[string]types.AttributeValue) error {
	const maxBatchSize = 25

	for i := 0; i < len(keys); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(keys) {
			end = len(keys)
		}

		var requests []types.WriteRequest
		for _, key := range keys[i:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}

		_, err := ds.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				tableName: requests,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to batch delete items from table '%s': %w", tableName, err)
		}
	}

	return nil
}

// StringKey builds the single-attribute string key the tables here use.
func StringKey(attr, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attr: &types.AttributeValueMemberS{Value: value},
	}
}

func formatNumber(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%f", f), "0"), ".")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAttrKeys(m map[string]types.AttributeValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
