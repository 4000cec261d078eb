package archive

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DDBClient is the subset of the DynamoDB API used by DDBCommitStore.
// *dynamodb.Client satisfies it; tests substitute a mock.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DDBCommitStore publishes manifests through DynamoDB conditional writes,
// providing the compare-and-swap semantics plain object storage lacks.
// Multiple writers can safely race; exactly one wins each version.
//
// Table schema:
//   - Partition key: base_uri (string) - identifies the archive location
//   - Sort key: version (number) - monotonically increasing version
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name bibgo-commits \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DDBCommitStore struct {
	client    DDBClient
	tableName string
	baseURI   string // partition key, e.g. "s3://bucket/prefix"
}

// NewDDBCommitStore creates a DynamoDB-backed commit store. baseURI
// identifies the archive location and becomes the partition key, so one
// table can serve many archives.
func NewDDBCommitStore(client DDBClient, tableName, baseURI string) *DDBCommitStore {
	return &DDBCommitStore{
		client:    client,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

// Current returns the manifest name of the latest committed version.
func (s *DDBCommitStore) Current(ctx context.Context) (string, error) {
	_, manifest, err := s.latest(ctx)
	if err != nil {
		return "", err
	}
	if manifest == "" {
		return "", ErrNotFound
	}
	return manifest, nil
}

// Commit publishes a manifest as the given version. The conditional put
// succeeds for exactly one writer per version.
func (s *DDBCommitStore) Commit(ctx context.Context, manifest string, seq uint64) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri":      &types.AttributeValueMemberS{Value: s.baseURI},
			"version":       &types.AttributeValueMemberN{Value: strconv.FormatUint(seq, 10)},
			"manifest_path": &types.AttributeValueMemberS{Value: manifest},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrConcurrentCommit
		}
		return fmt.Errorf("commit version %d: %w", seq, err)
	}
	return nil
}

// latest queries the highest committed version for this archive.
func (s *DDBCommitStore) latest(ctx context.Context) (uint64, string, error) {
	resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.baseURI},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("query commits: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute")
	}
	pathAttr, ok := item["manifest_path"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid manifest_path attribute")
	}

	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse version: %w", err)
	}

	return version, pathAttr.Value, nil
}
