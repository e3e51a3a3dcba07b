/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kindstore"
	"github.com/suparena/kindstore/config"
	"github.com/suparena/kindstore/errors"
	"github.com/suparena/kindstore/logging"
)

var log = logging.GetLogger("seed/ddb")

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros replaces every {Name} in template with values[Name].
// Unknown macros are an error so that a typo never selects an empty partition.
func expandMacros(template string, values map[string]string) (string, error) {
	var missing []string
	expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
		key := strings.Trim(macro, "{}")
		val, ok := values[key]
		if !ok {
			missing = append(missing, key)
			return ""
		}
		return val
	})
	if len(missing) > 0 {
		return "", errors.NewValidationError("partition_template",
			fmt.Sprintf("unknown macro(s) %s in %q", strings.Join(missing, ", "), template))
	}
	return expanded, nil
}

// NewClient builds a DynamoDB client. Static credentials are used when both
// keys are set, otherwise the default credential chain.
func NewClient(ctx context.Context, cfg config.DynamoDB) (*sdk.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	log.WithField("table", cfg.Table).
		WithField("region", cfg.Region).
		Debug("DynamoDB client initialized")
	return client, nil
}

// TableConfig locates a kind's records in a single-table design.
type TableConfig struct {
	Table string
	// PartitionKey is the partition key attribute of the table or index.
	PartitionKey string
	// PartitionTemplate is expanded with {Kind}, e.g. "KIND#{Kind}".
	PartitionTemplate string
	// IndexName queries a secondary index when set.
	IndexName string
	// PageSize limits items per request; zero leaves it to DynamoDB.
	PageSize int32
}

// TableConfigFrom maps the tooling configuration onto a TableConfig.
func TableConfigFrom(cfg config.DynamoDB) TableConfig {
	return TableConfig{
		Table:             cfg.Table,
		PartitionKey:      cfg.PartitionKey,
		PartitionTemplate: cfg.PartitionTemplate,
		IndexName:         cfg.IndexName,
	}
}

// Table is a seed source reading one kind's partition. Items are decoded
// with json tags, so generated records need no extra annotations.
type Table[T kindstore.Entity] struct {
	client    sdk.QueryAPIClient
	cfg       TableConfig
	kind      string
	partition string
}

// NewTable creates a Table source for the records of kind.
func NewTable[T kindstore.Entity](client sdk.QueryAPIClient, cfg TableConfig, kind string, opts ...Option) (*Table[T], error) {
	if cfg.Table == "" {
		return nil, errors.NewValidationError("table", "no table name given")
	}
	if cfg.PartitionKey == "" {
		return nil, errors.NewValidationError("partition_key", "no partition key attribute given")
	}
	partition, err := expandMacros(cfg.PartitionTemplate, map[string]string{"Kind": kind})
	if err != nil {
		return nil, err
	}
	if partition == "" {
		return nil, errors.NewValidationError("partition_template", "template expands to an empty partition")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T]{
		client:    retryClient{next: client, opts: o},
		cfg:       cfg,
		kind:      kind,
		partition: partition,
	}, nil
}

func (t *Table[T]) Name() string {
	return fmt.Sprintf("dynamodb://%s/%s", t.cfg.Table, t.partition)
}

// Partition returns the expanded partition value queried by t.
func (t *Table[T]) Partition() string { return t.partition }

// Records queries every page of the kind's partition.
func (t *Table[T]) Records(ctx context.Context) ([]T, error) {
	keyCond := "#pk = :pkVal"
	input := &sdk.QueryInput{
		TableName:              aws.String(t.cfg.Table),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeNames: map[string]string{
			"#pk": t.cfg.PartitionKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pkVal": &types.AttributeValueMemberS{Value: t.partition},
		},
	}
	if t.cfg.IndexName != "" {
		input.IndexName = aws.String(t.cfg.IndexName)
	}
	if t.cfg.PageSize > 0 {
		input.Limit = aws.Int32(t.cfg.PageSize)
	}

	records := []T{}
	pages := 0
	paginator := sdk.NewQueryPaginator(t.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", t.Name(), err)
		}
		pages++

		var page []T
		if err := attributevalue.UnmarshalListOfMapsWithOptions(out.Items, &page, func(o *attributevalue.DecoderOptions) {
			o.TagKey = "json"
		}); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s items: %w", t.kind, err)
		}
		records = append(records, page...)
	}

	log.WithField("kind", t.kind).
		WithField("partition", t.partition).
		WithField("pages", pages).
		Debugf("read %d items", len(records))
	return records, nil
}
