/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"github.com/friendsincode/openhours/internal/models"
)

// DynamoConfig configures the DynamoDB-backed catalog.
type DynamoConfig struct {
	Region          string
	Table           string
	Endpoint        string // For DynamoDB Local / LocalStack
	AccessKeyID     string // Optional static credentials; default chain otherwise
	SecretAccessKey string
}

// DynamoStore reads the schedule catalog from a DynamoDB table using a
// filtered scan. The catalog is small, so a scan with the candidate
// predicate pushed into the filter expression keeps the evaluator's input
// set tiny without a query index.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
	logger zerolog.Logger
}

// NewDynamoStore resolves AWS configuration and returns a catalog bound to
// the configured table.
func NewDynamoStore(ctx context.Context, cfg DynamoConfig, logger zerolog.Logger) (*DynamoStore, error) {
	if cfg.Table == "" {
		return nil, fmt.Errorf("dynamodb table name required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &DynamoStore{
		client: client,
		table:  cfg.Table,
		logger: logger.With().Str("component", "dynamo-store").Logger(),
	}, nil
}

// Fetch scans the table with the candidate predicate as a filter
// expression, the same shape the predicate takes in Matches.
func (d *DynamoStore) Fetch(ctx context.Context, weekday, formattedDate, scope string) ([]models.ScheduleRecord, error) {
	kind := expression.Name("type")
	scopeEq := expression.Name("WHCType").Equal(expression.Value(scope))

	filter := expression.Or(
		kind.Equal(expression.Value(models.KindEmergencyAll)),
		kind.Equal(expression.Value(models.KindEmergency)).And(scopeEq),
		kind.Equal(expression.Value(models.KindWeather)).And(scopeEq),
		kind.Equal(expression.Value(models.KindWeeklyHours)).
			And(expression.Name("day").Equal(expression.Value(weekday))).
			And(scopeEq),
		kind.Equal(expression.Value(models.KindHoliday)).
			And(expression.Name("date").Equal(expression.Value(formattedDate))).
			And(scopeEq),
	)

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, &DataAccessError{Op: "build filter", Err: err}
	}

	var records []models.ScheduleRecord
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{
		TableName:                 aws.String(d.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &DataAccessError{Op: "scan", Err: err}
		}

		var pageRecords []models.ScheduleRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
			return nil, &DataAccessError{Op: "unmarshal", Err: err}
		}
		records = append(records, pageRecords...)
	}

	sortByUpdate(records)
	d.logger.Debug().Int("count", len(records)).Str("scope", scope).Msg("schedule records fetched")
	return records, nil
}

// Put writes records with PutItem. Only the importer uses this path, so
// item-at-a-time is fine.
func (d *DynamoStore) Put(ctx context.Context, records ...models.ScheduleRecord) error {
	for _, rec := range records {
		item, err := attributevalue.MarshalMap(rec)
		if err != nil {
			return &DataAccessError{Op: "marshal", Err: err}
		}
		if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(d.table),
			Item:      item,
		}); err != nil {
			return &DataAccessError{Op: "put", Err: err}
		}
	}
	return nil
}
