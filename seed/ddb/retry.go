/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Option configures a Table.
type Option func(*options)

type options struct {
	maxRetries   int
	retryBackoff time.Duration
}

func defaultOptions() options {
	return options{
		maxRetries:   3,
		retryBackoff: time.Second,
	}
}

// WithMaxRetries sets how often a throttled page query is retried.
func WithMaxRetries(retries int) Option {
	return func(o *options) {
		o.maxRetries = retries
	}
}

// WithRetryBackoff sets the base delay between retries. Attempt n waits n times the base.
func WithRetryBackoff(backoff time.Duration) Option {
	return func(o *options) {
		o.retryBackoff = backoff
	}
}

// retryClient retries throttled or transient page queries on top of the SDK's own retryer.
type retryClient struct {
	next sdk.QueryAPIClient
	opts options
}

func (r retryClient) Query(ctx context.Context, input *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= r.opts.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := r.next.Query(ctx, input, optFns...)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < r.opts.maxRetries {
			log.WithError(err).WithField("attempt", attempt+1).Warn("retrying query")
			backoff := time.Duration(attempt+1) * r.opts.retryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", r.opts.maxRetries, lastErr)
}

// isRetryableError reports whether err is a throttling or transient DynamoDB failure.
func isRetryableError(err error) bool {
	var (
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		internal   *types.InternalServerError
	)
	if stderrors.As(err, &throughput) || stderrors.As(err, &limit) || stderrors.As(err, &internal) {
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if stderrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}
