package contextutil_test

import (
	"context"
	"testing"

	"salary-bench/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetRequestID(ctx))

	ctx = contextutil.WithRequestID(ctx, "rid-1")
	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	scoped := zap.NewExample().Named("scoped")

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
