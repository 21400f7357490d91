package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"storefront/models"
	"storefront/utils"
)

func observedLogger() (*utils.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return &utils.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestPersistenceSwallowsAndLogsFailures(t *testing.T) {
	ctx := context.Background()
	log, logs := observedLogger()
	p := NewPersistence(failingRepository{}, log)

	items, ok := p.Load(ctx, "7")
	assert.False(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	p.Save(ctx, "7", []models.CartItem{testItem("a", 1, 1)})
	p.AppendOrder(ctx, "7", models.Order{OrderID: "ORD-1"})

	entries := logs.FilterMessage("cart storage unavailable").All()
	require.Len(t, entries, 3)

	var ops []string
	for _, e := range entries {
		ops = append(ops, e.ContextMap()["op"].(string))
	}
	assert.Equal(t, []string{"load", "save", "append_order"}, ops)
	assert.Equal(t, "cart:7", entries[0].ContextMap()["key"])
	assert.Equal(t, "orders:7", entries[2].ContextMap()["key"])
}

func TestPersistenceOrdersReturnsErrors(t *testing.T) {
	p := NewPersistence(failingRepository{}, utils.NewNop())
	_, err := p.Orders(context.Background(), "7")
	assert.ErrorIs(t, err, errStorageDown)
}
