package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":     "t-1",
		"amount": "100.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
	after := time.Now()

	assert.Equal(t, "transaction.created", evt.Type)
	assert.Equal(t, EntityTypeTransaction, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before.UTC()) && !evt.Timestamp.After(after.UTC()))
}

func TestEvent_ToJSON(t *testing.T) {
	payload := map[string]interface{}{
		"id": "b-42",
	}

	evt := NewEvent(EventTypeUpdated, EntityTypeBudget, payload)

	data, err := evt.ToJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	var decoded map[string]interface{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "budget.updated", decoded["type"])
	assert.Equal(t, "budget", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestTransactionEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{
		"id":     "t-1",
		"amount": "50.00",
	}

	t.Run("TransactionCreated", func(t *testing.T) {
		evt := TransactionCreated(payload)
		assert.Equal(t, "transaction.created", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("TransactionUpdated", func(t *testing.T) {
		evt := TransactionUpdated(payload)
		assert.Equal(t, "transaction.updated", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
	})

	t.Run("TransactionDeleted", func(t *testing.T) {
		evt := TransactionDeleted(payload)
		assert.Equal(t, "transaction.deleted", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
	})
}

func TestCategoryEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"id": "c-1", "name": "Groceries"}

	t.Run("CategoryCreated", func(t *testing.T) {
		evt := CategoryCreated(payload)
		assert.Equal(t, "category.created", evt.Type)
		assert.Equal(t, EntityTypeCategory, evt.Entity)
	})

	t.Run("CategoryUpdated", func(t *testing.T) {
		evt := CategoryUpdated(payload)
		assert.Equal(t, "category.updated", evt.Type)
	})

	t.Run("CategoryDeleted", func(t *testing.T) {
		evt := CategoryDeleted(payload)
		assert.Equal(t, "category.deleted", evt.Type)
	})

	t.Run("CategoriesSeeded", func(t *testing.T) {
		evt := CategoriesSeeded([]interface{}{payload})
		assert.Equal(t, "category.seeded", evt.Type)
		assert.Equal(t, EntityTypeCategory, evt.Entity)
	})
}

func TestBudgetEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"id": "b-1", "limit": "1000"}

	t.Run("BudgetCreated", func(t *testing.T) {
		evt := BudgetCreated(payload)
		assert.Equal(t, "budget.created", evt.Type)
		assert.Equal(t, EntityTypeBudget, evt.Entity)
	})

	t.Run("BudgetUpdated", func(t *testing.T) {
		evt := BudgetUpdated(payload)
		assert.Equal(t, "budget.updated", evt.Type)
	})

	t.Run("BudgetDeleted", func(t *testing.T) {
		evt := BudgetDeleted(payload)
		assert.Equal(t, "budget.deleted", evt.Type)
	})
}
