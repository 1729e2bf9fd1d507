package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Canonical(t *testing.T) {
	for _, raw := range []string{"Pending", "In Progress", "On Scene", "Resolved"} {
		parsed, ok := ParseStatus(raw)
		require.True(t, ok, "статус %q должен быть каноническим", raw)
		assert.Equal(t, Status(raw), parsed)
	}
}

func TestParseStatus_Rejected(t *testing.T) {
	// Перечень закрытый: регистр, пробелы и произвольные значения отклоняются
	for _, raw := range []string{"", "pending", "PENDING", "In progress", "Dispatched", " Resolved"} {
		_, ok := ParseStatus(raw)
		assert.False(t, ok, "статус %q не должен приниматься", raw)
	}
}

func TestStatus_IsResolved(t *testing.T) {
	assert.True(t, StatusResolved.IsResolved())
	assert.False(t, StatusPending.IsResolved())
	assert.False(t, StatusInProgress.IsResolved())
	assert.False(t, StatusOnScene.IsResolved())
	// Неканонический статус из старых данных остаётся активным
	assert.False(t, Status("Dispatched").IsResolved())
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		current    Status
		wantNext   Status
		wantAction string
	}{
		{StatusPending, StatusInProgress, "Accept"},
		{StatusInProgress, StatusOnScene, "Arrived on Scene"},
		{StatusOnScene, StatusResolved, "Mark as Resolved"},
	}

	for _, tt := range tests {
		next, action, ok := tt.current.Next()
		require.True(t, ok)
		assert.Equal(t, tt.wantNext, next)
		assert.Equal(t, tt.wantAction, action)
	}

	// У завершённой заявки перехода нет
	_, _, ok := StatusResolved.Next()
	assert.False(t, ok)
}

func TestStatus_Variant(t *testing.T) {
	assert.Equal(t, "warning", StatusPending.Variant())
	assert.Equal(t, "info", StatusInProgress.Variant())
	assert.Equal(t, "primary", StatusOnScene.Variant())
	assert.Equal(t, "success", StatusResolved.Variant())
	assert.Equal(t, "secondary", Status("Dispatched").Variant())
}
