package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIsolationLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected IsolationLevel
		sqlName  string
	}{
		{"", IsolationDefault, "DEFAULT"},
		{"default", IsolationDefault, "DEFAULT"},
		{"read_committed", IsolationReadCommitted, "READ COMMITTED"},
		{" Repeatable_Read ", IsolationRepeatableRead, "REPEATABLE READ"},
		{"SERIALIZABLE", IsolationSerializable, "SERIALIZABLE"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseIsolationLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
			assert.Equal(t, tc.sqlName, level.String())
		})
	}
}

func TestParseIsolationLevelRejectsUnknown(t *testing.T) {
	_, err := ParseIsolationLevel("read_uncommitted")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read_uncommitted")
}
