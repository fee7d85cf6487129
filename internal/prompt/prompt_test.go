package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnadost/backend/internal/model"
	"apnadost/backend/internal/prompt"
)

func TestAssemble_OrderAndCue(t *testing.T) {
	history := []model.HistoryEntry{{Role: "user", Content: "hi"}}

	got := prompt.Assemble("Be kind.", history, "hello")

	// The prompt must contain the system preamble, then the history turn, then
	// the new message, and end with the bare assistant cue.
	sysIdx := strings.Index(got, "system: Be kind.")
	hiIdx := strings.Index(got, "user: hi\n")
	helloIdx := strings.Index(got, "user: hello\n")
	require.NotEqual(t, -1, sysIdx)
	require.NotEqual(t, -1, hiIdx)
	require.NotEqual(t, -1, helloIdx)
	assert.Less(t, sysIdx, hiIdx)
	assert.Less(t, hiIdx, helloIdx)
	assert.True(t, strings.HasSuffix(got, "assistant:"))
}

func TestAssemble_Deterministic(t *testing.T) {
	history := []model.HistoryEntry{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "second"},
		{Role: "user", Content: "third"},
	}

	a := prompt.Assemble("sys", history, "msg")
	b := prompt.Assemble("sys", history, "msg")

	assert.Equal(t, a, b)

	// Every entry is rendered, in order, with no reordering or skipping.
	assert.Less(t, strings.Index(a, "user: first"), strings.Index(a, "assistant: second"))
	assert.Less(t, strings.Index(a, "assistant: second"), strings.Index(a, "user: third"))
}

func TestAssemble_MissingFieldsGetDefaults(t *testing.T) {
	history := []model.HistoryEntry{
		{Content: "no role"},
		{Role: "assistant"},
	}

	got := prompt.Assemble("sys", history, "msg")

	assert.Contains(t, got, "user: no role\n")
	assert.Contains(t, got, "assistant: \n")
}

func TestAssemble_EmptyHistory(t *testing.T) {
	got := prompt.Assemble("sys", nil, "just this")

	assert.Equal(t, "system: sys\nuser: just this\nassistant:", got)
}
