package prompt

import (
	"strings"

	"apnadost/backend/internal/model"
)

// Assemble flattens a conversation into the single linear prompt the
// generation endpoint expects. The system prompt comes first as its own turn,
// then every history entry in order, then the new message, ending with an
// "assistant:" cue with no trailing content so the model produces the
// continuation.
//
// The function is pure and order-preserving. Missing history fields get
// defaults (role "user", empty content) instead of being skipped. No
// truncation or token budgeting is applied; arbitrarily long history passes
// through unmodified.
func Assemble(systemPrompt string, history []model.HistoryEntry, newMessage string) string {
	var b strings.Builder

	b.WriteString("system: ")
	b.WriteString(systemPrompt)
	b.WriteString("\n")

	for _, entry := range history {
		role := entry.Role
		if role == "" {
			role = "user"
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}

	b.WriteString("user: ")
	b.WriteString(newMessage)
	b.WriteString("\n")
	b.WriteString("assistant:")

	return b.String()
}
