package converter

import (
	"designers/internal/entity/db"
	"designers/internal/entity/dto"
)

// InteractionLogToItem converts db.InteractionLog to dto.InteractionLogItem.
func InteractionLogToItem(l *db.InteractionLog) dto.InteractionLogItem {
	if l == nil {
		return dto.InteractionLogItem{}
	}
	return dto.InteractionLogItem{
		ID:          l.ID,
		UserPrompt:  l.UserPrompt,
		LLMResponse: l.LLMResponse,
		ModelUsed:   l.ModelUsed,
		Timestamp:   l.Timestamp,
		IPAddress:   l.IPAddress,
	}
}

// InteractionLogsToItems converts a slice of db.InteractionLog.
func InteractionLogsToItems(logs []db.InteractionLog) []dto.InteractionLogItem {
	items := make([]dto.InteractionLogItem, len(logs))
	for i := range logs {
		items[i] = InteractionLogToItem(&logs[i])
	}
	return items
}
