package db

import "time"

// InteractionLog stores one LLM call. Rows are append-only; text columns are
// nullable, so they map to pointers.
type InteractionLog struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	UserPrompt  *string `gorm:"column:user_prompt;type:text" json:"user_prompt"`
	LLMResponse *string `gorm:"column:llm_response;type:text" json:"llm_response"`
	ModelUsed   *string `gorm:"column:model_used;type:varchar(255)" json:"model_used"`
	// 由数据库默认值填充，写入时忽略
	Timestamp time.Time `gorm:"column:timestamp;<-:false" json:"timestamp"`
	IPAddress *string   `gorm:"column:ip_address;type:varchar(64)" json:"ip_address"`
}

// TableName 指定表名
func (InteractionLog) TableName() string {
	return "llm_interactions_log"
}
