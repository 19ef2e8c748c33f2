package model

import (
	"designers/internal/config"
	"designers/internal/database"
	"designers/internal/model/sql"
)

// InitRepository 初始化仓库的辅助函数
//
// Nothing is opened here: connections are acquired per operation, so a
// missing or unreachable store only surfaces at first use.
func InitRepository(cfg *config.Config) (Repository, database.Provider) {
	provider := database.NewProvider(*cfg)
	return sql.NewGormRepository(provider), provider
}
