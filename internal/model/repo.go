package model

import (
	"context"
	"designers/internal/entity/db"
	"designers/internal/entity/dto"
)

// Repository 定义数据库操作接口
//
// Every method acquires its own connection and releases it before returning.
// Failures are database.ErrNotFound, database.ErrEmptySearchTerm,
// *database.MissingFieldError or *database.StoreError.
type Repository interface {
	// 设计师目录
	ListDesigners(ctx context.Context) ([]db.Designer, error)
	GetDesigner(ctx context.Context, id uint) (*db.Designer, error)
	SearchDesigners(ctx context.Context, term string) ([]db.Designer, error)
	CreateDesigner(ctx context.Context, req dto.CreateDesignerRequest) (*db.Designer, error)

	// LLM 调用日志
	CreateInteraction(ctx context.Context, entry *db.InteractionLog) error
	ListInteractions(ctx context.Context) ([]db.InteractionLog, error)
}
