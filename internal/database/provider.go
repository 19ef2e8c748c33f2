package database

import (
	"context"
	"designers/internal/config"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Provider hands out a live database handle for one logical operation.
// Callers must Release the connection on every exit path.
type Provider interface {
	Acquire(ctx context.Context) (*Conn, error)
}

// Conn is a database handle scoped to one operation.
type Conn struct {
	DB *gorm.DB

	release func() error
	once    sync.Once
}

func newConn(db *gorm.DB, release func() error) *Conn {
	return &Conn{DB: db, release: release}
}

// Release returns the handle. Calling it more than once is harmless.
func (c *Conn) Release() {
	if c == nil {
		return
	}
	c.once.Do(func() {
		if c.release == nil {
			return
		}
		if err := c.release(); err != nil {
			logrus.WithError(err).Warn("failed to close database connection")
		}
	})
}

// NewProvider 根据配置选择每次调用新建连接或共享连接池
func NewProvider(cfg config.Config) Provider {
	if cfg.DBPooled {
		return NewPooledProvider(cfg)
	}
	return NewPerCallProvider(cfg)
}

// PerCallProvider opens a brand new connection for every Acquire and closes
// it on Release. Nothing is reused across requests.
type PerCallProvider struct {
	cfg config.Config
}

func NewPerCallProvider(cfg config.Config) *PerCallProvider {
	return &PerCallProvider{cfg: cfg}
}

func (p *PerCallProvider) Acquire(ctx context.Context) (*Conn, error) {
	db, err := open(ctx, p.cfg)
	if err != nil {
		return nil, Unavailable(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, Unavailable(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return newConn(db, sqlDB.Close), nil
}

// PooledProvider shares a single gorm handle (and its pool) across requests.
// The handle is opened lazily so a missing store only fails at first use.
type PooledProvider struct {
	cfg config.Config

	mu sync.Mutex
	db *gorm.DB
}

func NewPooledProvider(cfg config.Config) *PooledProvider {
	return &PooledProvider{cfg: cfg}
}

func (p *PooledProvider) Acquire(ctx context.Context) (*Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		db, err := open(ctx, p.cfg)
		if err != nil {
			return nil, Unavailable(err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, Unavailable(err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		p.db = db
		return newConn(db, nil), nil
	}

	if err := ping(ctx, p.db); err != nil {
		return nil, Unavailable(err)
	}
	return newConn(p.db, nil), nil
}

// Close shuts the shared pool down.
func (p *PooledProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.db = nil
	return sqlDB.Close()
}

func open(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dbType(cfg), err)
	}

	if err := ping(ctx, db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return db, nil
}

// ping issues a trivial no-op query to prove the handle is usable.
func ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("database handle is nil")
	}
	var one int
	if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return fmt.Errorf("liveness probe failed: %w", err)
	}
	return nil
}
