package sql

import (
	"context"
	"designers/internal/database"
	"designers/internal/entity/converter"
	"designers/internal/entity/db"
	"designers/internal/entity/dto"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var designerColumns = []string{"id", "name", "nationality", "style", "famous_works", "website"}

func designersTable() string {
	return db.Designer{}.TableName()
}

// ListDesigners returns every designer ordered by name.
func (r *GormRepository) ListDesigners(ctx context.Context) ([]db.Designer, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var designers []db.Designer
	err = conn.DB.WithContext(ctx).
		Model(&db.Designer{}).
		Select(designerColumns).
		Order("name ASC, id ASC").
		Find(&designers).Error
	if err != nil {
		return nil, database.Classify(err, designersTable())
	}
	return designers, nil
}

// GetDesigner retrieves a single designer by primary key.
func (r *GormRepository) GetDesigner(ctx context.Context, id uint) (*db.Designer, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var designer db.Designer
	err = conn.DB.WithContext(ctx).
		Select(designerColumns).
		Where("id = ?", id).
		Take(&designer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrNotFound
		}
		return nil, database.Classify(err, designersTable())
	}
	return &designer, nil
}

// SearchDesigners matches the term case-insensitively against name,
// nationality or style.
func (r *GormRepository) SearchDesigners(ctx context.Context, term string) ([]db.Designer, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, database.ErrEmptySearchTerm
	}

	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	pattern := "%" + term + "%"
	var designers []db.Designer
	err = conn.DB.WithContext(ctx).
		Model(&db.Designer{}).
		Select(designerColumns).
		Where("LOWER(name) LIKE ? OR LOWER(nationality) LIKE ? OR LOWER(style) LIKE ?", pattern, pattern, pattern).
		Order("name ASC, id ASC").
		Find(&designers).Error
	if err != nil {
		return nil, database.Classify(err, designersTable())
	}
	return designers, nil
}

// CreateDesigner validates the payload and inserts it in its own
// transaction. The id is read back before commit; any failure rolls back.
func (r *GormRepository) CreateDesigner(ctx context.Context, req dto.CreateDesignerRequest) (*db.Designer, error) {
	if field := req.MissingField(); field != "" {
		return nil, &database.MissingFieldError{Field: field}
	}

	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	record := converter.DesignerFromRequest(req)
	err = conn.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if record.ID == 0 {
			return errors.New("store did not assign an id")
		}
		return nil
	})
	if err != nil {
		return nil, database.Classify(err, designersTable())
	}
	return &record, nil
}
