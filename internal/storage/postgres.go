package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is the single table backing the postgres driver: one row per
// named collection, payload stored verbatim.
type Collection struct {
	Name      string    `gorm:"primaryKey;size:100"`
	Data      []byte    `gorm:"type:bytea"`
	UpdatedAt time.Time
}

// Postgres keeps every collection as a row in a key/value table. Indexed
// storage per entity can replace this later without touching call sites.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(url string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&Collection{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, name string) ([]byte, error) {
	var col Collection
	err := p.db.WithContext(ctx).First(&col, "name = ?", name).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return col.Data, nil
}

func (p *Postgres) Set(ctx context.Context, name string, data []byte) error {
	col := Collection{Name: name, Data: data}

	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&col).Error
	if err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, name string) error {
	err := p.db.WithContext(ctx).
		Delete(&Collection{}, "name = ?", name).Error
	if err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}
