package persistent

import (
	"context"

	"sakura-community/pkg/database"
	"sakura-community/pkg/models"
	"sakura-community/services/community/internal/entity"

	"gorm.io/gorm"
)

type HealthRepository interface {
	Ping(ctx context.Context) error
	TableCounts(ctx context.Context) (*entity.TableCounts, error)
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Ping(ctx context.Context) error {
	return database.Ping(ctx, r.db)
}

func (r *healthRepository) TableCounts(ctx context.Context) (*entity.TableCounts, error) {
	counts := &entity.TableCounts{}
	targets := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &counts.Users},
		{&models.Post{}, &counts.Posts},
		{&models.Comment{}, &counts.Comments},
		{&models.Like{}, &counts.Likes},
	}

	for _, target := range targets {
		if err := r.db.WithContext(ctx).Model(target.model).Count(target.dest).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}
