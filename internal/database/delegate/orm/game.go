package orm

import (
	"context"
	"errors"

	"gameshelf.dev/shelf/internal/database/delegate"
	"gameshelf.dev/shelf/internal/game"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const insertBatchSize = 100

func (d *ORMDelegate) ordered(ctx context.Context) *gorm.DB {
	return d.database.WithContext(ctx).Order("title").Order("id")
}

func (d *ORMDelegate) GetAll(ctx context.Context) (entities []game.Game, err error) {
	if result := d.ordered(ctx).Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (d *ORMDelegate) GetPaged(ctx context.Context, pageNumber int, pageSize int) (entities []game.Game, err error) {
	var offset int
	if offset, err = delegate.Offset(pageNumber, pageSize); err != nil {
		return
	}
	if result := d.ordered(ctx).Offset(offset).Limit(pageSize).Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (d *ORMDelegate) Count(ctx context.Context) (count int64, err error) {
	err = d.database.WithContext(ctx).Model(&game.Game{}).Count(&count).Error
	return
}

func (d *ORMDelegate) Get(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	var entity game.Game
	if err := d.database.WithContext(ctx).Where("id = ?", id).Take(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (d *ORMDelegate) Add(ctx context.Context, g *game.Game) (err error) {
	if err = g.Prepare(); err != nil {
		return
	}
	if result := d.database.WithContext(ctx).Create(g); result.Error != nil {
		return result.Error
	}
	logrus.WithFields(logrus.Fields{"id": g.ID, "title": g.Title}).Debug("Game added")
	return
}

func (d *ORMDelegate) AddAll(ctx context.Context, games []game.Game) (err error) {
	if len(games) == 0 {
		return
	}
	for i := range games {
		if err = games[i].Prepare(); err != nil {
			return
		}
	}
	if result := d.database.WithContext(ctx).CreateInBatches(&games, insertBatchSize); result.Error != nil {
		return result.Error
	}
	logrus.WithField("count", len(games)).Debug("Games added")
	return
}

// Update rewrites every column of the stored game, zero values included.
// Nothing happens when no game has the same id.
func (d *ORMDelegate) Update(ctx context.Context, g *game.Game) (err error) {
	if err = g.Validate(); err != nil {
		return
	}
	if g.ID == uuid.Nil {
		logrus.WithField("id", g.ID).Debug("Update skipped, game not found")
		return
	}
	result := d.database.WithContext(ctx).Model(g).Select("*").Updates(g)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		logrus.WithField("id", g.ID).Debug("Update skipped, game not found")
	}
	return
}

func (d *ORMDelegate) Remove(ctx context.Context, id uuid.UUID) (err error) {
	result := d.database.WithContext(ctx).Where("id = ?", id).Delete(&game.Game{})
	if result.Error != nil {
		return result.Error
	}
	logrus.WithFields(logrus.Fields{"id": id, "removed": result.RowsAffected}).Debug("Game removal")
	return
}

func (d *ORMDelegate) SetStatus(ctx context.Context, id uuid.UUID, status game.Status) (err error) {
	if status, err = game.ParseStatus(string(status)); err != nil {
		return
	}
	var entity *game.Game
	if entity, err = d.Get(ctx, id); err != nil || entity == nil {
		return
	}
	entity.SetStatus(status, d.now())
	return d.Update(ctx, entity)
}

func (d *ORMDelegate) GetDistinctPlatforms(ctx context.Context) (platforms []string, err error) {
	var stored []string
	if err = d.database.WithContext(ctx).Model(&game.Game{}).
		Where("platform IS NOT NULL AND platform <> ?", "").
		Distinct().Pluck("platform", &stored).Error; err != nil {
		return
	}
	platforms = game.DistinctPlatforms(stored)
	return
}
