package repo

import (
	"MyWeddBlue/internal/model"
	"MyWeddBlue/internal/ornament"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrnamentRepository хранит коллекцию орнаментов каждого scope одним JSON-документом.
type OrnamentRepository interface {
	// Load возвращает сохранённую коллекцию; found=false, если scope ещё ничего не сохранял.
	Load(ctx context.Context, scope ornament.Scope) (data ornament.Data, found bool, err error)
	// Replace атомарно заменяет коллекцию scope. gorm.ErrRecordNotFound — scope не зарегистрирован.
	Replace(ctx context.Context, scope ornament.Scope, data ornament.Data) error
}

type ornamentRepo struct {
	db *gorm.DB
}

// NewOrnamentRepository создаёт реализацию репозитория коллекций.
func NewOrnamentRepository(db *gorm.DB) OrnamentRepository {
	return &ornamentRepo{db: db}
}

func (r *ornamentRepo) Load(ctx context.Context, scope ornament.Scope) (ornament.Data, bool, error) {
	var raw datatypes.JSON
	var err error
	switch scope.Kind {
	case ornament.ScopeClient:
		var row model.ClientOrnaments
		err = r.db.WithContext(ctx).Where("client_id = ?", scope.ID).First(&row).Error
		raw = row.Data
	case ornament.ScopeTemplate:
		var row model.TemplateOrnaments
		err = r.db.WithContext(ctx).Where("template_id = ?", scope.ID).First(&row).Error
		raw = row.Data
	default:
		return ornament.Data{}, false, fmt.Errorf("unknown scope kind %d", scope.Kind)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ornament.Data{Ornaments: []ornament.Ornament{}}, false, nil
	}
	if err != nil {
		return ornament.Data{}, false, err
	}

	var data ornament.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return ornament.Data{}, false, fmt.Errorf("decode ornaments of %s: %w", scope, err)
	}
	if data.Ornaments == nil {
		data.Ornaments = []ornament.Ornament{}
	}
	return data, true, nil
}

func (r *ornamentRepo) Replace(ctx context.Context, scope ornament.Scope, data ornament.Data) error {
	if data.Ornaments == nil {
		data.Ornaments = []ornament.Ornament{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode ornaments of %s: %w", scope, err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scopeExists(tx, scope); err != nil {
			return err
		}
		var row any
		var key string
		switch scope.Kind {
		case ornament.ScopeClient:
			row, key = &model.ClientOrnaments{ClientID: scope.ID, Data: datatypes.JSON(raw)}, "client_id"
		case ornament.ScopeTemplate:
			row, key = &model.TemplateOrnaments{TemplateID: scope.ID, Data: datatypes.JSON(raw)}, "template_id"
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: key}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(row).Error
	})
}
