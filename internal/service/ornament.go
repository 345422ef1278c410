package service

import (
	"MyWeddBlue/internal/cache"
	"MyWeddBlue/internal/ornament"
	"MyWeddBlue/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AspectProber определяет пропорции изображения орнамента (0 - неизвестно).
type AspectProber interface {
	Aspect(image string) float64
}

// OrnamentService - шлюз хранения коллекций: валидация батча до записи,
// атомарная замена, кэш чтений с явной инвалидацией.
type OrnamentService struct {
	scopes repo.ScopeRepository
	repo   repo.OrnamentRepository
	cache  cache.Store
	prober AspectProber
	logger *zap.SugaredLogger

	// writes растёт перед каждой записью и после успешной. Get кладёт прочитанное в кэш,
	// только если за время чтения записей не было: иначе снимок до Save пережил бы инвалидацию.
	mu     sync.Mutex
	writes uint64
}

// NewOrnamentService собирает сервис; store и prober могут быть nil.
func NewOrnamentService(
	scopes repo.ScopeRepository,
	r repo.OrnamentRepository,
	store cache.Store,
	prober AspectProber,
	logger *zap.SugaredLogger,
) *OrnamentService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &OrnamentService{scopes: scopes, repo: r, cache: store, prober: prober, logger: logger}
}

func cacheKey(scope ornament.Scope) string {
	return "ornaments:" + scope.String()
}

// Get возвращает сохранённую коллекцию scope. Зарегистрированный scope без сохранений
// даёт пустую коллекцию, незарегистрированный - ErrScopeNotFound.
func (s *OrnamentService) Get(ctx context.Context, scope ornament.Scope) (ornament.Data, error) {
	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, cacheKey(scope)); ok {
			var data ornament.Data
			if err := json.Unmarshal(b, &data); err == nil {
				return data, nil
			}
			s.cache.Delete(ctx, cacheKey(scope))
		}
	}

	ok, err := s.scopes.Exists(ctx, scope)
	if err != nil {
		return ornament.Data{}, err
	}
	if !ok {
		return ornament.Data{}, ErrScopeNotFound
	}

	seen := s.writesSeen()
	data, _, err := s.repo.Load(ctx, scope)
	if err != nil {
		s.logger.Errorw("load ornaments failed", "scope", scope.String(), "error", err)
		return ornament.Data{}, err
	}

	if s.cache != nil {
		if b, err := json.Marshal(data); err == nil {
			s.mu.Lock()
			if s.writes == seen {
				s.cache.Set(ctx, cacheKey(scope), b)
			}
			s.mu.Unlock()
		}
	}
	return data, nil
}

func (s *OrnamentService) writesSeen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *OrnamentService) markWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
}

// invalidate отмечает запись и сбрасывает кэш scope.
func (s *OrnamentService) invalidate(ctx context.Context, scope ornament.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.cache != nil {
		s.cache.Delete(ctx, cacheKey(scope))
	}
}

// Save заменяет коллекцию scope целиком. Незарегистрированный scope даёт
// ErrScopeNotFound раньше валидации. Невалидный батч отклоняется полностью
// (*ornament.ValidationError) и ничего не пишет.
func (s *OrnamentService) Save(ctx context.Context, scope ornament.Scope, data ornament.Data) error {
	kind := scope.Kind.String()
	ok, err := s.scopes.Exists(ctx, scope)
	if err != nil {
		ornamentSaves.WithLabelValues(kind, resultError).Inc()
		return err
	}
	if !ok {
		ornamentSaves.WithLabelValues(kind, resultError).Inc()
		return ErrScopeNotFound
	}

	if err := ornament.ValidateData(data); err != nil {
		ornamentSaves.WithLabelValues(kind, resultInvalid).Inc()
		s.logger.Warnw("ornaments rejected", "scope", scope.String(), "count", len(data.Ornaments), "error", err)
		return err
	}

	// сохраняем уже нормализованные значения
	for i := range data.Ornaments {
		data.Ornaments[i].Normalize()
	}

	// чтения, начатые до этой точки, уже не попадут в кэш; при ошибке записи
	// закэшированная коллекция остаётся актуальной
	s.markWrite()
	if err := s.repo.Replace(ctx, scope, data); err != nil {
		ornamentSaves.WithLabelValues(kind, resultError).Inc()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScopeNotFound
		}
		s.logger.Errorw("save ornaments failed", "scope", scope.String(), "error", err)
		return fmt.Errorf("replace ornaments: %w", err)
	}
	s.invalidate(ctx, scope)
	ornamentSaves.WithLabelValues(kind, resultOK).Inc()
	s.logger.Infow("ornaments saved", "scope", scope.String(), "count", len(data.Ornaments))
	return nil
}

// Reset удаляет все орнаменты scope.
func (s *OrnamentService) Reset(ctx context.Context, scope ornament.Scope) error {
	return s.Save(ctx, scope, ornament.Data{Ornaments: []ornament.Ornament{}})
}

// SectionCounts - число видимых орнаментов по секциям.
func (s *OrnamentService) SectionCounts(ctx context.Context, scope ornament.Scope) (map[ornament.Section]int, error) {
	data, err := s.Get(ctx, scope)
	if err != nil {
		return nil, err
	}
	return ornament.NewCollection(data).SectionCounts(), nil
}

// RenderOptions - параметры рендера секции.
type RenderOptions struct {
	Container ornament.Size
	// IntrinsicAspect - вычислять height:auto по реальным пропорциям изображения
	// вместо квадратного приближения.
	IntrinsicAspect bool
}

// Render строит рендер секции только для чтения.
func (s *OrnamentService) Render(ctx context.Context, scope ornament.Scope, section ornament.Section, opts RenderOptions) ([]ornament.View, error) {
	data, err := s.Get(ctx, scope)
	if err != nil {
		return nil, err
	}
	var aspect ornament.AspectFunc
	if opts.IntrinsicAspect && s.prober != nil {
		aspect = func(o ornament.Ornament) float64 { return s.prober.Aspect(o.Image) }
	}
	return ornament.RenderSection(ornament.NewCollection(data), section, opts.Container, aspect), nil
}
