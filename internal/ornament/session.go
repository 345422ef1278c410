package ornament

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Gateway - внешнее хранилище коллекций. Save - полная замена коллекции scope.
type Gateway interface {
	Load(ctx context.Context, scope Scope) (Data, error)
	Save(ctx context.Context, scope Scope, data Data) error
}

// Confirmer спрашивает у оператора подтверждение деструктивного действия.
type Confirmer func(prompt string) bool

// Session - сессия редактора над одним scope: рабочая коллекция, контроллер
// взаимодействия и явное сохранение. Одновременно выполняется не больше одного Save.
type Session struct {
	gw     Gateway
	scope  Scope
	logger *zap.SugaredLogger
	now    func() time.Time

	mu         sync.Mutex
	coll       *Collection
	ctrl       *Controller
	saving     bool
	generation uint64
	savedGen   uint64
}

// NewSession создаёт пустую сессию; данные подгружаются через Load.
func NewSession(gw Gateway, scope Scope, container Size, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	coll := &Collection{}
	return &Session{
		gw:     gw,
		scope:  scope,
		logger: logger,
		now:    time.Now,
		coll:   coll,
		ctrl:   NewController(coll, container),
	}
}

func (s *Session) Scope() Scope { return s.scope }

// Load подгружает сохранённую коллекцию и сбрасывает выбор.
func (s *Session) Load(ctx context.Context) error {
	data, err := s.gw.Load(ctx, s.scope)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.scope, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coll.Replace(data)
	s.ctrl.Deselect()
	s.generation++
	s.savedGen = s.generation
	return nil
}

// Edit выполняет изменение рабочей коллекции синхронно. Сессия помечается изменённой,
// только если fn действительно поменял коллекцию: выбор и начало жеста её не меняют.
func (s *Session) Edit(fn func(ctrl *Controller, coll *Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rev := s.coll.rev
	err := fn(s.ctrl, s.coll)
	if s.coll.rev != rev {
		s.generation++
	}
	return err
}

// View выполняет fn без пометки об изменении.
func (s *Session) View(fn func(ctrl *Controller, coll *Collection)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctrl, s.coll)
}

// Add создаёт орнамент со значениями по умолчанию и возвращает его.
func (s *Session) Add(section Section, name, image string) (Ornament, error) {
	o := New(section, name, image, s.now())
	err := s.Edit(func(_ *Controller, coll *Collection) error {
		return coll.Add(o)
	})
	return o, err
}

// Delete удаляет орнамент после подтверждения. Выбор снимается, только если удалён выбранный.
func (s *Session) Delete(id string, confirm Confirmer) error {
	return s.Edit(func(ctrl *Controller, coll *Collection) error {
		o, ok := coll.Get(id)
		if !ok {
			return ErrNotFound
		}
		if confirm == nil || !confirm(fmt.Sprintf("Delete ornament %q?", o.Name)) {
			return ErrNotConfirmed
		}
		coll.Remove(id)
		ctrl.Forget(id)
		return nil
	})
}

// Reset удаляет все орнаменты из рабочей коллекции после подтверждения.
func (s *Session) Reset(confirm Confirmer) error {
	return s.Edit(func(ctrl *Controller, coll *Collection) error {
		if confirm == nil || !confirm(fmt.Sprintf("Remove all %d ornaments?", coll.Len())) {
			return ErrNotConfirmed
		}
		coll.Replace(Data{})
		ctrl.Deselect()
		return nil
	})
}

// Save отправляет снимок рабочей коллекции. Пока сохранение в полёте, повторный Save
// возвращает ErrSaveInFlight. При ошибке рабочая коллекция не меняется.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.saving = true
	gen := s.generation
	snapshot := s.coll.Snapshot()
	s.mu.Unlock()

	err := s.gw.Save(ctx, s.scope, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.logger.Warnw("ornaments save failed", "scope", s.scope.String(), "count", len(snapshot.Ornaments), "error", err)
		return fmt.Errorf("save %s: %w", s.scope, err)
	}
	if gen > s.savedGen {
		s.savedGen = gen
	}
	s.logger.Infow("ornaments saved", "scope", s.scope.String(), "count", len(snapshot.Ornaments))
	return nil
}

// Dirty сообщает о несохранённых изменениях (включая сделанные во время Save).
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation != s.savedGen
}

// Saving сообщает, что сохранение в полёте.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Snapshot - копия рабочей коллекции.
func (s *Session) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Snapshot()
}

// RenderSection - рендер редактора для секции.
func (s *Session) RenderSection(sec Section) []EditView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderEditSection(s.coll, sec, s.ctrl)
}
