// Package ornament содержит ядро размещения декоративных изображений на секциях приглашения:
// модель, пересчёт координат с учётом якорей, рабочую коллекцию, машину состояний
// перетаскивания/масштабирования/поворота, разрешение анимаций и рендер слоёв.
package ornament

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Границы значений, которые приводятся при чтении (clamp, а не отказ).
const (
	MinScale = 0.5
	MaxScale = 3.0

	MinOpacity = 0.0
	MaxOpacity = 1.0

	MinZIndex = 5
	MaxZIndex = 20

	MinIntensity = 0.1
	MaxIntensity = 1.0

	MinDelay = 0.0
	MaxDelay = 5.0

	MinEntranceDuration = 300
	MaxEntranceDuration = 2000
)

// Значения по умолчанию для нового орнамента.
const (
	DefaultTop              = "10%"
	DefaultLeft             = "10%"
	DefaultWidth            = "150px"
	DefaultHeight           = "auto"
	DefaultZIndex           = 15
	DefaultIntensity        = 0.5
	DefaultEntranceDuration = 800
)

// Position - процентные координаты. Авторитетна ровно одна из top/bottom и одна из left/right.
type Position struct {
	Top    *string `json:"top"`
	Left   *string `json:"left"`
	Right  *string `json:"right"`
	Bottom *string `json:"bottom"`
}

// Transform - статическое преобразование.
type Transform struct {
	Scale  float64 `json:"scale"`
	Rotate float64 `json:"rotate"`
}

// Style - размеры и слой. Height "auto" сохраняет пропорции изображения.
type Style struct {
	Width   string  `json:"width"`
	Height  string  `json:"height"`
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"zIndex"`
}

// Animation - декларативное описание анимации орнамента.
type Animation struct {
	Enabled          bool         `json:"enabled"`
	Type             LoopType     `json:"type"`
	Speed            Speed        `json:"speed"`
	Intensity        float64      `json:"intensity"`
	Delay            float64      `json:"delay"`
	EntranceEnabled  bool         `json:"entranceEnabled"`
	Entrance         EntranceType `json:"entrance"`
	EntranceDuration int          `json:"entranceDuration"`
}

// DefaultAnimation - выключенная анимация с осмысленными параметрами для панели свойств.
func DefaultAnimation() Animation {
	return Animation{
		Type:             LoopNone,
		Speed:            SpeedNormal,
		Intensity:        DefaultIntensity,
		Entrance:         EntranceFadeIn,
		EntranceDuration: DefaultEntranceDuration,
	}
}

// UnmarshalJSON заполняет отсутствующие поля значениями по умолчанию.
func (a *Animation) UnmarshalJSON(b []byte) error {
	type plain Animation
	p := plain(DefaultAnimation())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Animation(p)
	return nil
}

// Ornament - одно размещение декоративного изображения.
type Ornament struct {
	ID        string     `json:"id"`
	Section   Section    `json:"section"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	Position  Position   `json:"position"`
	Transform Transform  `json:"transform"`
	Style     Style      `json:"style"`
	IsVisible bool       `json:"isVisible"`
	Animation *Animation `json:"animation,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UnmarshalJSON: отсутствующие поля получают значения по умолчанию, затем значения
// приводятся к допустимым диапазонам.
func (o *Ornament) UnmarshalJSON(b []byte) error {
	type plain Ornament
	p := plain{
		Transform: Transform{Scale: 1},
		Style:     Style{Width: DefaultWidth, Height: DefaultHeight, Opacity: 1, ZIndex: DefaultZIndex},
		IsVisible: true,
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = Ornament(p)
	o.Normalize()
	return nil
}

// Data - единица сохранения: коллекция целиком.
type Data struct {
	Ornaments []Ornament `json:"ornaments"`
}

// NewID возвращает идентификатор, производный от времени создания.
func NewID(now time.Time) string {
	return fmt.Sprintf("ornament-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// New создаёт орнамент со значениями по умолчанию.
func New(section Section, name, image string, now time.Time) Ornament {
	top, left := DefaultTop, DefaultLeft
	return Ornament{
		ID:        NewID(now),
		Section:   section,
		Name:      name,
		Image:     image,
		Position:  Position{Top: &top, Left: &left},
		Transform: Transform{Scale: 1, Rotate: 0},
		Style: Style{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Opacity: 1,
			ZIndex:  DefaultZIndex,
		},
		IsVisible: true,
		CreatedAt: now.UTC(),
	}
}

// Normalize приводит значения к допустимым диапазонам и оставляет по одной
// авторитетной координате на ось.
func (o *Ornament) Normalize() {
	o.Transform.Scale = clampFloat(o.Transform.Scale, MinScale, MaxScale)
	o.Style.Opacity = clampFloat(o.Style.Opacity, MinOpacity, MaxOpacity)
	o.Style.ZIndex = clampInt(o.Style.ZIndex, MinZIndex, MaxZIndex)
	if strings.TrimSpace(o.Style.Height) == "" {
		o.Style.Height = DefaultHeight
	}
	if o.Position.Bottom != nil {
		o.Position.Top = nil
	}
	if o.Position.Right != nil {
		o.Position.Left = nil
	}
	// ось без координат получает якорь по умолчанию
	if o.Position.Top == nil && o.Position.Bottom == nil {
		top := DefaultTop
		o.Position.Top = &top
	}
	if o.Position.Left == nil && o.Position.Right == nil {
		left := DefaultLeft
		o.Position.Left = &left
	}
	if o.Animation != nil {
		o.Animation.normalize()
	}
}

func (a *Animation) normalize() {
	a.Intensity = clampFloat(a.Intensity, MinIntensity, MaxIntensity)
	a.Delay = clampFloat(a.Delay, MinDelay, MaxDelay)
	a.EntranceDuration = clampInt(a.EntranceDuration, MinEntranceDuration, MaxEntranceDuration)
}

// Clone возвращает глубокую копию (указатели позиции и анимации не разделяются).
func (o Ornament) Clone() Ornament {
	c := o
	c.Position = Position{
		Top:    clonePtr(o.Position.Top),
		Left:   clonePtr(o.Position.Left),
		Right:  clonePtr(o.Position.Right),
		Bottom: clonePtr(o.Position.Bottom),
	}
	if o.Animation != nil {
		a := *o.Animation
		c.Animation = &a
	}
	return c
}

// Validate проверяет обязательные поля одного орнамента.
func (o Ornament) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(o.ID) == "" {
		errs = append(errs, FieldError{Field: "id", Reason: "required"})
	}
	if !o.Section.Known() {
		errs = append(errs, FieldError{Field: "section", Reason: "required or unknown"})
	}
	if strings.TrimSpace(o.Image) == "" {
		errs = append(errs, FieldError{Field: "image", Reason: "required"})
	}
	return errs
}

// ValidateData проверяет весь батч. Возвращает *ValidationError со всеми нарушениями
// либо nil.
func ValidateData(d Data) error {
	var ve ValidationError
	seen := make(map[string]int, len(d.Ornaments))
	for i, o := range d.Ornaments {
		for _, fe := range o.Validate() {
			fe.Index, fe.ID = i, o.ID
			ve.Problems = append(ve.Problems, fe)
		}
		if o.ID == "" {
			continue
		}
		if first, dup := seen[o.ID]; dup {
			ve.Problems = append(ve.Problems, FieldError{
				Index: i, ID: o.ID, Field: "id",
				Reason: fmt.Sprintf("duplicate of ornament #%d", first),
			})
			continue
		}
		seen[o.ID] = i
	}
	if len(ve.Problems) == 0 {
		return nil
	}
	return &ve
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func strPtr(s string) *string { return &s }
