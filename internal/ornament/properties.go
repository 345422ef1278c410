package ornament

import "math"

// Setters панели свойств. Все значения приводятся к допустимым границам.

func (o *Ornament) SetScale(v float64) {
	o.Transform.Scale = clampFloat(v, MinScale, MaxScale)
}

// SetRotate записывает угол как есть: выход за ±180 допустим и не нормализуется.
func (o *Ornament) SetRotate(deg float64) {
	o.Transform.Rotate = math.Round(deg)
}

func (o *Ornament) SetOpacity(v float64) {
	o.Style.Opacity = clampFloat(v, MinOpacity, MaxOpacity)
}

func (o *Ornament) SetZIndex(v int) {
	o.Style.ZIndex = clampInt(v, MinZIndex, MaxZIndex)
}

func (o *Ornament) SetVisible(v bool) { o.IsVisible = v }

func (o *Ornament) SetName(name string) { o.Name = name }

// SetImage подменяет изображение (уже сжатый data URI).
func (o *Ornament) SetImage(dataURI string) { o.Image = dataURI }

// SetWidth меняет ширину, сохраняя визуальный левый верхний угол.
func (o *Ornament) SetWidth(px float64, container Size, aspect float64) {
	origin := Origin(*o, container, aspect)
	o.Style.Width = FormatPixels(math.Max(px, MinWidthPx))
	Place(o, origin, container, aspect)
}

// SetAnimation заменяет описание анимации (nil — без анимации).
func (o *Ornament) SetAnimation(a *Animation) {
	if a == nil {
		o.Animation = nil
		return
	}
	cp := *a
	cp.normalize()
	o.Animation = &cp
}
