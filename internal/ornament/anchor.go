package ornament

// Point - координаты в пикселях относительно левого верхнего угла контейнера.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size - размеры в пикселях.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Anchors определяет авторитетные края: bottom, если задан bottom, иначе top;
// right, если задан right, иначе left.
func Anchors(p Position) (AnchorX, AnchorY) {
	ax, ay := AnchorLeft, AnchorTop
	if p.Right != nil {
		ax = AnchorRight
	}
	if p.Bottom != nil {
		ay = AnchorBottom
	}
	return ax, ay
}

// ElementSize возвращает габариты орнамента по style.
// aspect - собственное отношение ширины к высоте изображения. При aspect <= 0 высота
// "auto" считается равной ширине (квадратный бокс).
func ElementSize(s Style, aspect float64) Size {
	w, _ := ParsePixels(s.Width)
	h, ok := ParsePixels(s.Height)
	if !ok {
		h = w
		if aspect > 0 {
			h = w / aspect
		}
	}
	return Size{Width: w, Height: h}
}

// Origin вычисляет левый верхний угол орнамента в контейнере с учётом якорей.
func Origin(o Ornament, container Size, aspect float64) Point {
	el := ElementSize(o.Style, aspect)
	ax, ay := Anchors(o.Position)

	var pt Point
	if ax == AnchorRight {
		pt.X = container.Width - PercentToPixels(o.Position.Right, container.Width) - el.Width
	} else {
		pt.X = PercentToPixels(o.Position.Left, container.Width)
	}
	if ay == AnchorBottom {
		pt.Y = container.Height - PercentToPixels(o.Position.Bottom, container.Height) - el.Height
	} else {
		pt.Y = PercentToPixels(o.Position.Top, container.Height)
	}
	return pt
}

// Place - обратная к Origin операция: записывает авторитетную пару координат для
// заданного левого верхнего угла, сохраняя текущие якоря. Неавторитетная пара обнуляется.
func Place(o *Ornament, origin Point, container Size, aspect float64) {
	ax, ay := Anchors(o.Position)
	placeAnchored(o, origin, container, aspect, ax, ay)
}

// FlipAnchor меняет якоря, сохраняя визуальное положение орнамента.
func FlipAnchor(o *Ornament, ax AnchorX, ay AnchorY, container Size, aspect float64) {
	origin := Origin(*o, container, aspect)
	placeAnchored(o, origin, container, aspect, ax, ay)
}

func placeAnchored(o *Ornament, origin Point, container Size, aspect float64, ax AnchorX, ay AnchorY) {
	el := ElementSize(o.Style, aspect)
	if ax == AnchorRight {
		o.Position.Right = strPtr(PixelsToPercent(container.Width-origin.X-el.Width, container.Width))
		o.Position.Left = nil
	} else {
		o.Position.Left = strPtr(PixelsToPercent(origin.X, container.Width))
		o.Position.Right = nil
	}
	if ay == AnchorBottom {
		o.Position.Bottom = strPtr(PixelsToPercent(container.Height-origin.Y-el.Height, container.Height))
		o.Position.Top = nil
	} else {
		o.Position.Top = strPtr(PixelsToPercent(origin.Y, container.Height))
		o.Position.Bottom = nil
	}
}
