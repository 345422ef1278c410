package ornament

import (
	"math"
	"sort"
	"strconv"
)

// SelectedZIndex - z-index выбранного орнамента в редакторе, выше любых соседей.
const SelectedZIndex = 1000

// Layer - один уровень обёртки: inline-стили и классы.
type Layer struct {
	Style   map[string]string `json:"style"`
	Classes []string          `json:"classes,omitempty"`
}

// View - рендер орнамента только для чтения. Три уровня:
// позиция → статическое преобразование → анимация, чтобы transform статики
// и анимации не конфликтовали.
type View struct {
	ID            string    `json:"id"`
	Section       Section   `json:"section"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Origin        Point     `json:"origin"`
	Size          Size      `json:"size"`
	ZIndex        int       `json:"zIndex"`
	PointerEvents string    `json:"pointerEvents"`
	Position      Layer     `json:"position"`
	Transform     Layer     `json:"transform"`
	Animation     Layer     `json:"animation"`
	Entrance      *Entrance `json:"entrance,omitempty"`
}

// Badge - подпись выбранного орнамента в редакторе.
type Badge struct {
	Name     string `json:"name"`
	Rotation int    `json:"rotation"`
}

// EditView - рендер в редакторе: те же слои плюс органы управления.
type EditView struct {
	View
	Hidden       bool   `json:"hidden"`
	Selected     bool   `json:"selected"`
	Draggable    bool   `json:"draggable"`
	Resizable    bool   `json:"resizable"`
	RotateHandle bool   `json:"rotateHandle"`
	DeleteHandle bool   `json:"deleteHandle"`
	Badge        *Badge `json:"badge,omitempty"`
}

// RenderView строит рендер только для чтения.
func RenderView(o Ornament, container Size, aspect float64) View {
	o.Normalize()
	size := ElementSize(o.Style, aspect)

	pos := positionStyle(o.Position, o.Style.ZIndex)

	desc := Resolve(o.Animation)
	anim := map[string]string{"opacity": formatNumber(o.Style.Opacity)}
	for k, v := range desc.Variables {
		anim[k] = v
	}

	return View{
		ID:            o.ID,
		Section:       o.Section,
		Name:          o.Name,
		Image:         o.Image,
		Origin:        Origin(o, container, aspect),
		Size:          size,
		ZIndex:        o.Style.ZIndex,
		PointerEvents: "none",
		Position:      Layer{Style: pos},
		Transform: Layer{Style: map[string]string{
			"transform":        transformValue(o.Transform.Scale, o.Transform.Rotate),
			"transform-origin": "center",
			"width":            o.Style.Width,
			"height":           o.Style.Height,
		}},
		Animation: Layer{Style: anim, Classes: desc.Classes},
		Entrance:  ResolveEntrance(o.Animation),
	}
}

// RenderSection рендерит видимые орнаменты секции в порядке z-index, затем создания.
func RenderSection(c *Collection, s Section, container Size, aspect AspectFunc) []View {
	if aspect == nil {
		aspect = squareAspect
	}
	items := c.ForSection(s)
	sortByLayer(items)
	out := make([]View, 0, len(items))
	for _, o := range items {
		out = append(out, RenderView(o, container, aspect(o)))
	}
	return out
}

// RenderEdit строит рендер в редакторе с учётом состояния контроллера.
func RenderEdit(o Ornament, ctrl *Controller) EditView {
	aspect := ctrl.aspect(o)
	v := EditView{
		View:   RenderView(o, ctrl.container, aspect),
		Hidden: !o.IsVisible,
	}
	v.PointerEvents = "auto"
	if !ctrl.IsSelected(o.ID) {
		return v
	}

	v.Selected = true
	v.Draggable, v.Resizable = true, true
	v.RotateHandle, v.DeleteHandle = true, true
	v.ZIndex = SelectedZIndex
	v.Position.Style["z-index"] = strconv.Itoa(SelectedZIndex)

	rotation := o.Transform.Rotate
	switch ctrl.state.Phase {
	case PhaseRotating:
		rotation = ctrl.g.rotation
		v.Transform.Style["transform"] = transformValue(o.Transform.Scale, rotation)
	case PhaseDragging:
		// позиционный слой должен совпадать с предварительным углом
		preview := o.Clone()
		Place(&preview, ctrl.g.previewOrigin, ctrl.container, aspect)
		v.Origin = ctrl.g.previewOrigin
		v.Position.Style = positionStyle(preview.Position, SelectedZIndex)
	case PhaseResizing:
		v.Size = ctrl.g.previewSize
		v.Transform.Style["width"] = FormatPixels(ctrl.g.previewSize.Width)
	}
	v.Badge = &Badge{Name: o.Name, Rotation: int(math.Round(rotation))}
	return v
}

// RenderEditSection рендерит все орнаменты секции (включая скрытые) для редактора.
func RenderEditSection(c *Collection, s Section, ctrl *Controller) []EditView {
	items := c.BySection(s)
	sortByLayer(items)
	out := make([]EditView, 0, len(items))
	for _, o := range items {
		out = append(out, RenderEdit(o, ctrl))
	}
	return out
}

func sortByLayer(items []Ornament) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Style.ZIndex != items[j].Style.ZIndex {
			return items[i].Style.ZIndex < items[j].Style.ZIndex
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func transformValue(scale, rotate float64) string {
	return "scale(" + formatNumber(scale) + ") rotate(" + formatNumber(rotate) + "deg)"
}

func positionStyle(p Position, z int) map[string]string {
	pos := map[string]string{"position": "absolute", "z-index": strconv.Itoa(z)}
	setPct(pos, "top", p.Top)
	setPct(pos, "left", p.Left)
	setPct(pos, "right", p.Right)
	setPct(pos, "bottom", p.Bottom)
	return pos
}

func setPct(m map[string]string, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
