package ornament

import (
	"errors"
	"math"
)

// MinWidthPx - минимальная ширина при ресайзе.
const MinWidthPx = 20

var (
	// ErrNotSelected - жест начат не на выбранном орнаменте.
	ErrNotSelected = errors.New("ornament is not selected")
	// ErrGestureActive - уже идёт другой жест.
	ErrGestureActive = errors.New("another gesture is in progress")
	// ErrNoGesture - событие жеста пришло без начатого жеста соответствующего типа.
	ErrNoGesture = errors.New("no matching gesture in progress")
)

// Phase - фаза машины состояний взаимодействия.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSelected
	PhaseDragging
	PhaseResizing
	PhaseRotating
)

func (p Phase) String() string {
	switch p {
	case PhaseSelected:
		return "selected"
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	case PhaseRotating:
		return "rotating"
	default:
		return "idle"
	}
}

// State - текущее состояние: Idle | Selected(id) | Dragging(id) | Resizing(id) | Rotating(id, startAngle).
// ID пуст только в Idle, StartAngle имеет смысл только в Rotating.
type State struct {
	Phase      Phase
	ID         string
	StartAngle float64
}

// AspectFunc возвращает собственное отношение ширины к высоте изображения орнамента
// (0 - неизвестно, бокс считается квадратным).
type AspectFunc func(o Ornament) float64

func squareAspect(Ornament) float64 { return 0 }

// gesture - промежуточные данные текущего жеста. В сущность не пишутся до отпускания.
type gesture struct {
	startPointer Point
	startOrigin  Point
	startSize    Size
	fixedHeight  bool

	center        Point
	lastAngle     float64
	startRotation float64
	rotation      float64

	previewOrigin Point
	previewSize   Size
}

// Controller - машина состояний перетаскивания/ресайза/поворота над рабочей коллекцией.
// Координаты указателя - в пикселях контейнера секции.
type Controller struct {
	coll      *Collection
	container Size
	aspect    AspectFunc

	state State
	g     gesture
}

// NewController создаёт контроллер в состоянии Idle.
func NewController(coll *Collection, container Size) *Controller {
	return &Controller{coll: coll, container: container, aspect: squareAspect}
}

// SetContainer обновляет измеренный размер контейнера.
func (c *Controller) SetContainer(s Size) { c.container = s }

// Container возвращает текущий размер контейнера.
func (c *Controller) Container() Size { return c.container }

// SetAspect задаёт источник пропорций для height:"auto".
func (c *Controller) SetAspect(fn AspectFunc) {
	if fn == nil {
		fn = squareAspect
	}
	c.aspect = fn
}

func (c *Controller) State() State { return c.state }

// Selected возвращает id выбранного орнамента (в любой фазе, кроме Idle).
func (c *Controller) Selected() (string, bool) {
	if c.state.Phase == PhaseIdle {
		return "", false
	}
	return c.state.ID, true
}

// IsSelected сообщает, выбран ли орнамент id.
func (c *Controller) IsSelected(id string) bool {
	sel, ok := c.Selected()
	return ok && sel == id
}

// Select делает id единственным выбранным орнаментом.
func (c *Controller) Select(id string) error {
	if c.gestureActive() {
		return ErrGestureActive
	}
	if _, ok := c.coll.Get(id); !ok {
		return ErrNotFound
	}
	c.state = State{Phase: PhaseSelected, ID: id}
	return nil
}

// Deselect сбрасывает выбор; незавершённый жест отменяется без записи.
func (c *Controller) Deselect() {
	c.state = State{Phase: PhaseIdle}
	c.g = gesture{}
}

// Forget вызывается после удаления орнамента: выбор снимается, только если удалён выбранный.
func (c *Controller) Forget(id string) {
	if c.state.Phase != PhaseIdle && c.state.ID == id {
		c.Deselect()
	}
}

// Cancel прерывает жест, сущность не меняется.
func (c *Controller) Cancel() {
	if c.gestureActive() {
		c.state = State{Phase: PhaseSelected, ID: c.state.ID}
		c.g = gesture{}
	}
}

func (c *Controller) gestureActive() bool {
	switch c.state.Phase {
	case PhaseDragging, PhaseResizing, PhaseRotating:
		return true
	}
	return false
}

// begin проверяет, что жест начинается на выбранном орнаменте без активного жеста.
func (c *Controller) begin(id string) (Ornament, error) {
	if c.gestureActive() {
		return Ornament{}, ErrGestureActive
	}
	if !c.IsSelected(id) {
		return Ornament{}, ErrNotSelected
	}
	o, ok := c.coll.Get(id)
	if !ok {
		c.Deselect()
		return Ornament{}, ErrNotFound
	}
	return o, nil
}

// BeginDrag начинает перетаскивание выбранного орнамента.
func (c *Controller) BeginDrag(id string, pointer Point) error {
	o, err := c.begin(id)
	if err != nil {
		return err
	}
	origin := Origin(o, c.container, c.aspect(o))
	c.g = gesture{startPointer: pointer, startOrigin: origin, previewOrigin: origin}
	c.state = State{Phase: PhaseDragging, ID: id}
	return nil
}

// DragTo возвращает предварительный левый верхний угол; сущность не меняется.
func (c *Controller) DragTo(pointer Point) (Point, error) {
	if c.state.Phase != PhaseDragging {
		return Point{}, ErrNoGesture
	}
	c.g.previewOrigin = Point{
		X: c.g.startOrigin.X + pointer.X - c.g.startPointer.X,
		Y: c.g.startOrigin.Y + pointer.Y - c.g.startPointer.Y,
	}
	return c.g.previewOrigin, nil
}

// EndDrag фиксирует позицию при текущих якорях и возвращает в Selected.
func (c *Controller) EndDrag(pointer Point) error {
	origin, err := c.DragTo(pointer)
	if err != nil {
		return err
	}
	id := c.state.ID
	err = c.coll.Update(id, func(o *Ornament) {
		Place(o, origin, c.container, c.aspect(*o))
	})
	c.finish(id)
	return err
}

// BeginResize начинает ресайз за правый нижний угол.
func (c *Controller) BeginResize(id string, pointer Point) error {
	o, err := c.begin(id)
	if err != nil {
		return err
	}
	aspect := c.aspect(o)
	_, fixed := ParsePixels(o.Style.Height)
	size := ElementSize(o.Style, aspect)
	c.g = gesture{
		startPointer: pointer,
		startOrigin:  Origin(o, c.container, aspect),
		startSize:    size,
		previewSize:  size,
		fixedHeight:  fixed,
	}
	c.state = State{Phase: PhaseResizing, ID: id}
	return nil
}

// ResizeTo возвращает предварительный размер; сущность не меняется.
func (c *Controller) ResizeTo(pointer Point) (Size, error) {
	if c.state.Phase != PhaseResizing {
		return Size{}, ErrNoGesture
	}
	w := math.Max(c.g.startSize.Width+pointer.X-c.g.startPointer.X, MinWidthPx)
	h := c.g.startSize.Height
	if c.g.fixedHeight {
		h = math.Max(c.g.startSize.Height+pointer.Y-c.g.startPointer.Y, MinWidthPx)
	} else if c.g.startSize.Width > 0 {
		h = c.g.startSize.Height * w / c.g.startSize.Width
	}
	c.g.previewSize = Size{Width: w, Height: h}
	return c.g.previewSize, nil
}

// EndResize записывает style.width (и height, если он задан явно) и пересчитывает
// позицию так, чтобы левый верхний угол остался на месте.
func (c *Controller) EndResize(pointer Point) error {
	size, err := c.ResizeTo(pointer)
	if err != nil {
		return err
	}
	id := c.state.ID
	origin := c.g.startOrigin
	fixed := c.g.fixedHeight
	err = c.coll.Update(id, func(o *Ornament) {
		o.Style.Width = FormatPixels(size.Width)
		if fixed {
			o.Style.Height = FormatPixels(size.Height)
		}
		Place(o, origin, c.container, c.aspect(*o))
	})
	c.finish(id)
	return err
}

// BeginRotate захватывает угол указателя относительно центра орнамента.
func (c *Controller) BeginRotate(id string, pointer Point) error {
	o, err := c.begin(id)
	if err != nil {
		return err
	}
	aspect := c.aspect(o)
	origin := Origin(o, c.container, aspect)
	size := ElementSize(o.Style, aspect)
	center := Point{X: origin.X + size.Width/2, Y: origin.Y + size.Height/2}
	start := pointerAngle(center, pointer)
	c.g = gesture{
		center:        center,
		lastAngle:     start,
		startRotation: o.Transform.Rotate,
		rotation:      o.Transform.Rotate,
	}
	c.state = State{Phase: PhaseRotating, ID: id, StartAngle: start}
	return nil
}

// RotateTo обновляет промежуточный угол. Угол накапливается непрерывно, без скачка
// при переходе через ±180.
func (c *Controller) RotateTo(pointer Point) (float64, error) {
	if c.state.Phase != PhaseRotating {
		return 0, ErrNoGesture
	}
	a := pointerAngle(c.g.center, pointer)
	delta := a - c.g.lastAngle
	for delta > 180 {
		delta -= 360
	}
	for delta < -180 {
		delta += 360
	}
	c.g.rotation += delta
	c.g.lastAngle = a
	return c.g.rotation, nil
}

// PreviewRotation - промежуточный угол во время поворота.
func (c *Controller) PreviewRotation() (float64, bool) {
	if c.state.Phase != PhaseRotating {
		return 0, false
	}
	return c.g.rotation, true
}

// EndRotate фиксирует угол, округлённый до целых градусов.
func (c *Controller) EndRotate(pointer Point) error {
	deg, err := c.RotateTo(pointer)
	if err != nil {
		return err
	}
	id := c.state.ID
	err = c.coll.Update(id, func(o *Ornament) { o.SetRotate(deg) })
	c.finish(id)
	return err
}

func (c *Controller) finish(id string) {
	c.g = gesture{}
	if _, ok := c.coll.Get(id); !ok {
		c.state = State{Phase: PhaseIdle}
		return
	}
	c.state = State{Phase: PhaseSelected, ID: id}
}

// pointerAngle - угол в градусах от центра к указателю (ось Y экрана направлена вниз).
func pointerAngle(center, p Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}
