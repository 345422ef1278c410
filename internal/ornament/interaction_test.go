package ornament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, items ...Ornament) (*Controller, *Collection) {
	t.Helper()
	c := NewCollection(Data{Ornaments: items})
	return NewController(c, Size{Width: 400, Height: 800}), c
}

func TestController_SelectionIsExclusive(t *testing.T) {
	a := New(SectionWelcome, "a", "img", fixedNow)
	b := New(SectionWelcome, "b", "img", fixedNow)
	ctrl, _ := newTestController(t, a, b)

	assert.Equal(t, PhaseIdle, ctrl.State().Phase)
	require.NoError(t, ctrl.Select(a.ID))
	require.NoError(t, ctrl.Select(b.ID))

	assert.True(t, ctrl.IsSelected(b.ID))
	assert.False(t, ctrl.IsSelected(a.ID))
	assert.Equal(t, State{Phase: PhaseSelected, ID: b.ID}, ctrl.State())

	assert.ErrorIs(t, ctrl.Select("missing"), ErrNotFound)
	assert.True(t, ctrl.IsSelected(b.ID))

	ctrl.Deselect()
	_, ok := ctrl.Selected()
	assert.False(t, ok)
}

func TestController_DragTopRightAnchor(t *testing.T) {
	o := topRight("20%", "5%", "100px")
	ctrl, coll := newTestController(t, o)

	// перетаскивание запрещено без выбора
	assert.ErrorIs(t, ctrl.BeginDrag(o.ID, Point{}), ErrNotSelected)

	require.NoError(t, ctrl.Select(o.ID))
	// захват за точку внутри орнамента (исходный угол 280,160)
	require.NoError(t, ctrl.BeginDrag(o.ID, Point{X: 290, Y: 170}))
	assert.Equal(t, PhaseDragging, ctrl.State().Phase)

	preview, err := ctrl.DragTo(Point{X: 100, Y: 100})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 90, Y: 90}, preview)
	// до отпускания сущность не меняется
	unchanged, _ := coll.Get(o.ID)
	assert.Equal(t, "5%", *unchanged.Position.Right)

	require.NoError(t, ctrl.EndDrag(Point{X: 60, Y: 60}))
	assert.Equal(t, State{Phase: PhaseSelected, ID: o.ID}, ctrl.State())

	got, _ := coll.Get(o.ID)
	require.NotNil(t, got.Position.Right)
	require.NotNil(t, got.Position.Top)
	assert.Equal(t, "62.5%", *got.Position.Right)
	assert.Equal(t, "6.25%", *got.Position.Top)
	assert.Nil(t, got.Position.Left)
	assert.Nil(t, got.Position.Bottom)
}

func TestController_GesturesKeepAnchorExclusivity(t *testing.T) {
	bottomLeft := New(SectionGift, "bl", "img", fixedNow)
	bottomLeft.Position = Position{Bottom: strPtr("15%"), Left: strPtr("30%")}
	ctrl, coll := newTestController(t, bottomLeft)

	require.NoError(t, ctrl.Select(bottomLeft.ID))
	require.NoError(t, ctrl.BeginDrag(bottomLeft.ID, Point{X: 150, Y: 500}))
	require.NoError(t, ctrl.EndDrag(Point{X: 170, Y: 450}))
	got, _ := coll.Get(bottomLeft.ID)
	assertExclusive(t, got.Position)
	ax, ay := Anchors(got.Position)
	assert.Equal(t, AnchorLeft, ax)
	assert.Equal(t, AnchorBottom, ay)

	require.NoError(t, ctrl.BeginResize(bottomLeft.ID, Point{X: 0, Y: 0}))
	require.NoError(t, ctrl.EndResize(Point{X: 50, Y: 0}))
	got, _ = coll.Get(bottomLeft.ID)
	assertExclusive(t, got.Position)
}

func TestController_ResizeKeepsTopLeftCorner(t *testing.T) {
	o := topRight("20%", "5%", "100px")
	ctrl, coll := newTestController(t, o)

	assert.ErrorIs(t, ctrl.BeginResize(o.ID, Point{}), ErrNotSelected)
	require.NoError(t, ctrl.Select(o.ID))
	require.NoError(t, ctrl.BeginResize(o.ID, Point{X: 380, Y: 260}))

	size, err := ctrl.ResizeTo(Point{X: 430, Y: 260})
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 150, Height: 150}, size)

	require.NoError(t, ctrl.EndResize(Point{X: 430, Y: 300}))
	got, _ := coll.Get(o.ID)
	assert.Equal(t, "150px", got.Style.Width)
	assert.Equal(t, "auto", got.Style.Height)
	// угол 280,160 остался на месте → right = 400-280-150 = -30px
	assert.Equal(t, "-7.5%", *got.Position.Right)
	pt := Origin(got, ctrl.Container(), 0)
	assert.InDelta(t, 280, pt.X, 1e-9)
	assert.InDelta(t, 160, pt.Y, 1e-9)
}

func TestController_ResizeHasMinimumWidth(t *testing.T) {
	o := New(SectionEvent, "x", "img", fixedNow)
	ctrl, coll := newTestController(t, o)
	require.NoError(t, ctrl.Select(o.ID))
	require.NoError(t, ctrl.BeginResize(o.ID, Point{X: 200, Y: 200}))
	require.NoError(t, ctrl.EndResize(Point{X: -500, Y: 200}))

	got, _ := coll.Get(o.ID)
	assert.Equal(t, "20px", got.Style.Width)
}

func TestController_RotateIsTransientUntilRelease(t *testing.T) {
	o := New(SectionWelcome, "x", "img", fixedNow)
	o.Transform.Rotate = 30
	ctrl, coll := newTestController(t, o)
	require.NoError(t, ctrl.Select(o.ID))

	// центр: (40+75, 80+75) = (115, 155); указатель справа от центра → 0°
	require.NoError(t, ctrl.BeginRotate(o.ID, Point{X: 215, Y: 155}))
	st := ctrl.State()
	assert.Equal(t, PhaseRotating, st.Phase)
	assert.InDelta(t, 0, st.StartAngle, 1e-9)

	// указатель под центром → +90° к начальному углу, без сброса в 0
	deg, err := ctrl.RotateTo(Point{X: 115, Y: 255})
	require.NoError(t, err)
	assert.InDelta(t, 120, deg, 1e-9)
	preview, ok := ctrl.PreviewRotation()
	assert.True(t, ok)
	assert.InDelta(t, 120, preview, 1e-9)

	stored, _ := coll.Get(o.ID)
	assert.Equal(t, 30.0, stored.Transform.Rotate)

	require.NoError(t, ctrl.EndRotate(Point{X: 15.4, Y: 154}))
	got, _ := coll.Get(o.ID)
	assert.Equal(t, 211.0, got.Transform.Rotate) // 30 + 180.58, целые градусы, без нормализации
	assert.Equal(t, PhaseSelected, ctrl.State().Phase)
}

func TestController_RotateAccumulatesAcrossHalfTurn(t *testing.T) {
	o := New(SectionWelcome, "x", "img", fixedNow)
	ctrl, coll := newTestController(t, o)
	require.NoError(t, ctrl.Select(o.ID))

	c := Point{X: 115, Y: 155}
	require.NoError(t, ctrl.BeginRotate(o.ID, Point{X: c.X + 100, Y: c.Y}))
	for _, p := range []Point{
		{X: c.X, Y: c.Y + 100},
		{X: c.X - 100, Y: c.Y + 1},
		{X: c.X - 100, Y: c.Y - 1},
		{X: c.X, Y: c.Y - 100},
	} {
		_, err := ctrl.RotateTo(p)
		require.NoError(t, err)
	}
	require.NoError(t, ctrl.EndRotate(Point{X: c.X + 100, Y: c.Y - 1}))

	got, _ := coll.Get(o.ID)
	assert.Equal(t, 359.0, got.Transform.Rotate)
}

func TestController_CancelLeavesEntityUnchanged(t *testing.T) {
	o := New(SectionWelcome, "x", "img", fixedNow)
	ctrl, coll := newTestController(t, o)
	require.NoError(t, ctrl.Select(o.ID))
	require.NoError(t, ctrl.BeginRotate(o.ID, Point{X: 300, Y: 155}))
	_, _ = ctrl.RotateTo(Point{X: 115, Y: 400})

	// во время жеста нельзя выбрать другой орнамент или начать новый жест
	assert.ErrorIs(t, ctrl.Select(o.ID), ErrGestureActive)
	assert.ErrorIs(t, ctrl.BeginDrag(o.ID, Point{}), ErrGestureActive)

	ctrl.Cancel()
	assert.Equal(t, State{Phase: PhaseSelected, ID: o.ID}, ctrl.State())
	got, _ := coll.Get(o.ID)
	assert.Equal(t, 0.0, got.Transform.Rotate)

	_, err := ctrl.RotateTo(Point{})
	assert.ErrorIs(t, err, ErrNoGesture)
	assert.ErrorIs(t, ctrl.EndDrag(Point{}), ErrNoGesture)
}

func TestController_ForgetOnlyClearsDeletedSelection(t *testing.T) {
	a := New(SectionWelcome, "a", "img", fixedNow)
	b := New(SectionWelcome, "b", "img", fixedNow)
	ctrl, _ := newTestController(t, a, b)
	require.NoError(t, ctrl.Select(a.ID))

	ctrl.Forget(b.ID)
	assert.True(t, ctrl.IsSelected(a.ID))

	ctrl.Forget(a.ID)
	assert.Equal(t, PhaseIdle, ctrl.State().Phase)
}
