package ornament

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)

func TestNew_Defaults(t *testing.T) {
	o := New(SectionWelcome, "rose", "data:image/png;base64,AAA", fixedNow)

	assert.True(t, strings.HasPrefix(o.ID, "ornament-1715940000000-"))
	assert.Equal(t, SectionWelcome, o.Section)
	if assert.NotNil(t, o.Position.Top) && assert.NotNil(t, o.Position.Left) {
		assert.Equal(t, "10%", *o.Position.Top)
		assert.Equal(t, "10%", *o.Position.Left)
	}
	assert.Nil(t, o.Position.Right)
	assert.Nil(t, o.Position.Bottom)
	assert.Equal(t, 1.0, o.Transform.Scale)
	assert.Equal(t, 0.0, o.Transform.Rotate)
	assert.Equal(t, Style{Width: "150px", Height: "auto", Opacity: 1, ZIndex: 15}, o.Style)
	assert.True(t, o.IsVisible)
	assert.Nil(t, o.Animation)
	assert.Equal(t, fixedNow, o.CreatedAt)
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(fixedNow), NewID(fixedNow))
}

func TestUnmarshal_FillsDefaultsAndClamps(t *testing.T) {
	raw := `{
		"id": "o1",
		"section": "gift",
		"image": "img",
		"position": {"top": "5%", "bottom": "7%", "left": null, "right": "3%"},
		"transform": {"scale": 9, "rotate": 270},
		"style": {"width": "80px", "opacity": -1, "zIndex": 99},
		"animation": {"enabled": true, "type": "sway", "intensity": 4, "delay": 12, "entranceDuration": 50}
	}`
	var o Ornament
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	assert.Equal(t, SectionGift, o.Section)
	assert.Equal(t, MaxScale, o.Transform.Scale)
	assert.Equal(t, 270.0, o.Transform.Rotate) // угол не нормализуется
	assert.Equal(t, 0.0, o.Style.Opacity)
	assert.Equal(t, MaxZIndex, o.Style.ZIndex)
	assert.Equal(t, "auto", o.Style.Height)
	assert.True(t, o.IsVisible) // отсутствует → по умолчанию видим
	// bottom/right авторитетны — top/left обнулены
	assert.Nil(t, o.Position.Top)
	assert.Nil(t, o.Position.Left)
	require.NotNil(t, o.Animation)
	assert.Equal(t, MaxIntensity, o.Animation.Intensity)
	assert.Equal(t, MaxDelay, o.Animation.Delay)
	assert.Equal(t, MinEntranceDuration, o.Animation.EntranceDuration)
	assert.Equal(t, SpeedNormal, o.Animation.Speed)
}

func TestUnmarshal_MissingTransformKeepsScaleOne(t *testing.T) {
	var o Ornament
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","section":"rsvp","image":"i"}`), &o))
	assert.Equal(t, 1.0, o.Transform.Scale)
	assert.Equal(t, 1.0, o.Style.Opacity)
	assert.Equal(t, DefaultZIndex, o.Style.ZIndex)
	assert.Equal(t, DefaultWidth, o.Style.Width)
}

func TestUnmarshal_EmptyPositionGetsDefaultAnchors(t *testing.T) {
	var o Ornament
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","section":"gift","image":"i","position":{}}`), &o))
	if assert.NotNil(t, o.Position.Top) && assert.NotNil(t, o.Position.Left) {
		assert.Equal(t, DefaultTop, *o.Position.Top)
		assert.Equal(t, DefaultLeft, *o.Position.Left)
	}
	assert.Nil(t, o.Position.Right)
	assert.Nil(t, o.Position.Bottom)

	// заданная ось не трогается
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","section":"gift","image":"i","position":{"bottom":"5%"}}`), &o))
	assert.Nil(t, o.Position.Top)
	if assert.NotNil(t, o.Position.Bottom) && assert.NotNil(t, o.Position.Left) {
		assert.Equal(t, "5%", *o.Position.Bottom)
		assert.Equal(t, DefaultLeft, *o.Position.Left)
	}
}

func TestUnmarshal_UnknownEnumsDoNotFail(t *testing.T) {
	raw := `{"id":"x","section":"afterparty","image":"i",
		"animation":{"enabled":true,"type":"wobble","speed":"ludicrous","entranceEnabled":true,"entrance":"spiralIn"}}`
	var o Ornament
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	assert.Equal(t, Section("afterparty"), o.Section)
	assert.False(t, o.Section.Known())
	assert.True(t, o.Animation.Type.Legacy())
	assert.True(t, o.Animation.Speed.Legacy())
	assert.True(t, o.Animation.Entrance.Legacy())
	assert.True(t, Resolve(o.Animation).Static())
	assert.Nil(t, ResolveEntrance(o.Animation))
}

func TestMarshal_UnknownEnumsSurviveRoundTrip(t *testing.T) {
	raw := `{"id":"x","section":"welcome","image":"i",
		"animation":{"enabled":true,"type":"wiggle","speed":"turbo","entranceEnabled":true,"entrance":"bounceIn"}}`
	var o Ornament
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	b, err := json.Marshal(Data{Ornaments: []Ornament{o}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"wiggle"`)
	assert.Contains(t, string(b), `"speed":"turbo"`)
	assert.Contains(t, string(b), `"entrance":"bounceIn"`)

	var back Data
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back.Ornaments, 1)
	assert.Equal(t, o, back.Ornaments[0])

	section, err := json.Marshal(Ornament{ID: "y", Section: "afterparty"})
	require.NoError(t, err)
	assert.Contains(t, string(section), `"section":"afterparty"`)
}

func TestMarshal_RoundTrip(t *testing.T) {
	o := New(SectionTimeline, "flower", "img", fixedNow)
	o.SetAnimation(&Animation{Enabled: true, Type: LoopFloat, Speed: SpeedFast, Intensity: 0.3,
		EntranceEnabled: true, Entrance: EntranceSlideLeft, EntranceDuration: 900})

	b, err := json.Marshal(Data{Ornaments: []Ornament{o}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"section":"timeline"`)
	assert.Contains(t, string(b), `"right":null`)
	assert.Contains(t, string(b), `"entrance":"slideLeft"`)

	var back Data
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back.Ornaments, 1)
	assert.Equal(t, o, back.Ornaments[0])
}

func TestValidateData(t *testing.T) {
	good := New(SectionWelcome, "a", "img", fixedNow)
	noImage := New(SectionWelcome, "b", "", fixedNow)
	noID := New(SectionGallery, "c", "img", fixedNow)
	noID.ID = ""
	badSection := New(SectionUnknown, "d", "img", fixedNow)

	assert.NoError(t, ValidateData(Data{Ornaments: []Ornament{good}}))
	assert.NoError(t, ValidateData(Data{}))

	err := ValidateData(Data{Ornaments: []Ornament{good, noImage, noID, badSection, good}})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Problems, 4)
	assert.Equal(t, FieldError{Index: 1, ID: noImage.ID, Field: "image", Reason: "required"}, ve.Problems[0])
	assert.Equal(t, "id", ve.Problems[1].Field)
	assert.Equal(t, 2, ve.Problems[1].Index)
	assert.Equal(t, "section", ve.Problems[2].Field)
	assert.Equal(t, 4, ve.Problems[3].Index) // дубликат id
	assert.Contains(t, err.Error(), "ornament #1")
}

func TestSetters_Clamp(t *testing.T) {
	o := New(SectionEvent, "x", "img", fixedNow)

	o.SetScale(0.1)
	assert.Equal(t, MinScale, o.Transform.Scale)
	o.SetScale(3.5)
	assert.Equal(t, MaxScale, o.Transform.Scale)
	o.SetOpacity(1.7)
	assert.Equal(t, 1.0, o.Style.Opacity)
	o.SetZIndex(2)
	assert.Equal(t, MinZIndex, o.Style.ZIndex)
	o.SetZIndex(50)
	assert.Equal(t, MaxZIndex, o.Style.ZIndex)
	o.SetRotate(-190.4)
	assert.Equal(t, -190.0, o.Transform.Rotate)
}

func TestSetWidth_KeepsOriginForRightAnchor(t *testing.T) {
	container := Size{Width: 400, Height: 800}
	o := New(SectionEvent, "x", "img", fixedNow)
	FlipAnchor(&o, AnchorRight, AnchorTop, container, 0)
	before := Origin(o, container, 0)

	o.SetWidth(200, container, 0)

	assert.Equal(t, "200px", o.Style.Width)
	after := Origin(o, container, 0)
	assert.InDelta(t, before.X, after.X, 0.05)
	assert.InDelta(t, before.Y, after.Y, 0.05)
}
