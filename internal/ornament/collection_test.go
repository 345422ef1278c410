package ornament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_NewOrnamentAppearsOnlyInItsSection(t *testing.T) {
	c := NewCollection(Data{})
	o := New(SectionWelcome, "rose", "img", fixedNow)
	require.NoError(t, c.Add(o))

	got := c.ForSection(SectionWelcome)
	if assert.Len(t, got, 1) {
		assert.Equal(t, o.ID, got[0].ID)
	}
	for _, s := range Sections() {
		if s == SectionWelcome {
			continue
		}
		assert.Empty(t, c.ForSection(s), "section %s", s)
	}
}

func TestCollection_VisibilityFiltering(t *testing.T) {
	a := New(SectionGallery, "a", "img", fixedNow)
	b := New(SectionGallery, "b", "img", fixedNow)
	c := NewCollection(Data{Ornaments: []Ornament{a, b}})

	require.NoError(t, c.Update(a.ID, func(o *Ornament) { o.SetVisible(false) }))

	visible := c.ForSection(SectionGallery)
	if assert.Len(t, visible, 1) {
		assert.Equal(t, b.ID, visible[0].ID)
	}
	// скрытый остаётся в коллекции
	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.BySection(SectionGallery), 2)
	_, ok := c.Get(a.ID)
	assert.True(t, ok)

	counts := c.SectionCounts()
	assert.Equal(t, 1, counts[SectionGallery])
}

func TestCollection_CopiesDoNotAlias(t *testing.T) {
	o := New(SectionRSVP, "a", "img", fixedNow)
	c := NewCollection(Data{Ornaments: []Ornament{o}})

	got, _ := c.Get(o.ID)
	*got.Position.Top = "99%"
	got.Name = "changed"

	again, _ := c.Get(o.ID)
	assert.Equal(t, "10%", *again.Position.Top)
	assert.Equal(t, "a", again.Name)
	// исходные данные тоже не затронуты
	assert.Equal(t, "10%", *o.Position.Top)
}

func TestCollection_AddRemoveUpdate(t *testing.T) {
	c := NewCollection(Data{})
	o := New(SectionFooter, "a", "img", fixedNow)
	require.NoError(t, c.Add(o))
	assert.ErrorIs(t, c.Add(o), ErrDuplicateID)

	assert.ErrorIs(t, c.Update("missing", func(*Ornament) {}), ErrNotFound)
	require.NoError(t, c.Update(o.ID, func(o *Ornament) { o.Transform.Scale = 10 }))
	got, _ := c.Get(o.ID)
	assert.Equal(t, MaxScale, got.Transform.Scale) // Update нормализует

	assert.True(t, c.Remove(o.ID))
	assert.False(t, c.Remove(o.ID))
	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.Snapshot().Ornaments)
}
