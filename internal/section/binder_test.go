package section

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/chatflow/internal/timing"
	"github.com/san-kum/chatflow/internal/visibility"
)

func TestPresentation_String(t *testing.T) {
	assert.Equal(t, "hidden-offset", Hidden.String())
	assert.Equal(t, "visible-settled", Settled.String())
}

func TestBinder_RenderKeepsHeight(t *testing.T) {
	obs := visibility.NewObserver(visibility.Viewport{Top: 0, Height: 10})
	b, err := NewBinder(Features, obs, visibility.DefaultThreshold, nil, 0)
	require.NoError(t, err)

	body := "one\ntwo\nthree"
	b.Bind(&visibility.Region{Top: 100, Height: 3})
	assert.Equal(t, Hidden, b.Presentation())
	hidden := b.Render(body)
	assert.Equal(t, 3, len(strings.Split(hidden, "\n")))
	assert.NotContains(t, hidden, "one")

	obs.SetViewport(visibility.Viewport{Top: 95, Height: 10})
	assert.Equal(t, Settled, b.Presentation())
	assert.Equal(t, body, b.Render(body))
}

func TestBinder_SettleAnimation(t *testing.T) {
	clock := timing.NewVirtual()
	obs := visibility.NewObserver(visibility.Viewport{Top: 0, Height: 10})
	b, err := NewBinder(Pricing, obs, visibility.DefaultThreshold, clock, 200*time.Millisecond)
	require.NoError(t, err)

	var changes []ID
	b.OnChange(func(id ID) { changes = append(changes, id) })
	b.Bind(&visibility.Region{Top: 2, Height: 4})

	body := "a\nb\nc\nd"
	assert.Equal(t, SettleRows, b.Offset())
	assert.Equal(t, "\n\na\nb", b.Render(body))

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, b.Offset())
	assert.Equal(t, "\na\nb\nc", b.Render(body))

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 0, b.Offset())
	assert.Equal(t, body, b.Render(body))
	assert.Equal(t, 0, clock.Pending())
	assert.Len(t, changes, 3)
}

func TestBinder_ReleaseStopsSettle(t *testing.T) {
	clock := timing.NewVirtual()
	obs := visibility.NewObserver(visibility.Viewport{Top: 0, Height: 10})
	b, _ := NewBinder(CTA, obs, visibility.DefaultThreshold, clock, time.Second)
	b.Bind(&visibility.Region{Top: 0, Height: 2})
	require.Equal(t, 1, clock.Pending())

	b.Release()
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, 0, b.Offset())
	assert.Equal(t, Settled, b.Presentation())
}

func TestNewBinder_InvalidThreshold(t *testing.T) {
	obs := visibility.NewObserver(visibility.Viewport{Height: 10})
	_, err := NewBinder(Hero, obs, 2, nil, 0)
	assert.ErrorIs(t, err, visibility.ErrInvalidThreshold)
}

func TestSet_SectionsAreIndependent(t *testing.T) {
	obs := visibility.NewObserver(visibility.Viewport{Top: 0, Height: 10})
	s, err := NewSet(obs, visibility.DefaultThreshold, nil, 0, Hero, Features, Pricing, Features)
	require.NoError(t, err)
	assert.Equal(t, []ID{Hero, Features, Pricing}, s.IDs())

	s.Get(Hero).Bind(&visibility.Region{Top: 0, Height: 8})
	s.Get(Features).Bind(&visibility.Region{Top: 8, Height: 20})
	s.Get(Pricing).Bind(&visibility.Region{Top: 28, Height: 20})
	assert.Equal(t, []ID{Hero}, s.Revealed())

	// Jump straight to pricing; features is skipped over.
	obs.SetViewport(visibility.Viewport{Top: 30, Height: 10})
	assert.Equal(t, []ID{Hero, Pricing}, s.Revealed())

	obs.SetViewport(visibility.Viewport{Top: 12, Height: 10})
	assert.Equal(t, []ID{Hero, Features, Pricing}, s.Revealed())
	assert.Equal(t, 0, obs.Live())

	s.Release()
	assert.Nil(t, s.Get("missing"))
}
