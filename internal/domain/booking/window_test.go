//go:build unit

package booking_test

import (
	"testing"
	"time"

	"equiplend/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var base = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func mustWindow(t *testing.T, start, end time.Time) booking.Window {
	t.Helper()
	w, err := booking.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		w, err := booking.NewWindow(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, w.Start())
		assert.Equal(t, base.Add(2*time.Hour), w.End())
		assert.Equal(t, 2*time.Hour, w.Duration())
	})

	t.Run("開始と終了が同時刻NG", func(t *testing.T) {
		_, err := booking.NewWindow(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("終了が開始より前NG", func(t *testing.T) {
		_, err := booking.NewWindow(base, base.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("ゼロ値NG", func(t *testing.T) {
		_, err := booking.NewWindow(time.Time{}, base)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)

		_, err = booking.NewWindow(base, time.Time{})
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})
}

func TestWindowOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.Window
		overlaps bool
	}{
		{
			name:     "完全一致は重複",
			a:        mustWindow(t, base, base.Add(time.Hour)),
			b:        mustWindow(t, base, base.Add(time.Hour)),
			overlaps: true,
		},
		{
			name:     "部分的な重なりは重複",
			a:        mustWindow(t, base, base.Add(2*time.Hour)),
			b:        mustWindow(t, base.Add(time.Hour), base.Add(3*time.Hour)),
			overlaps: true,
		},
		{
			name:     "包含は重複",
			a:        mustWindow(t, base, base.Add(4*time.Hour)),
			b:        mustWindow(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			overlaps: true,
		},
		{
			// 半開区間: 前の終了時刻に次が始まるのは許される
			name:     "終了時刻と開始時刻が一致する隣接は重複しない",
			a:        mustWindow(t, base, base.Add(time.Hour)),
			b:        mustWindow(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			overlaps: false,
		},
		{
			name:     "完全に離れている場合は重複しない",
			a:        mustWindow(t, base, base.Add(time.Hour)),
			b:        mustWindow(t, base.Add(3*time.Hour), base.Add(4*time.Hour)),
			overlaps: false,
		},
		{
			name:     "1ナノ秒でも食い込めば重複",
			a:        mustWindow(t, base, base.Add(time.Hour)),
			b:        mustWindow(t, base.Add(time.Hour-time.Nanosecond), base.Add(2*time.Hour)),
			overlaps: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
		})
	}
}

// genWindow draws a random window within ±1000h of base at minute granularity.
func genWindow(t *rapid.T, label string) booking.Window {
	startMin := rapid.IntRange(-60000, 60000).Draw(t, label+"_start")
	durMin := rapid.IntRange(1, 10000).Draw(t, label+"_dur")
	start := base.Add(time.Duration(startMin) * time.Minute)
	return booking.ReconstructWindow(start, start.Add(time.Duration(durMin)*time.Minute))
}

func TestWindowOverlapsProperties(t *testing.T) {
	t.Run("対称性", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a := genWindow(rt, "a")
			b := genWindow(rt, "b")
			if a.Overlaps(b) != b.Overlaps(a) {
				rt.Fatalf("overlap not symmetric: %v vs %v", a, b)
			}
		})
	})

	t.Run("自己重複", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a := genWindow(rt, "a")
			if !a.Overlaps(a) {
				rt.Fatalf("window must overlap itself: %v", a)
			}
		})
	})

	t.Run("隣接ウィンドウは重複しない", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a := genWindow(rt, "a")
			durMin := rapid.IntRange(1, 10000).Draw(rt, "next_dur")
			b := booking.ReconstructWindow(a.End(), a.End().Add(time.Duration(durMin)*time.Minute))
			if a.Overlaps(b) {
				rt.Fatalf("adjacent windows must not overlap: %v then %v", a, b)
			}
		})
	})

	t.Run("包含は常に重複", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			outer := genWindow(rt, "outer")
			total := int(outer.Duration() / time.Minute)
			if total < 3 {
				rt.Skip("window too narrow to contain another")
			}
			offset := rapid.IntRange(1, total-2).Draw(rt, "offset")
			length := rapid.IntRange(1, total-offset-1).Draw(rt, "length")
			start := outer.Start().Add(time.Duration(offset) * time.Minute)
			inner := booking.ReconstructWindow(start, start.Add(time.Duration(length)*time.Minute))
			if !outer.Overlaps(inner) {
				rt.Fatalf("contained window must overlap: %v inside %v", inner, outer)
			}
		})
	})
}
