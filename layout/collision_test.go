package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDangerRects(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 3, Bottom: 1}

	h := dangerRects(r, true)
	require.Equal(t, Rect{Left: -1, Top: 0, Right: 4, Bottom: 1}, h[0])
	require.Equal(t, Rect{Left: 0, Top: -1, Right: 3, Bottom: 2}, h[1])

	v := dangerRects(Rect{Left: 0, Top: 0, Right: 1, Bottom: 3}, false)
	require.Equal(t, Rect{Left: 0, Top: -1, Right: 1, Bottom: 4}, v[0])
	require.Equal(t, Rect{Left: -1, Top: 0, Right: 2, Bottom: 3}, v[1])
}

func TestClassifyContactPlain(t *testing.T) {
	cat := newWordLayout("cat", 0, 0, true)

	tests := map[string]struct {
		candidate *WordLayout
		want      contact
	}{
		"clear":             {newWordLayout("dog", 0, -2, true), contactNone},
		"diagonal":          {newWordLayout("dog", 3, 1, true), contactNone},
		"above":             {newWordLayout("dog", 0, -1, true), contactIllegal},
		"extends the word":  {newWordLayout("dog", 3, 0, true), contactIllegal},
		"touches the end":   {newWordLayout("dog", 3, -1, false), contactIllegal},
		"crosses":           {newWordLayout("act", 2, -2, false), contactIllegal},
		"hangs below start": {newWordLayout("dog", 0, 1, false), contactIllegal},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, classifyContact(tc.candidate, cat, nil))
		})
	}
}

func TestClassifyContactInsertion(t *testing.T) {
	// s
	// a
	// w a s
	//   s
	saw := newWordLayout("saw", 0, 0, false)
	was := newWordLayout("was", 0, 2, true)
	saw.recordIntersection(was)
	as := newWordLayout("as", 1, 2, false)

	t.Run("corner beside a word crossing the same target", func(t *testing.T) {
		require.Equal(t, contactCorner, classifyContact(as, saw, was))
	})

	t.Run("corner beside a target that cannot take another crossing", func(t *testing.T) {
		full := newWordLayout("was", 0, 2, true)
		full.recordIntersection(newWordLayout("saw", 0, 0, false))
		full.recordIntersection(newWordLayout("sat", 2, 0, false))
		require.False(t, full.CanIntersect())
		require.Equal(t, contactIllegal, classifyContact(as, saw, full))
	})

	t.Run("parallel neighbour not crossing the target", func(t *testing.T) {
		st := newWordLayout("st", 0, 3, false)
		require.Equal(t, contactIllegal, classifyContact(as, st, was))
	})

	t.Run("parallel neighbour along two cells", func(t *testing.T) {
		sat := newWordLayout("sat", 2, 2, false)
		require.Equal(t, contactIllegal, classifyContact(as, sat, was))
	})

	t.Run("perpendicular word crossed on a matching letter", func(t *testing.T) {
		so := newWordLayout("so", 1, 3, true)
		require.Equal(t, contactCrossing, classifyContact(as, so, was))
	})

	t.Run("perpendicular word crossed on another letter", func(t *testing.T) {
		no := newWordLayout("no", 1, 3, true)
		require.Equal(t, contactIllegal, classifyContact(as, no, was))
	})

	t.Run("perpendicular word touching the end", func(t *testing.T) {
		on := newWordLayout("on", 2, 3, true)
		require.Equal(t, contactIllegal, classifyContact(as, on, was))
	})

	t.Run("perpendicular word already fully crossed", func(t *testing.T) {
		so := newWordLayout("so", 1, 3, true)
		so.recordIntersection(newWordLayout("o", 2, 3, false))
		require.Equal(t, contactIllegal, classifyContact(as, so, was))
	})

	t.Run("far away", func(t *testing.T) {
		far := newWordLayout("far", 10, 10, true)
		require.Equal(t, contactNone, classifyContact(as, far, was))
	})
}
