package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type recorder struct {
	changes []Change
}

func (r *recorder) Notify(c Change) {
	r.changes = append(r.changes, c)
}

func TestList_AppendNotifiesStructureChanged(t *testing.T) {
	l := NewList[string]()
	rec := &recorder{}
	l.Subscribe(rec)

	l.Append("lamp")
	l.Append("rope")

	assert.Equal(t, []string{"lamp", "rope"}, l.Items())
	require.Len(t, rec.changes, 2)
	for _, c := range rec.changes {
		assert.Equal(t, StructureChanged, c.Kind)
	}
}

func TestList_RemoveFirst(t *testing.T) {
	l := NewList("a", "b", "a")
	rec := &recorder{}
	l.Subscribe(rec)

	assert.True(t, l.RemoveFirst("a"))
	assert.Equal(t, []string{"b", "a"}, l.Items())
	assert.Len(t, rec.changes, 1)

	assert.False(t, l.RemoveFirst("zzz"))
	assert.Len(t, rec.changes, 1, "removing an absent element must not notify")
}

func TestList_ReplaceAtNotifiesContentUpdated(t *testing.T) {
	l := NewList("a", "b", "c")
	rec := &recorder{}
	l.Subscribe(rec)

	assert.True(t, l.ReplaceAt(1, "B"))
	assert.Equal(t, []string{"a", "B", "c"}, l.Items())
	require.Len(t, rec.changes, 1)
	assert.Equal(t, Change{Kind: ContentUpdated, Index: 1}, rec.changes[0])

	assert.False(t, l.ReplaceAt(3, "x"))
	assert.False(t, l.ReplaceAt(-1, "x"))
	assert.Len(t, rec.changes, 1)
}

func TestList_DuplicateSubscriptionNotifiesTwice(t *testing.T) {
	l := NewList[int]()
	rec := &recorder{}
	l.Subscribe(rec)
	l.Subscribe(rec)

	l.Append(1)
	assert.Len(t, rec.changes, 2)

	l.Unsubscribe(rec)
	assert.Equal(t, 1, l.Listeners())
	l.Append(2)
	assert.Len(t, rec.changes, 3)
}

func TestList_UnsubscribeUnknownIsNoop(t *testing.T) {
	l := NewList[int]()
	l.Unsubscribe(&recorder{})
	assert.Equal(t, 0, l.Listeners())
}

func TestList_UnsubscribedListenerIsNotNotified(t *testing.T) {
	l := NewList[int]()
	a, b := &recorder{}, &recorder{}
	l.Subscribe(a)
	l.Subscribe(b)
	l.Unsubscribe(a)

	l.Append(7)
	assert.Empty(t, a.changes)
	assert.Len(t, b.changes, 1)
}

type selfRemover struct {
	list  *List[int]
	count int
}

func (s *selfRemover) Notify(Change) {
	s.count++
	s.list.Unsubscribe(s)
}

func TestList_ListenerMayUnsubscribeDuringNotify(t *testing.T) {
	l := NewList[int]()
	s := &selfRemover{list: l}
	other := &recorder{}
	l.Subscribe(s)
	l.Subscribe(other)

	l.Append(1)
	l.Append(2)

	assert.Equal(t, 1, s.count)
	assert.Len(t, other.changes, 2)
}

func TestList_AllStopsEarly(t *testing.T) {
	l := NewList(1, 2, 3, 4)
	var seen []int
	for i, v := range l.All() {
		if i == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestList_ItemsIsSnapshot(t *testing.T) {
	l := NewList(1, 2)
	snap := l.Items()
	snap[0] = 99
	v, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestList_NilReadsAsEmpty(t *testing.T) {
	var l *List[string]

	assert.Equal(t, 0, l.Len())
	_, ok := l.At(0)
	assert.False(t, ok)
	assert.Equal(t, -1, l.IndexOf("x"))
	assert.Empty(t, l.Items())
	assert.Equal(t, 0, l.Listeners())
	for range l.All() {
		t.Fatal("nil list yielded an element")
	}
}

func TestPropertyEveryMutationNotifiesOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := NewList[int]()
		rec := &recorder{}
		l.Subscribe(rec)

		expected := 0
		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 50).Draw(t, "ops")
		for _, op := range ops {
			v := rapid.IntRange(0, 5).Draw(t, "value")
			switch op {
			case 0:
				l.Append(v)
				expected++
			case 1:
				if l.RemoveFirst(v) {
					expected++
				}
			case 2:
				if l.Len() == 0 {
					continue
				}
				i := rapid.IntRange(0, l.Len()-1).Draw(t, "index")
				require.True(t, l.ReplaceAt(i, v))
				expected++
				assert.Equal(t, Change{Kind: ContentUpdated, Index: i}, rec.changes[len(rec.changes)-1])
			}
		}
		assert.Len(t, rec.changes, expected)
	})
}
