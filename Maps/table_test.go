package Maps

import (
	Fixed "github.com/g-m-twostay/go-fixed"
	"github.com/g-m-twostay/go-fixed/Lists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"strings"
	"testing"
)

type pair struct {
	k string
	v int
}

func hashPair(p pair) uint {
	return uint(Fixed.HashJenkinsString(p.k))
}

func cmpPair(x, y pair) int {
	return strings.Compare(x.k, y.k)
}

func TestTable_RoundTrip(t *testing.T) {
	u := New(16, hashPair, cmpPair, nil)
	require.NotNil(t, u)
	for i := 0; i < 200; i++ {
		u.Insert(pair{"k" + strconv.Itoa(i), i})
	}
	assert.EqualValues(t, 200, u.Size())
	for i := 0; i < 200; i++ {
		got, ok := u.Get(pair{k: "k" + strconv.Itoa(i)})
		require.True(t, ok, "key k%d missing", i)
		assert.Equal(t, i, got.v)
	}
	_, ok := u.Get(pair{k: "nope"})
	assert.False(t, ok)

	for i := 0; i < 200; i += 2 {
		got, ok := u.Remove(pair{k: "k" + strconv.Itoa(i)})
		require.True(t, ok)
		assert.Equal(t, i, got.v)
	}
	assert.EqualValues(t, 100, u.Size())
	for i := 0; i < 200; i++ {
		assert.Equal(t, i%2 == 1, u.Has(pair{k: "k" + strconv.Itoa(i)}), "key k%d", i)
	}
	_, ok = u.Remove(pair{k: "k0"})
	assert.False(t, ok, "removed a key twice")
}

// A single slot degenerates into one chain; everything must still work.
func TestTable_SingleSlot(t *testing.T) {
	u := New(1, hashPair, cmpPair, nil)
	u.Insert(pair{"a", 1})
	u.Insert(pair{"b", 2})
	u.Insert(pair{"c", 3})
	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := u.Get(pair{k: k})
		require.True(t, ok, "key %s", k)
		assert.Equal(t, want, got.v)
	}
	_, ok := u.Remove(pair{k: "b"})
	require.True(t, ok)
	assert.False(t, u.Has(pair{k: "b"}))
	assert.True(t, u.Has(pair{k: "a"}))
	assert.True(t, u.Has(pair{k: "c"}))
}

func TestTable_InsertShadows_PutReplaces(t *testing.T) {
	u := New(8, hashPair, cmpPair, nil)
	u.Insert(pair{"x", 1})
	u.Insert(pair{"x", 2}) //newer shadows older
	got, _ := u.Get(pair{k: "x"})
	assert.Equal(t, 2, got.v)
	assert.EqualValues(t, 2, u.Size())

	u.Remove(pair{k: "x"})
	got, ok := u.Get(pair{k: "x"})
	require.True(t, ok, "older duplicate should surface after removing the newer")
	assert.Equal(t, 1, got.v)

	assert.True(t, u.Put(pair{"x", 9}), "Put should replace")
	assert.EqualValues(t, 1, u.Size())
	assert.False(t, u.Put(pair{"y", 1}), "Put should insert when absent")
	assert.EqualValues(t, 2, u.Size())
}

func TestTable_Visit(t *testing.T) {
	u := New(4, hashPair, cmpPair, nil)
	for i := 0; i < 20; i++ {
		u.Insert(pair{"k" + strconv.Itoa(i), i})
	}
	seen := make(map[string]struct{})
	assert.Nil(t, u.Visit(func(p *pair) bool {
		seen[p.k] = struct{}{}
		return true
	}))
	assert.Len(t, seen, 20)

	stopped := u.Visit(func(p *pair) bool {
		return p.v != 13
	})
	require.NotNil(t, stopped, "visit didn't propagate the rejection")
	assert.Equal(t, 13, stopped.v)
}

func TestTable_SharedAllocator(t *testing.T) {
	al := Lists.NewAllocator[pair](32)
	a := New(4, hashPair, cmpPair, al)
	b := New(4, hashPair, cmpPair, al)
	a.Insert(pair{"a", 1})
	b.Insert(pair{"b", 2})
	a.Remove(pair{k: "a"})
	b.Insert(pair{"c", 3}) //can reuse the node a released
	got, ok := b.Get(pair{k: "c"})
	require.True(t, ok)
	assert.Equal(t, 3, got.v)
	assert.False(t, a.Has(pair{k: "a"}))
}

func TestTable_NewHashed(t *testing.T) {
	u := NewHashed[int](16, 7, nil)
	require.NotNil(t, u)
	for i := 0; i < 100; i++ {
		u.Insert(i)
	}
	for i := 0; i < 100; i++ {
		assert.True(t, u.Has(i), "key %d", i)
	}
	v, ok := u.Remove(42)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.False(t, u.Has(42))
}

func TestTable_BadArgs(t *testing.T) {
	assert.Nil(t, New[pair](0, hashPair, cmpPair, nil))
	assert.Nil(t, New[pair](4, nil, cmpPair, nil))
	assert.Nil(t, New[pair](4, hashPair, nil, nil))
}
