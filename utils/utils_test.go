package utils

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAndFilter(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	even := Filter(doubled, func(i int) bool { return i%4 == 0 })
	assert.Equal(t, []int{4}, even)
	assert.Empty(t, Filter([]int{}, func(int) bool { return true }))
}

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"b": 1, "a": 2})
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)
}

type failingCloser struct{ closed bool }

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("boom")
}

func TestCloser(t *testing.T) {
	c := &failingCloser{}
	Closer(c)()
	assert.True(t, c.closed)
}
