//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSet(t *testing.T) {
	s := ToSet([]string{"a", "b", "a"})
	assert.Len(t, s, 2)
	assert.Contains(t, s, "a")
	assert.Contains(t, s, "b")
}

func TestUnique(t *testing.T) {
	assert.ElementsMatch(t, []int{1, 2, 3}, Unique([]int{1, 2, 2, 3, 1}))
	assert.Empty(t, Unique([]string{}))
}

func TestSetSubtraction(t *testing.T) {
	out := SetSubtraction([]string{"a", "b", "c", "b"}, []string{"b"})
	assert.ElementsMatch(t, []string{"a", "c"}, out)

	// nothing to remove
	assert.ElementsMatch(t, []string{"x"}, SetSubtraction([]string{"x"}, []string{"y"}))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	m := map[string]struct{}{"a": {}, "b": {}}
	assert.ElementsMatch(t, []string{"a", "b"}, StringMapKeysIntoSlice(m))
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedMapKeys(m))
}
