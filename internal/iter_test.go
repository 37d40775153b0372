package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedSeq2(t *testing.T) {
	assert := assert.New(t)

	m := map[int]string{4: "d", 0: "a", 15: "f", 1: "b"}

	var keys []int
	var values []string
	for k, v := range SortedSeq2(m) {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal([]int{0, 1, 4, 15}, keys)
	assert.Equal([]string{"a", "b", "d", "f"}, values)
}

func TestSortedSeq2_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	m := map[int]int{3: 3, 2: 2, 1: 1}

	count := 0
	for k := range SortedSeq2(m) {
		count++
		if k == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestMaxKey(t *testing.T) {
	assert := assert.New(t)

	_, ok := MaxKey(map[int]bool{})
	assert.False(ok)

	max, ok := MaxKey(map[int]bool{3: true, 9: false, 1: true})
	assert.True(ok)
	assert.Equal(9, max)
}
