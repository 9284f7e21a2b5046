package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("likes add and dislikes subtract double", func(t *testing.T) {
		likes := map[string]int{"Family": 1, "Action": 1}
		dislikes := map[string]int{"Destiny": 1}
		tags := []string{"Family", "Action", "Destiny", "Exciting"}

		// 1 + 1 - 2*1 + 0
		assert.Equal(t, 0, Score(likes, dislikes, tags))
	})

	t.Run("counts weight repeated preferences", func(t *testing.T) {
		likes := map[string]int{"Revenge": 3}
		dislikes := map[string]int{"Slow": 2}

		assert.Equal(t, 3, Score(likes, dislikes, []string{"Revenge"}))
		assert.Equal(t, -4, Score(likes, dislikes, []string{"Slow"}))
		assert.Equal(t, -1, Score(likes, dislikes, []string{"Revenge", "Slow"}))
	})

	t.Run("empty inputs score zero", func(t *testing.T) {
		assert.Equal(t, 0, Score(nil, nil, []string{"Family"}))
		assert.Equal(t, 0, Score(map[string]int{"Family": 1}, nil, nil))
	})

	t.Run("does not mutate its inputs", func(t *testing.T) {
		likes := map[string]int{"Family": 1}
		dislikes := map[string]int{"Destiny": 1}
		tags := []string{"Family", "Destiny"}

		first := Score(likes, dislikes, tags)
		second := Score(likes, dislikes, tags)

		assert.Equal(t, first, second)
		assert.Equal(t, map[string]int{"Family": 1}, likes)
		assert.Equal(t, map[string]int{"Destiny": 1}, dislikes)
	})
}

func TestJaccard(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		a := tagSet([]string{"Family", "Action", "Exciting"})
		b := tagSet([]string{"Action", "Space"})

		// |{Action}| / |{Family, Action, Exciting, Space}|
		assert.InDelta(t, 0.25, Jaccard(a, b), 1e-9)
	})

	t.Run("one shared tag out of three", func(t *testing.T) {
		a := tagSet([]string{"Family", "Action"})
		b := tagSet([]string{"Action", "Destiny"})

		assert.InDelta(t, 1.0/3.0, Jaccard(a, b), 1e-9)
	})

	t.Run("identical sets are fully similar", func(t *testing.T) {
		a := tagSet([]string{"Family", "Action"})
		assert.Equal(t, 1.0, Jaccard(a, a))
	})

	t.Run("disjoint sets are dissimilar", func(t *testing.T) {
		a := tagSet([]string{"Family"})
		b := tagSet([]string{"Space"})
		assert.Equal(t, 0.0, Jaccard(a, b))
	})

	t.Run("two empty sets", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaccard(tagSet(), tagSet()))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := tagSet([]string{"Family", "Action"})
		b := tagSet([]string{"Action", "Space", "Destiny"})
		assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
	})
}

func TestTopTagsByFrequency(t *testing.T) {
	t.Run("orders by count descending", func(t *testing.T) {
		lists := [][]string{
			{"Family", "Action"},
			{"Family", "Space"},
			{"Family", "Action"},
		}

		assert.Equal(t, []string{"Family", "Action", "Space"}, topTagsByFrequency(lists, 10))
	})

	t.Run("truncates to n", func(t *testing.T) {
		lists := [][]string{{"a", "b", "c", "d"}}
		assert.Len(t, topTagsByFrequency(lists, 2), 2)
	})

	t.Run("ties keep first occurrence order", func(t *testing.T) {
		lists := [][]string{{"Exciting", "Gloomy"}, {"Gloomy", "Exciting"}}
		assert.Equal(t, []string{"Exciting", "Gloomy"}, topTagsByFrequency(lists, 10))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, topTagsByFrequency(nil, 10))
	})
}
