package usecase

import "sort"

// topTagsByFrequency counts every tag across the given lists and returns the
// n most frequent, descending. Ties keep first-occurrence order; the tie
// break is explicitly non-critical.
func topTagsByFrequency(tagLists [][]string, n int) []string {
	counts := make(map[string]int)
	var order []string

	for _, tags := range tagLists {
		for _, tag := range tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
