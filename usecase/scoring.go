package usecase

// Score computes the signed relevance of a movie's tag pool against a user's
// accumulated preference maps: likes add their count, dislikes subtract
// double theirs. Dislikes are weighted double to bias ranking away from
// previously disliked content. Tag-set size is deliberately not normalized;
// longer tag lists accumulate more score.
func Score(likes map[string]int, dislikes map[string]int, movieTags []string) int {
	score := 0
	for _, tag := range movieTags {
		score += likes[tag]
		score -= 2 * dislikes[tag]
	}
	return score
}

// Jaccard returns |a ∩ b| / |a ∪ b|, with 0 when both sets are empty.
func Jaccard(a map[string]struct{}, b map[string]struct{}) float64 {
	intersection := 0
	for tag := range a {
		if _, ok := b[tag]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func tagSet(tagLists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tags := range tagLists {
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
	}
	return set
}
