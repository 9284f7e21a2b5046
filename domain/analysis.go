package domain

import "context"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

type TagNamespace string

const (
	NamespaceFeature TagNamespace = "feature"
	NamespaceEmotion TagNamespace = "emotion"
	NamespaceTheme   TagNamespace = "theme"
)

// Tag is the internal discriminated form. The storage and analyzer
// boundaries keep three separate string arrays; the namespace there is
// positional, not encoded in the string.
type Tag struct {
	Namespace TagNamespace `json:"namespace"`
	Value     string       `json:"value"`
}

// AnalysisResult is the structured output of the external review analyzer.
type AnalysisResult struct {
	Features     []string             `json:"features"`
	Emotions     []string             `json:"emotions"`
	Themes       []string             `json:"themes"`
	TagSentiment map[string]Sentiment `json:"tag_sentiment"`
}

// Tags returns the namespaced form of the three arrays.
func (r *AnalysisResult) Tags() []Tag {
	tags := make([]Tag, 0, len(r.Features)+len(r.Emotions)+len(r.Themes))
	for _, v := range r.Features {
		tags = append(tags, Tag{Namespace: NamespaceFeature, Value: v})
	}
	for _, v := range r.Emotions {
		tags = append(tags, Tag{Namespace: NamespaceEmotion, Value: v})
	}
	for _, v := range r.Themes {
		tags = append(tags, Tag{Namespace: NamespaceTheme, Value: v})
	}
	return tags
}

// FlatTags returns all three namespaces as one pool. Scoring treats tags as
// a single flat set regardless of namespace.
func (r *AnalysisResult) FlatTags() []string {
	flat := make([]string, 0, len(r.Features)+len(r.Emotions)+len(r.Themes))
	flat = append(flat, r.Features...)
	flat = append(flat, r.Emotions...)
	flat = append(flat, r.Themes...)
	return flat
}

// ReviewAnalyzer extracts tags and per-tag sentiment from a free-text review.
// Implementations are stateless; rate limiting is owned by the caller.
type ReviewAnalyzer interface {
	Analyze(ctx context.Context, reviewText string, rating int, emotions []string) (*AnalysisResult, error)
}
