package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAugmenterWithoutKey(t *testing.T) {
	augmenter := NewAugmenter("")

	_, ok := augmenter.(*disabledAugmenter)
	assert.True(t, ok)
}

func TestDisabledAugmenter(t *testing.T) {
	augmenter := NewAugmenter("")
	ctx := context.Background()

	assert.Empty(t, augmenter.EnhanceSkills(ctx, "python developer resume"))
	assert.Equal(t,
		"AI recommendations unavailable. Please configure your Gemini API key.",
		augmenter.RecommendJobs(ctx, "resume text", "- Job at Company"),
	)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Empty(t, truncate("", 5))
}
