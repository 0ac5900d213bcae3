package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftkit/draftkit/pkg/generator"
)

func TestFallbackDraft_AllTones(t *testing.T) {
	t.Parallel()

	for _, tone := range generator.Tones() {
		got := generator.FallbackDraft("Request Budget Approval", tone)

		assert.NotEmpty(t, got, string(tone))
		assert.True(t, strings.HasPrefix(got, "Subject: Request Budget Approval"), string(tone))
		assert.Contains(t, got, "request budget approval", "prompt is lowercased in the body")
		assert.Contains(t, got, "[Your Name]", string(tone))
	}
}

func TestFallbackDraft_Deterministic(t *testing.T) {
	t.Parallel()

	first := generator.FallbackDraft("follow up", generator.ToneFriendly)
	second := generator.FallbackDraft("follow up", generator.ToneFriendly)
	assert.Equal(t, first, second)
}

func TestFallbackDraft_ToneSkeletonsDiffer(t *testing.T) {
	t.Parallel()

	seen := make(map[string]generator.Tone)
	for _, tone := range generator.Tones() {
		got := generator.FallbackDraft("same prompt", tone)
		prev, dup := seen[got]
		assert.False(t, dup, "tones %s and %s share a skeleton", prev, tone)
		seen[got] = tone
	}
}

func TestTone_Valid(t *testing.T) {
	t.Parallel()

	for _, tone := range generator.Tones() {
		assert.True(t, tone.Valid())
	}
	assert.False(t, generator.Tone("casual").Valid())
	assert.False(t, generator.Tone("").Valid())
}
