package rounds

import (
	"testing"

	"Backend-Consensus/src/models"

	"github.com/stretchr/testify/assert"
)

func TestNextRoundNumber(t *testing.T) {
	assert.Equal(t, 1, nextRoundNumber(nil))
	assert.Equal(t, 4, nextRoundNumber(&models.Round{RoundNumber: 3}))
}

func TestNextRoundQuestionsFallbackChain(t *testing.T) {
	form := &models.Form{Questions: []string{"default q1", "default q2"}}
	last := &models.Round{Questions: []string{"previous override"}}

	// explicit override wins over everything
	got := nextRoundQuestions([]string{"new q"}, last, form)
	assert.Equal(t, []string{"new q"}, got)

	// no override: previous round's questions carry forward
	got = nextRoundQuestions(nil, last, form)
	assert.Equal(t, []string{"previous override"}, got)

	// previous round had no override either: form defaults
	got = nextRoundQuestions(nil, &models.Round{}, form)
	assert.Equal(t, form.Questions, got)

	// very first round
	got = nextRoundQuestions(nil, nil, form)
	assert.Equal(t, form.Questions, got)
}

func TestCarriedSynthesis(t *testing.T) {
	assert.Equal(t, "", carriedSynthesis(nil))
	assert.Equal(t, "", carriedSynthesis(&models.Round{}))
	assert.Equal(t, "round two summary", carriedSynthesis(&models.Round{Synthesis: "round two summary"}))
}

func TestEffectiveQuestions(t *testing.T) {
	assert.Equal(t, []string{"override"}, effectiveQuestions([]string{"override"}, []string{"default"}))
	assert.Equal(t, []string{"default"}, effectiveQuestions(nil, []string{"default"}))

	// never nil in API responses
	assert.Equal(t, []string{}, effectiveQuestions(nil, nil))
}
