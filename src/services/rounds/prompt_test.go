package rounds

import (
	"strings"
	"testing"

	"Backend-Consensus/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryPrompt(t *testing.T) {
	questions := []string{"What is the biggest risk?", "What should we do first?"}
	responses := []models.Response{
		{Answers: map[string]interface{}{"q1": "Scope creep", "q2": "Freeze the spec"}},
		{Answers: map[string]interface{}{"q1": "Budget"}}, // q2 unanswered
	}

	prompt := BuildSummaryPrompt(questions, responses)

	assert.True(t, strings.HasPrefix(prompt, "Please synthesize the following responses to the questions that were asked.\n\n"))
	assert.Contains(t, prompt, "Questions:\n1. What is the biggest risk?\n2. What should we do first?\n")
	assert.Contains(t, prompt, "--- Responses ---")
	assert.Contains(t, prompt, "--- End of Responses ---")
	assert.True(t, strings.HasSuffix(prompt, "Now, please provide a concise synthesis of all the answers."))

	assert.Contains(t, prompt, "Response 1:")
	assert.Contains(t, prompt, "  - Q: What is the biggest risk?\n    A: Scope creep\n")
	assert.Contains(t, prompt, "    A: Freeze the spec\n")

	// unanswered question renders a placeholder, not a missing line
	assert.Contains(t, prompt, "Response 2:")
	assert.Contains(t, prompt, "  - Q: What should we do first?\n    A: No answer\n")
}

func TestBuildSummaryPromptNoResponses(t *testing.T) {
	prompt := BuildSummaryPrompt([]string{"Only question"}, nil)

	assert.Contains(t, prompt, "1. Only question")
	assert.NotContains(t, prompt, "Response 1:")
}

func TestAnswerText(t *testing.T) {
	answers := map[string]interface{}{
		"q1": "plain text",
		"q2": 42,
		"q3": nil,
	}

	assert.Equal(t, "plain text", answerText(answers, "q1"))
	assert.Equal(t, "42", answerText(answers, "q2"))
	assert.Equal(t, "No answer", answerText(answers, "q3"))
	assert.Equal(t, "No answer", answerText(answers, "q99"))
}

func TestSynthesiseHTML(t *testing.T) {
	responses := []models.Response{
		{Answers: map[string]interface{}{"q2": "second", "q1": "first\nwith newline"}},
	}

	html := SynthesiseHTML(responses)

	require.True(t, strings.HasPrefix(html, "<p><strong>All responses:</strong></p>"))
	assert.Contains(t, html, "<h3>Response 1</h3>")
	assert.Contains(t, html, "first<br/>with newline")

	// keys render in sorted order
	q1 := strings.Index(html, "<strong>q1</strong>")
	q2 := strings.Index(html, "<strong>q2</strong>")
	require.NotEqual(t, -1, q1)
	require.NotEqual(t, -1, q2)
	assert.Less(t, q1, q2)
}

func TestSynthesiseHTMLEmpty(t *testing.T) {
	assert.Equal(t, "<p><strong>All responses:</strong></p>", SynthesiseHTML(nil))
}
