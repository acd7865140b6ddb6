package rounds

import (
	"fmt"
	"sort"
	"strings"

	"Backend-Consensus/src/models"
)

// SummarizerSystemPrompt frames the model as a synthesis assistant.
const SummarizerSystemPrompt = "You are an expert at synthesizing and summarizing responses."

// BuildSummaryPrompt renders the questions and every respondent's
// answers into the prompt sent to the language model. Answers are keyed
// q1..qN in submission payloads; a missing key renders as an explicit
// "No answer" placeholder, never as an absent line.
func BuildSummaryPrompt(questions []string, responses []models.Response) string {
	var b strings.Builder

	b.WriteString("Please synthesize the following responses to the questions that were asked.\n\n")
	b.WriteString("Questions:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	b.WriteString("\n--- Responses ---\n")
	for i, r := range responses {
		fmt.Fprintf(&b, "\nResponse %d:\n", i+1)
		for qIdx, qText := range questions {
			answer := answerText(r.Answers, fmt.Sprintf("q%d", qIdx+1))
			fmt.Fprintf(&b, "  - Q: %s\n", qText)
			fmt.Fprintf(&b, "    A: %s\n", answer)
		}
	}

	b.WriteString("\n--- End of Responses ---\n")
	b.WriteString("\nNow, please provide a concise synthesis of all the answers.")
	return b.String()
}

func answerText(answers map[string]interface{}, key string) string {
	v, ok := answers[key]
	if !ok || v == nil {
		return "No answer"
	}
	return fmt.Sprintf("%v", v)
}

// SynthesiseHTML is the naive concatenation fallback: every answer of
// every response rendered as HTML, no model call. Keys are sorted so
// the output is deterministic.
func SynthesiseHTML(responses []models.Response) string {
	var blocks strings.Builder
	for i, r := range responses {
		keys := make([]string, 0, len(r.Answers))
		for k := range r.Answers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var parts strings.Builder
		for _, k := range keys {
			clean := strings.ReplaceAll(fmt.Sprintf("%v", r.Answers[k]), "\n", "<br/>")
			fmt.Fprintf(&parts, "<p><strong>%s</strong>: %s</p>", k, clean)
		}
		fmt.Fprintf(&blocks, "<div><h3>Response %d</h3>%s</div>", i+1, parts.String())
	}
	return "<p><strong>All responses:</strong></p>" + blocks.String()
}
