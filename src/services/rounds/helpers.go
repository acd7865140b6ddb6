package rounds

import "Backend-Consensus/src/models"

// nextRoundNumber is highest existing + 1, or 1 for the first round.
func nextRoundNumber(last *models.Round) int {
	if last == nil {
		return 1
	}
	return last.RoundNumber + 1
}

// nextRoundQuestions resolves the question list of a newly opened round:
// explicit non-empty override, else the previous round's override, else
// the form's default questions. The chain is intentionally asymmetric
// with carriedSynthesis — do not collapse the two.
func nextRoundQuestions(override []string, last *models.Round, form *models.Form) []string {
	if len(override) > 0 {
		return override
	}
	if last != nil && len(last.Questions) > 0 {
		return last.Questions
	}
	return form.Questions
}

// carriedSynthesis pre-seeds a new round with the synthesis of the
// immediately preceding round, empty if none was set.
func carriedSynthesis(last *models.Round) string {
	if last == nil {
		return ""
	}
	return last.Synthesis
}

// effectiveQuestions is the round's question override, falling back to
// the form's defaults when the round has none.
func effectiveQuestions(roundQuestions, formQuestions []string) []string {
	if len(roundQuestions) > 0 {
		return roundQuestions
	}
	if formQuestions == nil {
		return []string{}
	}
	return formQuestions
}
