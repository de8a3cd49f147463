package quiz

// Score counts the questions whose recorded answer equals the correct one.
// Unanswered questions count as wrong.
func Score(questions []Question, answers map[int]string) int {
	correct := 0
	for _, q := range questions {
		if a, ok := answers[q.ID]; ok && a == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}
