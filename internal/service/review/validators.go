package review

func isValidScore(score int) bool {
	return score >= 1 && score <= 5
}
