package watering

// NextStage advances the growth ordinal by one, capped at stageCount.
func NextStage(stage, stageCount int) int {
	if stage >= stageCount {
		return stageCount
	}
	return stage + 1
}

// IsGrown reports whether the plant reached its final stage.
func IsGrown(stage, stageCount int) bool {
	return stage >= stageCount
}

// ConsumeLife removes one life, never going below zero.
func ConsumeLife(lives int) int {
	if lives <= 0 {
		return 0
	}
	return lives - 1
}

// IsExhausted reports whether no lives remain.
func IsExhausted(lives int) bool {
	return lives <= 0
}
