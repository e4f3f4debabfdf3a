package persona

// Level and function bonuses are additive on top of the base score.
// The minimum achievable score is the base itself, so only the upper
// bound needs clamping.
const (
	baseScore = 50
	maxScore  = 100
)

var levelBonus = map[string]int{
	LevelExecutive: 30,
	LevelVP:        25,
	LevelDirector:  20,
	LevelManager:   10,
	LevelSenior:    5,
}

var functionBonus = map[string]int{
	FunctionStrategy:    15,
	FunctionProduct:     12,
	FunctionCS:          12,
	FunctionEngineering: 10,
	FunctionDesign:      8,
	FunctionOperations:  5,
}

// Score combines a persona into a fit score in [50,100]. Deterministic and
// pure: the stored score is always recomputable from the persona fields.
func Score(p Persona) int {
	score := baseScore + levelBonus[p.Level] + functionBonus[p.Function]
	if p.RoleType == RoleDecisionMaker {
		score += 5
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}
