package domain

import "fmt"

// Difficulty is the tier of a generated assessment.
type Difficulty string

// Supported difficulty tiers.
const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
)

var difficultyLabels = map[Difficulty]string{
	DifficultyBasic:    "基礎",
	DifficultyMedium:   "中等",
	DifficultyAdvanced: "進階",
}

var difficultyDescriptions = map[Difficulty]string{
	DifficultyBasic:    "著重基本概念的理解與記憶，題目以直接問答、是非題、簡單選擇題為主",
	DifficultyMedium:   "著重概念的應用與分析，題目包含情境應用、比較分析、簡答題",
	DifficultyAdvanced: "著重高層次思維，包含批判思考、創意應用、跨領域整合、開放式問答",
}

// ParseDifficulty converts s into a Difficulty, rejecting unknown tiers.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyLabels[d]; !ok {
		return "", NewValidationError("difficulty", fmt.Sprintf("must be one of basic, medium, advanced (got %q)", s), nil)
	}
	return d, nil
}

// Label is the localized tier name.
func (d Difficulty) Label() string {
	return difficultyLabels[d]
}

// Description explains what questions of this tier focus on.
func (d Difficulty) Description() string {
	return difficultyDescriptions[d]
}
