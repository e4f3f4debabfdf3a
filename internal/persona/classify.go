// Package persona infers a structured persona (seniority, function,
// decision-maker status, fit score) from an unstructured job title.
package persona

import "strings"

// Job levels.
const (
	LevelExecutive = "Executive"
	LevelVP        = "VP"
	LevelDirector  = "Director"
	LevelManager   = "Manager"
	LevelSenior    = "Senior"
	LevelIC        = "Individual Contributor"
	LevelUnknown   = "Unknown"
)

// Job functions.
const (
	FunctionProduct     = "Product"
	FunctionEngineering = "Engineering"
	FunctionDesign      = "Design/UX"
	FunctionCS          = "Customer Success"
	FunctionOperations  = "Operations"
	FunctionStrategy    = "Strategy/Innovation"
	FunctionFinance     = "Banking/Finance"
	FunctionMarketing   = "Marketing"
	FunctionSales       = "Sales"
	FunctionEvents      = "Events"
	FunctionContent     = "Content"
	FunctionGeneral     = "General Management"
)

// Role types.
const (
	RoleDecisionMaker = "Decision Maker"
	RoleInfluencer    = "Influencer"
	RoleChampion      = "Champion"
	RoleUser          = "User"
)

// Persona is the classification result for one job title.
type Persona struct {
	Level    string `json:"job_level"`
	Function string `json:"job_function"`
	RoleType string `json:"role_type"`
}

// rule is one (predicate, result) pair. Rules are evaluated in declaration
// order and the first match wins; this is a deliberate simplification, not
// a scored match, and the ordering is part of the classification contract.
type rule struct {
	match  func(title string) bool
	result string
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasToken reports whether s contains word as a standalone token,
// so "vp" matches "VP, Sales" but not "evp" or "vpn".
func hasToken(s, word string) bool {
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '-' || r == '(' || r == ')' || r == '.'
	}) {
		if tok == word {
			return true
		}
	}
	return false
}

// levelRules resolve seniority. Note the ordering constraints: "executive
// director" and "managing director" outrank the plain director rule,
// "president" excludes "vice president", and director is checked before
// "senior" so "Senior Director" resolves as Director.
var levelRules = []rule{
	{func(t string) bool {
		return hasToken(t, "ceo") || hasToken(t, "cto") || hasToken(t, "cfo") ||
			hasToken(t, "coo") || strings.Contains(t, "chief")
	}, LevelExecutive},
	{func(t string) bool { return strings.Contains(t, "executive director") }, LevelExecutive},
	{func(t string) bool { return strings.Contains(t, "managing director") }, LevelExecutive},
	{func(t string) bool {
		return strings.Contains(t, "president") && !strings.Contains(t, "vice president")
	}, LevelExecutive},
	{func(t string) bool { return strings.Contains(t, "vice president") || hasToken(t, "vp") }, LevelVP},
	{func(t string) bool {
		return strings.Contains(t, "director") && !strings.Contains(t, "managing")
	}, LevelDirector},
	{func(t string) bool { return strings.Contains(t, "head of") }, LevelDirector},
	{func(t string) bool { return strings.Contains(t, "manager") }, LevelManager},
	{func(t string) bool { return containsAny(t, "lead", "principal", "senior") }, LevelSenior},
	{func(t string) bool { return containsAny(t, "analyst", "associate", "engineer") }, LevelIC},
}

// functionRules resolve job function from an independent keyword table.
var functionRules = []rule{
	{func(t string) bool { return strings.Contains(t, "product") }, FunctionProduct},
	{func(t string) bool { return containsAny(t, "engineering", "software", "developer") }, FunctionEngineering},
	{func(t string) bool { return containsAny(t, "design", "ux") }, FunctionDesign},
	{func(t string) bool { return containsAny(t, "customer success", "support") }, FunctionCS},
	{func(t string) bool { return strings.Contains(t, "operations") }, FunctionOperations},
	{func(t string) bool { return containsAny(t, "strategy", "innovation") }, FunctionStrategy},
	{func(t string) bool { return containsAny(t, "banking", "finance") }, FunctionFinance},
	{func(t string) bool { return strings.Contains(t, "marketing") }, FunctionMarketing},
	{func(t string) bool { return strings.Contains(t, "sales") }, FunctionSales},
	{func(t string) bool { return containsAny(t, "event", "conference") }, FunctionEvents},
	{func(t string) bool { return containsAny(t, "content", "editorial") }, FunctionContent},
}

// Classify maps a free-text job title to a persona. An empty or
// unrecognized title is not an error: it resolves to the well-defined
// defaults Unknown / General Management / User.
func Classify(title string) Persona {
	t := strings.ToLower(strings.TrimSpace(title))

	p := Persona{Level: LevelUnknown, Function: FunctionGeneral}
	if t != "" {
		for _, r := range levelRules {
			if r.match(t) {
				p.Level = r.result
				break
			}
		}
		for _, r := range functionRules {
			if r.match(t) {
				p.Function = r.result
				break
			}
		}
	}

	p.RoleType = deriveRoleType(t, p.Level, p.Function)
	return p
}

// deriveRoleType resolves decision-maker status from the level/function
// pair, with an analyst/associate carve-out for champions.
func deriveRoleType(title, level, function string) string {
	switch level {
	case LevelExecutive, LevelVP:
		return RoleDecisionMaker
	case LevelDirector:
		if function == FunctionStrategy || function == FunctionProduct {
			return RoleDecisionMaker
		}
		return RoleInfluencer
	case LevelManager, LevelSenior:
		return RoleInfluencer
	}
	if containsAny(title, "analyst", "associate") {
		return RoleChampion
	}
	return RoleUser
}
