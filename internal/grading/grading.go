// Package grading evaluates examinee responses against answer rules and
// rolls verdicts up into a weighted objective summary. The engine is
// stateless and never returns an error for grading purposes: malformed
// input, malformed rules and unparseable values all grade false, because an
// ungraded answer must never block the examinee from continuing.
package grading

import (
	"math"
	"regexp"

	"quizgrade/internal/domain"
	"quizgrade/internal/logger"
	"quizgrade/internal/norm"

	"go.uber.org/zap"
)

// epsilon is the float64 machine epsilon. It is added to the authored
// tolerance so that tolerance=0 does not fail on exact values that differ
// only by representation error.
var epsilon = math.Nextafter(1, 2) - 1

// GradeChoice grades one single-choice response by option index. A nil
// index means the question was not attempted. Equality is exact - there is
// no tolerance for indices.
func GradeChoice(userIndex *int, answerIndex int) bool {
	if userIndex == nil {
		return false
	}
	return *userIndex == answerIndex
}

// GradeFillin grades one free-form response against its rule. Empty input
// grades false for every rule kind.
func GradeFillin(input string, rule domain.AnswerRule) bool {
	if input == "" {
		return false
	}
	switch rule.Mode {
	case domain.RuleText:
		return gradeText(input, rule)
	case domain.RuleRegex:
		return gradeRegex(input, rule)
	case domain.RuleNumber:
		return gradeNumber(input, rule)
	case domain.RuleDate:
		return gradeDate(input, rule)
	default:
		// Unreachable for validated documents; externally supplied rule
		// data may still carry an unknown mode.
		return false
	}
}

func gradeText(input string, rule domain.AnswerRule) bool {
	if len(rule.Accept) > 0 {
		for _, candidate := range rule.Accept {
			if norm.EqualsText(candidate, input, rule.CaseFold(), rule.NormalizeZh) {
				return true
			}
		}
		return false
	}
	if rule.Answer != "" {
		return norm.EqualsText(rule.Answer, input, rule.CaseFold(), rule.NormalizeZh)
	}
	return false
}

// gradeRegex matches the pattern against the raw, unnormalized input. A
// pattern that fails to compile is a rule-authoring mistake: it is logged
// and the question grades false, never surfaced to the examinee.
func gradeRegex(input string, rule domain.AnswerRule) bool {
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		logger.Get().Warn("Malformed answer rule pattern",
			zap.String("pattern", rule.Pattern),
			zap.Error(err),
		)
		return false
	}
	return re.MatchString(input)
}

func gradeNumber(input string, rule domain.AnswerRule) bool {
	v, ok := norm.NormalizeNumberInput(input)
	if !ok {
		return false
	}
	tolerance := rule.Tolerance
	if tolerance < 0 {
		tolerance = 0
	}
	return math.Abs(v-rule.Value) <= tolerance+epsilon
}

func gradeDate(input string, rule domain.AnswerRule) bool {
	user, ok := norm.ParseDateString(input)
	if !ok {
		return false
	}
	matched := false
	for _, candidate := range dateCandidates(rule) {
		if canon, ok := norm.ParseDateString(candidate); ok && canon == user {
			matched = true
			break
		}
	}
	return matched
}

func dateCandidates(rule domain.AnswerRule) []string {
	candidates := make([]string, 0, len(rule.Accept)+1)
	if rule.Answer != "" {
		candidates = append(candidates, rule.Answer)
	}
	for _, c := range rule.Accept {
		if c != "" {
			candidates = append(candidates, c)
		}
	}
	return candidates
}
