// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package intent decides from free-form text whether one of the cookbook tools
// can answer a message, and with which parameters.
//
// Classification is keyword based. Branches are checked in a fixed order and
// the first keyword or pattern that matches wins, so the order of every list
// here is observable behavior.
package intent

import (
	"regexp"
	"slices"
	"strings"

	"github.com/curioswitch/cookchat/assistant/internal/tools"
)

// Kind is the category of a message.
type Kind int

const (
	// KindNone means no tool applies to the message.
	KindNone Kind = iota
	KindRecipeSearch
	KindIngredientLookup
	KindTipLookup
)

func (k Kind) String() string {
	switch k {
	case KindRecipeSearch:
		return "recipe_search"
	case KindIngredientLookup:
		return "ingredient_lookup"
	case KindTipLookup:
		return "tip_lookup"
	default:
		return "none"
	}
}

// Intent is the classification of a single message along with the
// parameters extracted for its tool. Only the fields for Kind are set.
type Intent struct {
	Kind Kind

	// Cuisine and Difficulty are set for KindRecipeSearch.
	Cuisine    string
	Difficulty string

	// Recipe is the recipe phrase for KindIngredientLookup, as written by the user.
	Recipe string

	// Topic is set for KindTipLookup.
	Topic string
}

var (
	recipeTriggers     = []string{"recipe", "find", "show me", "suggest"}
	cuisineKeywords    = []string{"italian", "chinese", "mexican", "indian"}
	difficultyKeywords = []string{"easy", "medium", "hard"}

	ingredientTriggers = []string{"ingredient", "what do i need", "shopping list"}
	ingredientPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ingredients? for (.+?)(?:\?|$)`),
		regexp.MustCompile(`(?i)\bwhat (?:ingredients )?(?:do )?i need (?:for|to make) (.+?)(?:\?|$)`),
		regexp.MustCompile(`(?i)(.+?) ingredients?`),
	}

	tipTriggers   = []string{"tip", "advice", "how to"}
	topicKeywords = []string{"pasta", "rice", "chicken", "vegetables", "seasoning", "knife skills"}
)

// CuisineKeywords returns the cuisines recognized in messages, in match order.
func CuisineKeywords() []string {
	return slices.Clone(cuisineKeywords)
}

// DifficultyKeywords returns the difficulties recognized in messages, in match order.
func DifficultyKeywords() []string {
	return slices.Clone(difficultyKeywords)
}

// TopicKeywords returns the tip topics recognized in messages, in match order.
func TopicKeywords() []string {
	return slices.Clone(topicKeywords)
}

// Classify returns the intent of message. It never fails; a message nothing
// applies to is KindNone.
func Classify(message string) Intent {
	lower := strings.ToLower(message)

	if containsAny(lower, recipeTriggers) {
		if cuisine := firstContained(lower, cuisineKeywords); cuisine != "" {
			difficulty := firstContained(lower, difficultyKeywords)
			if difficulty == "" {
				difficulty = tools.DefaultDifficulty
			}
			return Intent{Kind: KindRecipeSearch, Cuisine: cuisine, Difficulty: difficulty}
		}
	}

	if containsAny(lower, ingredientTriggers) {
		for _, p := range ingredientPatterns {
			if m := p.FindStringSubmatch(message); m != nil && m[1] != "" {
				return Intent{Kind: KindIngredientLookup, Recipe: strings.TrimSpace(m[1])}
			}
		}
	}

	if containsAny(lower, tipTriggers) {
		if topic := firstContained(lower, topicKeywords); topic != "" {
			return Intent{Kind: KindTipLookup, Topic: topic}
		}
	}

	return Intent{Kind: KindNone}
}

func containsAny(s string, substrs []string) bool {
	return firstContained(s, substrs) != ""
}

func firstContained(s string, substrs []string) string {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return sub
		}
	}
	return ""
}
