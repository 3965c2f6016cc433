// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package tools implements the deterministic lookups the assistant can answer
// without a model. Every tool returns text for the user, including when the
// lookup fails.
package tools

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/curioswitch/cookchat/assistant/internal/cookbook"
)

// DefaultDifficulty is used by SearchRecipes when no difficulty is given.
const DefaultDifficulty = "medium"

const (
	invalidDifficulty = "Invalid difficulty level. Please choose: easy, medium, or hard"

	exampleRecipes = "Try asking about specific recipes like 'Spaghetti Aglio e Olio', " +
		"'Kung Pao Chicken', 'Butter Chicken', 'Chicken Enchiladas', or 'Caprese Salad'."
)

// New returns Tools reading from book.
func New(book *cookbook.Cookbook) *Tools {
	return &Tools{
		book: book,
	}
}

// Tools answers recipe, ingredient and tip lookups from a cookbook.
type Tools struct {
	book *cookbook.Cookbook
}

// SearchRecipes lists the recipes of a cuisine at a difficulty. The header
// echoes cuisine and difficulty as given.
func (t *Tools) SearchRecipes(cuisine string, difficulty string) string {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	byDifficulty, ok := t.book.Recipes.Get(cuisine)
	if !ok {
		return fmt.Sprintf("Sorry, I don't have recipes for %s cuisine. Available cuisines: %s",
			cuisine, strings.Join(t.book.Recipes.Keys(), ", "))
	}

	recipes, ok := byDifficulty.Get(difficulty)
	if !ok {
		return invalidDifficulty
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are %s %s recipes:\n\n", difficulty, cuisine)
	for i, recipe := range recipes {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, recipe)
	}
	return sb.String()
}

// ExtractIngredients lists the ingredients of the recipe best matching recipeName.
func (t *Tools) ExtractIngredients(recipeName string) string {
	key, ok := t.book.Ingredients.Resolve(recipeName)
	if !ok {
		return fmt.Sprintf("Sorry, I don't have ingredient information for '%s'. %s", recipeName, exampleRecipes)
	}
	rec, _ := t.book.Ingredients.Get(key)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Ingredients for %s:\n\n", titleCase(key))
	fmt.Fprintf(&sb, "Servings: %s\n", rec.Servings)
	fmt.Fprintf(&sb, "Prep Time: %s\n", rec.PrepTime)
	fmt.Fprintf(&sb, "Cook Time: %s\n\n", rec.CookTime)
	sb.WriteString("Ingredients:\n")
	for _, ingredient := range rec.Ingredients {
		fmt.Fprintf(&sb, "• %s\n", ingredient)
	}
	return sb.String()
}

// CookingTips lists the tips for the topic best matching topic.
func (t *Tools) CookingTips(topic string) string {
	key, ok := t.book.Tips.Resolve(topic)
	if !ok {
		return fmt.Sprintf("Sorry, I don't have tips for '%s'. Available topics: %s",
			topic, strings.Join(t.book.Tips.Keys(), ", "))
	}
	tips, _ := t.book.Tips.Get(key)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Cooking tips for %s:\n\n", titleCase(key))
	for i, tip := range tips {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, tip)
	}
	return sb.String()
}

// titleCase capitalizes the first letter of every word. A Caser is stateful so
// one is created per call. Letters after an apostrophe stay lower case, so
// "chef's pie" becomes "Chef's Pie".
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
