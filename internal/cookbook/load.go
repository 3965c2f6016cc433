// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package cookbook

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/cookbook.yaml
var defaultData []byte

type document struct {
	Cuisines    []cuisineDoc    `yaml:"cuisines" validate:"required,min=1,unique=Name,dive"`
	Ingredients []ingredientDoc `yaml:"ingredients" validate:"required,min=1,unique=Recipe,dive"`
	Tips        []tipDoc        `yaml:"tips" validate:"required,min=1,unique=Topic,dive"`
}

type cuisineDoc struct {
	Name         string          `yaml:"name" validate:"required"`
	Difficulties []difficultyDoc `yaml:"difficulties" validate:"required,min=1,unique=Level,dive"`
}

type difficultyDoc struct {
	Level   string   `yaml:"level" validate:"required"`
	Recipes []string `yaml:"recipes" validate:"required,min=1,dive,required"`
}

type ingredientDoc struct {
	Recipe      string   `yaml:"recipe" validate:"required"`
	Servings    string   `yaml:"servings" validate:"required"`
	PrepTime    string   `yaml:"prepTime" validate:"required"`
	CookTime    string   `yaml:"cookTime" validate:"required"`
	Ingredients []string `yaml:"ingredients" validate:"required,min=1,dive,required"`
}

type tipDoc struct {
	Topic string   `yaml:"topic" validate:"required"`
	Tips  []string `yaml:"tips" validate:"required,min=1,dive,required"`
}

// Load returns the cookbook bundled with the server.
func Load() (*Cookbook, error) {
	return Parse(defaultData)
}

// Parse builds a Cookbook from its YAML representation.
func Parse(data []byte) (*Cookbook, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cookbook: unmarshalling yaml: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&doc); err != nil {
		return nil, fmt.Errorf("cookbook: validating: %w", err)
	}

	book := &Cookbook{
		Recipes:     newTable[*Table[[]string]](len(doc.Cuisines)),
		Ingredients: newTable[IngredientRecord](len(doc.Ingredients)),
		Tips:        newTable[[]string](len(doc.Tips)),
	}

	for _, c := range doc.Cuisines {
		byDifficulty := newTable[[]string](len(c.Difficulties))
		for _, d := range c.Difficulties {
			if err := byDifficulty.add(d.Level, d.Recipes); err != nil {
				return nil, fmt.Errorf("cookbook: adding %s recipes: %w", c.Name, err)
			}
		}
		if err := book.Recipes.add(c.Name, byDifficulty); err != nil {
			return nil, fmt.Errorf("cookbook: adding cuisine: %w", err)
		}
	}

	for _, r := range doc.Ingredients {
		if err := book.Ingredients.add(r.Recipe, IngredientRecord{
			Ingredients: r.Ingredients,
			Servings:    r.Servings,
			PrepTime:    r.PrepTime,
			CookTime:    r.CookTime,
		}); err != nil {
			return nil, fmt.Errorf("cookbook: adding ingredients: %w", err)
		}
	}

	for _, t := range doc.Tips {
		if err := book.Tips.add(t.Topic, t.Tips); err != nil {
			return nil, fmt.Errorf("cookbook: adding tips: %w", err)
		}
	}

	return book, nil
}
