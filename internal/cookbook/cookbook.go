// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package cookbook holds the static knowledge bases the assistant answers from.
// A Cookbook is built once at startup and is read-only afterwards, so it can be
// shared between concurrent requests without locking.
package cookbook

import (
	"fmt"
	"slices"
	"strings"
)

// Table is an ordered mapping from a lower-cased key to a value. Keys keep the
// order they were added in.
type Table[V any] struct {
	keys   []string
	values map[string]V
}

func newTable[V any](size int) *Table[V] {
	return &Table[V]{
		keys:   make([]string, 0, size),
		values: make(map[string]V, size),
	}
}

func (t *Table[V]) add(key string, value V) error {
	key = strings.ToLower(key)
	if _, ok := t.values[key]; ok {
		return fmt.Errorf("cookbook: duplicate key %q", key)
	}
	t.keys = append(t.keys, key)
	t.values[key] = value
	return nil
}

// Keys returns the keys of the table in insertion order.
func (t *Table[V]) Keys() []string {
	return slices.Clone(t.keys)
}

// Len returns the number of entries in the table.
func (t *Table[V]) Len() int {
	return len(t.keys)
}

// Get returns the value for key. The lookup is case-insensitive.
func (t *Table[V]) Get(key string) (V, bool) {
	v, ok := t.values[strings.ToLower(key)]
	return v, ok
}

// Resolve returns the first key of the table that matches phrase, see Resolve.
func (t *Table[V]) Resolve(phrase string) (string, bool) {
	return Resolve(phrase, t.keys)
}

// IngredientRecord is what is needed to cook a single recipe.
type IngredientRecord struct {
	// Ingredients are the ingredients with quantities, in the order they are used.
	Ingredients []string

	// Servings is a description of how many people the recipe serves, e.g. "4 people".
	Servings string

	// PrepTime is the preparation time, e.g. "15 minutes".
	PrepTime string

	// CookTime is the cooking time, e.g. "20 minutes".
	CookTime string
}

// Cookbook is the set of knowledge bases. Values returned from its tables must
// not be modified.
type Cookbook struct {
	// Recipes are recipe descriptions keyed by cuisine, then difficulty.
	Recipes *Table[*Table[[]string]]

	// Ingredients are ingredient records keyed by recipe name.
	Ingredients *Table[IngredientRecord]

	// Tips are cooking tips keyed by topic.
	Tips *Table[[]string]
}
