// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package intent

import (
	"github.com/curioswitch/cookchat/assistant/internal/tools"
)

// Result is the answer a tool produced for a message.
type Result struct {
	Intent Intent
	Text   string
}

// NewRouter returns a Router.
func NewRouter(t *tools.Tools) *Router {
	return &Router{
		tools: t,
	}
}

// Router classifies messages and runs the matching tool.
type Router struct {
	tools *tools.Tools
}

// Route classifies message and runs at most one tool for it. It returns false
// when no tool applies, in which case the message should be answered some
// other way.
func (r *Router) Route(message string) (Result, bool) {
	in := Classify(message)
	text, ok := r.Invoke(in)
	if !ok {
		return Result{}, false
	}
	return Result{Intent: in, Text: text}, true
}

// Invoke runs the tool for in. It returns false for KindNone.
func (r *Router) Invoke(in Intent) (string, bool) {
	switch in.Kind {
	case KindRecipeSearch:
		return r.tools.SearchRecipes(in.Cuisine, in.Difficulty), true
	case KindIngredientLookup:
		return r.tools.ExtractIngredients(in.Recipe), true
	case KindTipLookup:
		return r.tools.CookingTips(in.Topic), true
	case KindNone:
	}
	return "", false
}
