// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package cookbook

import "strings"

// Resolve returns the first key, in the order given, that is contained in the
// lower-cased phrase or that contains it. keys are expected to be lower-case.
//
// There is no scoring, so a short key may match phrases that are only loosely
// related to it, and an empty phrase matches the first key.
func Resolve(phrase string, keys []string) (string, bool) {
	phrase = strings.ToLower(phrase)
	for _, key := range keys {
		if strings.Contains(phrase, key) || strings.Contains(key, phrase) {
			return key, true
		}
	}
	return "", false
}
