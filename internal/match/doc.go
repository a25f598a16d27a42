// Package match provides name normalization and edit-distance scoring
// used to resolve requested names against declared field names.
//
// Key functions:
//   - NormalizeIdent: folds some_key, some-key, someKey and SomeKey to one form
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest declared name for an unknown one
package match
