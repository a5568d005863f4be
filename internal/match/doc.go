// Package match ranks known class identifiers by similarity to an
// identifier that resolved to nothing.
//
// Key functions:
//   - NormalizeClass: folds case and separators so OC\Files and oc_files compare equal
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest known identifiers above a score threshold
package match
