// Package match scores how close a misspelled manifest value is to the
// accepted ones and proposes "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds case and separators ("Protected_Internal" -> "protectedinternal")
//   - Levenshtein: edit distance between strings
//   - Rank / Suggest: ordered candidates for an unrecognised value
package match
