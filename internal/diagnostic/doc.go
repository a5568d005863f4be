// Package diagnostic provides structured info, warning, and error records
// produced while resolving class identifiers and validating configuration.
//
// Key capabilities:
//   - Deprecated include path notices (global "apps/" paths)
//   - Skipped app roots when an app directory is missing
//   - Unmatched class identifiers
//   - Configuration validation errors
package diagnostic
