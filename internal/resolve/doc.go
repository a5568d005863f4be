// Package resolve maps PHP class identifiers to candidate file paths.
//
// Resolution order, first branch that applies wins:
//  1. Explicit class -> path overrides registered on the Resolver
//  2. The global class path table of the Environment, when enabled
//  3. Fixed namespace conventions (see package classid)
//  4. User prefixes, in registration order; every matching prefix
//     contributes one candidate
//
// An identifier that matches nothing yields an empty candidate list.
// Candidates are not checked for existence except for app namespace
// classes, where an app root is only used if the app directory exists.
package resolve
