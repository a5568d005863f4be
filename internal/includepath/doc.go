// Package includepath searches a list of include directories for the
// first existing match of a relative path.
package includepath
