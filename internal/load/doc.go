// Package load requires the file a class identifier resolves to.
//
// A Loader asks its Finder for candidate paths, resolves each one on the
// include path, and hands the first existing file to a Requirer. SourceSet
// is the default Requirer: it reads each file once and keeps its contents.
package load
