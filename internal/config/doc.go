// Package config loads the YAML description of an installation and builds
// the resolver, include path, and loader from it.
//
// # Schema Overview
//
//	version: "1"
//	use_global_class_path: true        # defaults to true
//	include_path:                      # searched in order for relative candidates
//	  - /srv/owncloud/lib/private
//	  - /srv/owncloud/lib
//	apps_roots:                        # searched in order for OCA\ classes
//	  - path: /srv/owncloud/apps
//	    url: /apps
//	    writable: false
//	class_path:                        # global class path table
//	  OC_Search_Provider_File: apps/search/lib/provider/file.php
//	classes:                           # explicit overrides, always win
//	  'My\Class': /custom/path.php
//	prefixes:                          # order is kept
//	  Foo_: /src
//	  'Sabre\': /srv/owncloud/3rdparty
//
// Prefixes may also be written as a list of {prefix, dir} entries.
//
// With expand-env enabled, ${VAR} references are replaced from the
// process environment before the YAML is parsed.
package config
