// Package classid classifies PHP class identifiers and turns them into
// relative file paths following the legacy naming conventions.
//
// An identifier is first trimmed of surrounding namespace separators, then
// matched against the fixed namespace markers:
//
//	OC_      legacy underscore classes      OC_Files_View  -> legacy/files/view.php, files/view.php
//	OC\      core namespace                 OC\Files\View  -> files/view.php
//	OCP\     public API namespace           OCP\Util       -> public/util.php
//	OCA\     app namespace                  OCA\Files\App  -> <app root>/files/app.php
//	Test_    legacy test classes            Test_Util      -> tests/lib/util.php
//	Test\    namespaced test classes        Test\Util      -> tests/lib/util.php
//
// Identifiers that match no marker are left to the user prefix table.
package classid
