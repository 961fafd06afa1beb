// Package textrules bundles a small set of line-oriented rules that need no
// syntax tree: they read a source unit's raw lines only. They serve as the
// default rule set for plain-text analysis and demonstrate how rules are
// written against the rule contract.
//
// Each rule registers itself under its name from init(), so a blank import
// of this package makes the whole set available through the rule registry:
//
//	import _ "github.com/arthur-debert/srclint/pkg/rules/textrules"
package textrules
