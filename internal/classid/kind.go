package classid

import "classloader/internal/common"

// Kind tells which resolution branch produced a candidate list.
type Kind int

const (
	KindUnmatched           Kind = iota // no branch applies
	KindExplicit                        // explicit class -> path override
	KindGlobalOverride                  // process-wide class path table
	KindLegacyUnderscore                // OC_Foo_Bar
	KindStructuralNamespace             // OC\Foo, OCP\Foo
	KindAppNamespace                    // OCA\App\Foo
	KindTestNamespace                   // Test_Foo, Test\Foo
	KindUserPrefix                      // registered prefix -> dir
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnmatched:
		return "unmatched"
	case KindExplicit:
		return "explicit"
	case KindGlobalOverride:
		return "global"
	case KindLegacyUnderscore:
		return "legacy"
	case KindStructuralNamespace:
		return "namespace"
	case KindAppNamespace:
		return "app"
	case KindTestNamespace:
		return "test"
	case KindUserPrefix:
		return "prefix"
	default:
		return common.UnknownStr
	}
}
