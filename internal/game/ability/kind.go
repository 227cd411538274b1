package ability

import "fmt"

// Kind names one ability category.
type Kind uint8

const (
	KindMartial Kind = iota
	KindMagical
	KindCrafting
	KindSurvival
	KindStealth
)

var kindNames = map[Kind]string{
	KindMartial:  "martial",
	KindMagical:  "magical",
	KindCrafting: "crafting",
	KindSurvival: "survival",
	KindStealth:  "stealth",
}

// String returns the lowercase category name used in logs and catalog files.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a category name as used in catalog files.
//
// Postcondition: Returns a non-nil error iff s names no known category.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("ability: ParseKind: unknown category kind %q", s)
}

// Kinds returns every category kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindMartial, KindMagical, KindCrafting, KindSurvival, KindStealth}
}
