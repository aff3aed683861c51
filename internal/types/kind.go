// Package types maps the logical type names used in rule files onto a closed
// set of kinds and answers whether a column's values can be coerced into a
// kind without loss.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// LogicalKind is the native representation a logical type name stands for.
type LogicalKind int

const (
	Unsupported LogicalKind = iota
	Boolean
	Int8
	Integer
	Float
	DateTime
	TimeOfDay
	Unicode
	Object
)

var kindNames = map[LogicalKind]string{
	Unsupported: "unsupported",
	Boolean:     "boolean",
	Int8:        "int8",
	Integer:     "integer",
	Float:       "float",
	DateTime:    "datetime",
	TimeOfDay:   "time",
	Unicode:     "unicode",
	Object:      "object",
}

func (k LogicalKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return kindNames[Unsupported]
}

// ParseKind resolves a kind name as written in configuration files.
func ParseKind(name string) (LogicalKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if k != Unsupported && kn == n {
			return k, nil
		}
	}
	return Unsupported, fmt.Errorf("unknown logical kind %q", name)
}

// Vocabulary maps logical type names (case-insensitive) to kinds.
type Vocabulary struct {
	name  string
	kinds map[string]LogicalKind
}

// NewVocabulary builds a vocabulary from type name -> kind name pairs.
func NewVocabulary(name string, mapping map[string]string) (*Vocabulary, error) {
	v := &Vocabulary{name: name, kinds: make(map[string]LogicalKind, len(mapping))}
	for typeName, kindName := range mapping {
		k, err := ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("vocabulary %s: type %q: %w", name, typeName, err)
		}
		v.kinds[canonicalType(typeName)] = k
	}
	return v, nil
}

// DefaultVocabulary is the full type vocabulary accepted in rule sheets.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		name: "default",
		kinds: map[string]LogicalKind{
			"boolean":        Boolean,
			"byte":           Int8,
			"integer":        Integer,
			"smallint":       Integer,
			"floating point": Float,
			"date time":      DateTime,
			"time":           TimeOfDay,
			"unicode string": Unicode,
			"object":         Object,
			"string":         Object,
		},
	}
}

// ReducedVocabulary is the three-type variant some rule files use.
func ReducedVocabulary() *Vocabulary {
	return &Vocabulary{
		name: "reduced",
		kinds: map[string]LogicalKind{
			"integer": Integer,
			"float":   Float,
			"string":  Object,
		},
	}
}

func (v *Vocabulary) Name() string { return v.name }

// Kind returns the kind for a logical type name, or Unsupported.
func (v *Vocabulary) Kind(typeName string) LogicalKind {
	if k, ok := v.kinds[canonicalType(typeName)]; ok {
		return k
	}
	return Unsupported
}

// Types lists the known type names, sorted.
func (v *Vocabulary) Types() []string {
	out := make([]string, 0, len(v.kinds))
	for n := range v.kinds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func canonicalType(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
