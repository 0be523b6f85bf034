package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Fields derives expected metadata field names from keys of the field
// schema document. Keys from the whitelist are skipped, every "__" is
// removed from the rest, the result is sorted.
//
//	{"__codename__": .., "__prompts__": .., "technology": ..}
//	  -> ["codename", "technology"]
func Fields(doc map[string]any, whitelist []string) []string {
	res := make([]string, 0, len(doc))
	for k := range doc {
		if slices.Contains(whitelist, k) {
			continue
		}
		res = append(res, strings.ReplaceAll(k, "__", ""))
	}
	slices.Sort(res)
	return res
}

// Version returns the schema version embedded in the document under key.
// Non-string values are formatted as text, the second value is false if
// the key is absent.
func Version(doc map[string]any, key string) (string, bool) {
	v, ok := doc[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Match compares two field lists ignoring their order.
func Match(expected, actual []string) bool {
	return slices.Equal(sorted(expected), sorted(actual))
}

// Diff returns fields that are expected but not given (missing), and
// given but not expected (extra). Both results are sorted.
func Diff(expected, actual []string) (missing, extra []string) {
	exp := sorted(expected)
	act := sorted(actual)
	for _, v := range exp {
		if _, found := slices.BinarySearch(act, v); !found {
			missing = append(missing, v)
		}
	}
	for _, v := range act {
		if _, found := slices.BinarySearch(exp, v); !found {
			extra = append(extra, v)
		}
	}
	return missing, extra
}

func sorted(ss []string) []string {
	res := slices.Clone(ss)
	slices.Sort(res)
	return res
}
