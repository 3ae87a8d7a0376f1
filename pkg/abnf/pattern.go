package abnf

import (
	"regexp"
	"sync"

	"github.com/dmitrymomot/kit/pkg/enum"
)

var patterns = struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}{cache: make(map[string]*regexp.Regexp)}

// Pattern returns the anchored expression for rule in table.
// Compiled expressions are cached per table and rule.
func Pattern(table *enum.Enumeration[string], rule string) (*regexp.Regexp, error) {
	key := table.EnumName() + "/" + rule

	patterns.mu.RLock()
	re, ok := patterns.cache[key]
	patterns.mu.RUnlock()
	if ok {
		return re, nil
	}

	fragment, err := table.Value(rule)
	if err != nil {
		return nil, err
	}
	re, err = regexp.Compile(`^(?:` + fragment + `)$`)
	if err != nil {
		return nil, err
	}

	patterns.mu.Lock()
	patterns.cache[key] = re
	patterns.mu.Unlock()
	return re, nil
}

// MustPattern is like Pattern but panics on unknown rules.
func MustPattern(table *enum.Enumeration[string], rule string) *regexp.Regexp {
	re, err := Pattern(table, rule)
	if err != nil {
		panic(err)
	}
	return re
}

// Match reports whether s matches rule in table as a whole.
// Unknown rules never match.
func Match(table *enum.Enumeration[string], rule, s string) bool {
	re, err := Pattern(table, rule)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}
