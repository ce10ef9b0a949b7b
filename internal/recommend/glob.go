package recommend

import (
	"regexp"
	"strings"
	"sync"
)

// Detection file patterns use a small glob dialect: `*` matches within
// a path segment, `**` matches across segments, `?` matches a single
// character, and matching is case-insensitive. This differs from both
// filepath.Match (no `**`) and gitignore semantics (anchoring,
// negation), so patterns are translated to regular expressions here.

var (
	globCache     = make(map[string]*regexp.Regexp)
	globCacheLock sync.Mutex
)

// MatchGlob reports whether the slash-separated path matches pattern.
// An invalid pattern matches nothing.
func MatchGlob(pattern, path string) bool {
	re, err := compileGlob(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

func compileGlob(pattern string) (*regexp.Regexp, error) {
	globCacheLock.Lock()
	re, ok := globCache[pattern]
	globCacheLock.Unlock()
	if ok {
		return re, nil
	}

	var sb strings.Builder
	sb.WriteString("(?i)^")
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "**"):
			sb.WriteString(".*")
			i += 2
		case pattern[i] == '*':
			sb.WriteString("[^/]*")
			i++
		case pattern[i] == '?':
			sb.WriteString("[^/]")
			i++
		default:
			sb.WriteString(regexp.QuoteMeta(string(pattern[i])))
			i++
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}

	globCacheLock.Lock()
	globCache[pattern] = re
	globCacheLock.Unlock()

	return re, nil
}
