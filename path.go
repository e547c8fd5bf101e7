package laxml

import "strings"

// pathSegment is one slash-delimited portion of a query path: a tag
// name with optional attribute predicates.
type pathSegment struct {
	name  string
	preds []pathPredicate
}

// pathPredicate is a key or key=value constraint an element satisfies
// through its attribute list. A predicate without a value only requires
// the attribute to be present.
type pathPredicate struct {
	key      string
	value    string
	hasValue bool
}

// firstPathSegment parses the leading segment of path. hasRest reports
// whether a '/' separated the segment from further path text; the
// remainder may still be empty, and an empty remainder matches nothing.
func firstPathSegment(path string) (seg pathSegment, rest string, hasRest bool) {
	nameEnd := len(path)
	if i := strings.IndexByte(path, '/'); i >= 0 {
		nameEnd = i
		rest = path[i+1:]
		hasRest = true
	}
	seg.name = path[:nameEnd]
	if q := strings.IndexByte(seg.name, '?'); q >= 0 {
		region := seg.name[q+1:]
		seg.name = seg.name[:q]
		seg.preds = parsePredicates(region)
	}
	return seg, rest, hasRest
}

// parsePredicates splits the text after '?' at '&' boundaries into
// key[=value] constraints. A degenerate region still yields a
// predicate, so a bare trailing '?' can never match.
func parsePredicates(region string) []pathPredicate {
	var preds []pathPredicate
	i := 0
	for {
		var pr pathPredicate
		j := i
		for j < len(region) && region[j] != '=' && region[j] != '&' {
			j++
		}
		pr.key = region[i:j]
		i = j
		if i < len(region) && region[i] == '=' {
			i++
			k := i
			for k < len(region) && region[k] != '&' {
				k++
			}
			pr.value = region[i:k]
			pr.hasValue = true
			i = k
		}
		preds = append(preds, pr)
		if i >= len(region) {
			return preds
		}
		i++ // skip '&'
	}
}

// lastPathSegment parses the segment that ends at end (len(path) or -1
// for the deepest) and returns the offset where the next-shallower
// segment ends. Levels above the path's depth reuse the shallowest
// segment.
func lastPathSegment(path string, end int) (pathSegment, int) {
	if end < 0 || end > len(path) {
		end = len(path)
	}
	i := end - 1
	for i > 0 && path[i] != '/' {
		i--
	}
	if i < 0 {
		i = 0
	}
	start := i
	if start < len(path) && path[start] == '/' {
		start++
	}
	seg, _, _ := firstPathSegment(path[start:])
	return seg, i
}
