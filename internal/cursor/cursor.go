package cursor

import "regexp"

// Paging is the opaque paging data pulled out of a Graph paging URL.
// Exactly one of After/Until is set; ObjectID is only filled outside feed
// context, where the target object id is embedded in the path.
type Paging struct {
	After    string
	Until    string
	ObjectID string
}

var (
	afterRe    = regexp.MustCompile(`after=([0-9a-zA-Z=]+)`)
	untilRe    = regexp.MustCompile(`until=([0-9a-zA-Z]+)`)
	objectIDRe = regexp.MustCompile(`/([0-9_]+)/comments`)
)

// Extract parses a Graph-provided paging URL for an after or until cursor.
// When feedContext is false the URL points at a comment page, so the object
// id must also be present. A false result means no usable paging data;
// callers treat that as "no more pages".
func Extract(rawURL string, feedContext bool) (Paging, bool) {
	var p Paging
	if m := afterRe.FindStringSubmatch(rawURL); m != nil {
		p.After = m[1]
	} else if m := untilRe.FindStringSubmatch(rawURL); m != nil {
		p.Until = m[1]
	} else {
		return Paging{}, false
	}
	if !feedContext {
		m := objectIDRe.FindStringSubmatch(rawURL)
		if m == nil {
			return Paging{}, false
		}
		p.ObjectID = m[1]
	}
	return p, true
}

// Empty reports whether no cursor was extracted.
func (p Paging) Empty() bool {
	return p.After == "" && p.Until == ""
}
