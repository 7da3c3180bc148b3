package credential

import (
	"net/http"
	"strings"
)

// Credential holds the session cookie string exported from a logged-in
// browser session, parsed into individual cookie pairs.
type Credential struct {
	pairs map[string]string
	names []string
}

// Parse splits a raw "k=v; k2=v2" cookie string into a Credential.
// Segments without an "=" are skipped. A later duplicate overwrites the
// earlier value but keeps its original position.
func Parse(raw string) *Credential {
	c := &Credential{pairs: make(map[string]string)}

	for _, item := range strings.Split(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}

		if _, seen := c.pairs[name]; !seen {
			c.names = append(c.names, name)
		}
		c.pairs[name] = value
	}

	return c
}

// IsEmpty reports whether no cookie pairs were parsed.
func (c *Credential) IsEmpty() bool {
	return len(c.pairs) == 0
}

// Get returns the value of the named cookie, or "" if absent.
func (c *Credential) Get(name string) string {
	return c.pairs[name]
}

// Len returns the number of parsed cookie pairs.
func (c *Credential) Len() int {
	return len(c.pairs)
}

// Cookies returns the pairs as http cookies in parse order, ready to be
// attached to outbound requests.
func (c *Credential) Cookies() []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(c.names))
	for _, name := range c.names {
		cookies = append(cookies, &http.Cookie{Name: name, Value: c.pairs[name]})
	}
	return cookies
}
