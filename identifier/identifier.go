// Package identifier recognizes the identifier formats used for
// decentralized-identity objects: URI-style identifiers and the fixed-length
// base58 format kept for backwards compatibility.
package identifier

import (
	"regexp"
	"sync"
)

// TODO: tighten the URI pattern. Right now everything after the first colon
// is accepted; we may want to restrict the tail.
var uriIdentifier = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[a-zA-Z0-9+.-]+:.+$`)
})

// base58 alphabet as defined in
// https://datatracker.ietf.org/doc/html/draft-msporny-base58#section-2.
// Legacy indy identifiers stay supported for backwards compatibility. This
// may match strings that are not actual identifiers if they happen to fall
// within the base58 alphabet, but there is not much we can do about that.
var legacyIdentifier = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{21,22}$`)
})

// IsURIIdentifier reports whether candidate is a URI-style identifier: one or
// more scheme characters from [A-Za-z0-9+.-], a colon, and a non-empty opaque
// tail. The whole string must match; no structural check is made on the tail.
func IsURIIdentifier(candidate string) bool {
	return uriIdentifier().MatchString(candidate)
}

// LegacyIdentifier returns the compiled pattern for legacy base58
// identifiers: exactly 21 or 22 characters from the base58 alphabet,
// anchored at both ends. The pattern is compiled once on first use and is
// immutable afterwards.
func LegacyIdentifier() *regexp.Regexp {
	return legacyIdentifier()
}
