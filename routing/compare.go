package routing

import "net/url"

// EqualCanonical reports whether two URLs are equal after
// percent-decoding each of them decodePasses times. The pass count is
// explicit because it must mirror how many encoding passes the compared
// URLs accumulated: one from Generate itself, plus one per encoding
// pass the caller applied to a parameter before generation. A caller
// that pre-encoded a parameter once therefore passes 2.
func EqualCanonical(target, generated string, decodePasses int) bool {
	return canonicalDecode(target, decodePasses) == canonicalDecode(generated, decodePasses)
}

// canonicalDecode applies up to passes rounds of percent-decoding,
// stopping early if a round fails on a malformed escape.
func canonicalDecode(u string, passes int) string {
	for i := 0; i < passes; i++ {
		decoded, err := url.PathUnescape(u)
		if err != nil {
			break
		}
		u = decoded
	}
	return u
}
