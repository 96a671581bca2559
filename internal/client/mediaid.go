package client

import (
	"encoding/hex"
	"hash/fnv"
	"regexp"
)

var (
	canonicalMediaPattern = regexp.MustCompile(`/api/media/([A-Za-z0-9-]+)`)
	mediaTokenPattern     = regexp.MustCompile(`media-\d+_[A-Za-z0-9]+`)
)

// MediaID derives the stable identifier comments are keyed by from a media
// URL. Canonical /api/media/{id} URLs yield the id; URLs embedding a
// media-{timestamp}_{randomId} token yield that token; anything else (for
// example a temporary preview URL) hashes to a deterministic 32-character
// string.
//
// The three derivation paths are not guaranteed to agree for one logical
// media item whose URL shape changes over time: comments posted under a
// preview-derived id stay under that id and are not migrated when the
// canonical URL appears.
func MediaID(url string) string {
	if m := canonicalMediaPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if token := mediaTokenPattern.FindString(url); token != "" {
		return token
	}

	h := fnv.New128a()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}
