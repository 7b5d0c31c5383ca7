// Package identity derives the stable numeric ids described in spec.md
// §4.B: a 61-bit unsigned integer computed deterministically from a
// canonical qualified name. Two entities sharing a canonical name share
// an id — that is the design contract diagrams rely on to index
// elements and relationships across a translation unit merge.
package identity

import (
	"regexp"
	"strings"

	"github.com/minio/highwayhash"
)

// ID is a 61-bit identity (the high 3 bits are always zero, §4.B).
type ID uint64

// hashKey mirrors the fixed 32-byte HighwayHash key the teacher's
// inspector/graph package uses: a stable key is required so that the
// same name always hashes to the same value across runs and processes.
var hashKey = []byte("clanguml-go-identity-key-32-byte")

var whitespaceRun = regexp.MustCompile(`\s+`)
var colonRun = regexp.MustCompile(`::::+`)
var spacedScope = regexp.MustCompile(`\s*::\s*`)

// Canonicalize normalizes whitespace and collapses the "::::" runs that
// anonymous-namespace elision can produce, so that "a::  ::b" and
// "a::b" hash identically.
func Canonicalize(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = spacedScope.ReplaceAllString(s, "::")
	for colonRun.MatchString(s) {
		s = colonRun.ReplaceAllString(s, "::")
	}
	return s
}

// Of computes id(s) = (H64(canonical(s)) >> 3), the identity rule of
// §4.B. The right-shift is preserved for compatibility with persisted
// diagrams and existing test fixtures (§9-ii); it is not a performance
// optimization and must not be removed.
func Of(canonicalName string) ID {
	canonical := Canonicalize(canonicalName)
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		// hashKey is a fixed compile-time constant of the correct length;
		// highwayhash only errors on a malformed key.
		panic("identity: invalid hash key: " + err.Error())
	}
	_, _ = hash.Write([]byte(canonical))
	return ID(hash.Sum64() >> 3)
}

// Registry tracks which canonical name first claimed an id, so that a
// later name hashing to the same id can be detected as a collision
// (§4.B, §5, §8 scenario 6: "Identity collisions ... are fatal model
// errors").
type Registry struct {
	byID map[ID]string
}

// NewRegistry creates an empty collision registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[ID]string)}
}

// CollisionError reports two distinct canonical names hashing to the
// same id.
type CollisionError struct {
	ID       ID
	Existing string
	New      string
}

func (e *CollisionError) Error() string {
	return "identity: collision at id " + idString(e.ID) + " between " + e.Existing + " and " + e.New
}

func idString(id ID) string {
	const hexDigits = "0123456789abcdef"
	if id == 0 {
		return "0"
	}
	var buf [16]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = hexDigits[id&0xf]
		id >>= 4
	}
	return "0x" + string(buf[i:])
}

// Claim registers canonicalName's id, returning a *CollisionError if a
// different canonical name already claimed the same id. Claiming the
// same name twice is idempotent and never an error (§3 "Lifecycles":
// elements are never removed, only merged).
func (r *Registry) Claim(canonicalName string) (ID, error) {
	id := Of(canonicalName)
	canonical := Canonicalize(canonicalName)
	if existing, ok := r.byID[id]; ok {
		if existing != canonical {
			return id, &CollisionError{ID: id, Existing: existing, New: canonical}
		}
		return id, nil
	}
	r.byID[id] = canonical
	return id, nil
}
