package idtheory

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"regexp"
	"strings"
)

// Well-known namespace UUIDs for name-based derivation (RFC 9562 §6.6).
const (
	NamespaceDNS = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	NamespaceURL = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	NamespaceOID = "6ba7b812-9dad-11d1-80b4-00c04fd430c8"
)

// uuidShape matches the canonical 32-hex-digit UUID layout,
// case-insensitively, with optional enclosing braces and optional hyphens
// at the four standard separator positions.
var uuidShape = regexp.MustCompile(
	`^\{?[0-9a-fA-F]{8}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{12}\}?$`)

var uuidStripper = strings.NewReplacer("-", "", "{", "", "}", "")

// IsValidUUID reports whether candidate has the canonical UUID shape. It
// checks shape only, not version or variant bits.
func IsValidUUID(candidate string) bool {
	return uuidShape.MatchString(candidate)
}

// Version reports the version nibble of a shape-valid UUID. It returns
// false when candidate fails the shape check.
func Version(candidate string) (int, bool) {
	if !IsValidUUID(candidate) {
		return 0, false
	}
	stripped := uuidStripper.Replace(candidate)
	switch c := stripped[12]; {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	default:
		return int(c-'A') + 10, true
	}
}

// NewV3 derives a version 3 UUID from an MD5 digest of the namespace bytes
// followed by the name bytes. Identical inputs always produce identical
// output. The namespace must pass IsValidUUID.
func (g *Generator) NewV3(namespace, name string) (string, error) {
	return nameBasedUUID(3, md5.New, namespace, name)
}

// NewV5 derives a version 5 UUID from a SHA-1 digest of the namespace bytes
// followed by the name bytes, truncated to 128 bits. Identical inputs
// always produce identical output. The namespace must pass IsValidUUID.
func (g *Generator) NewV5(namespace, name string) (string, error) {
	return nameBasedUUID(5, sha1.New, namespace, name)
}

// NewV4 generates a version 4 UUID from eight 16-bit draws, with the
// version nibble forced to 4 and the variant bits forced to binary 10.
// Collisions are statistically negligible but not impossible, and the
// output is not suitable as a security token.
func (g *Generator) NewV4() string {
	draw := func() uint32 { return g.rand.Uint32N(1 << 16) }
	return fmt.Sprintf("%04x%04x-%04x-%04x-%04x-%04x%04x%04x",
		draw(), draw(),
		draw(),
		draw()&0x0fff|0x4000,
		draw()&0x3fff|0x8000,
		draw(), draw(), draw())
}

func nameBasedUUID(version byte, newDigest func() hash.Hash, namespace, name string) (string, error) {
	raw, err := decodeNamespace(namespace)
	if err != nil {
		return "", err
	}
	h := newDigest()
	h.Write(raw[:])
	io.WriteString(h, name)
	sum := h.Sum(nil)

	var b [16]byte
	copy(b[:], sum)
	b[6] = b[6]&0x0f | version<<4 // version nibble
	b[8] = b[8]&0x3f | 0x80       // variant DCE 1.1
	return formatUUID(b), nil
}

// decodeNamespace validates the namespace shape and decodes it to its
// 16-byte binary representation, ignoring hyphens and braces.
func decodeNamespace(namespace string) ([16]byte, error) {
	var raw [16]byte
	if !IsValidUUID(namespace) {
		return raw, &InvalidNamespaceError{Namespace: namespace}
	}
	if _, err := hex.Decode(raw[:], []byte(uuidStripper.Replace(namespace))); err != nil {
		return raw, &InvalidNamespaceError{Namespace: namespace}
	}
	return raw, nil
}

func formatUUID(b [16]byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
