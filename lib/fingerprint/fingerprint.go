// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// String returns the hex form, so hashes print usefully in logs.
func (hash Hash) String() string {
	return Format(hash)
}

// domainKey is a 32-byte key for BLAKE3 keyed hashing. The same bytes
// hash differently in each domain.
type domainKey [32]byte

// Domain keys are the ASCII domain name, zero-padded to 32 bytes.
// Changing one invalidates every fingerprint recorded in that domain.
var (
	methodDomainKey     = newDomainKey("pagerduty.contact.method")
	collectionDomainKey = newDomainKey("pagerduty.contact.collection")
	nodeDomainKey       = newDomainKey("pagerduty.contact.node")
)

func newDomainKey(name string) domainKey {
	var key domainKey
	if len(name) > len(key) {
		panic("fingerprint: domain name longer than 32 bytes: " + name)
	}
	copy(key[:], name)
	return key
}

// Method hashes the compact JSON encoding of a single contact method.
// Two methods with the same projection have the same fingerprint
// regardless of the key order they were decoded from.
func Method(method contactmethod.ContactMethod) Hash {
	return keyedHash(methodDomainKey, contactmethod.Encode(method))
}

// Collection hashes an ordered collection: the collection-domain hash
// of the Merkle root over each element's [Method] hash. Reordering the
// elements changes the fingerprint. An empty collection hashes the
// empty input.
func Collection(methods []contactmethod.ContactMethod) Hash {
	if len(methods) == 0 {
		return keyedHash(collectionDomainKey, nil)
	}
	hashes := make([]Hash, len(methods))
	for index, method := range methods {
		hashes[index] = Method(method)
	}
	root := MerkleRoot(hashes)
	return keyedHash(collectionDomainKey, root[:])
}

// MerkleRoot computes a binary Merkle tree over hashes with the node
// domain key and returns the root. Adjacent pairs are concatenated and
// hashed; an odd node at the end of a level is promoted unchanged (not
// duplicated, which would let two different lists share a root).
//
// Panics if hashes is empty.
func MerkleRoot(hashes []Hash) Hash {
	if len(hashes) == 0 {
		panic("fingerprint.MerkleRoot: empty hash list")
	}

	hasher := newHasher(nodeDomainKey)
	var combined [64]byte
	hashPair := func(left, right Hash) Hash {
		copy(combined[:32], left[:])
		copy(combined[32:], right[:])
		hasher.Reset()
		hasher.Write(combined[:])
		var result Hash
		copy(result[:], hasher.Sum(nil))
		return result
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, hashPair(level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	return level[0]
}

// Format returns the 64-character hex encoding of hash.
func Format(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// Parse parses a 64-character hex string into a Hash.
func Parse(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// ShortRef returns "cm-" followed by the first 12 hex characters of
// hash, for display where the full digest is too long.
func ShortRef(hash Hash) string {
	return "cm-" + hex.EncodeToString(hash[:6])
}

func keyedHash(key domainKey, data []byte) Hash {
	hasher := newHasher(key)
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// newHasher only fails for a key that is not 32 bytes, which domainKey
// rules out.
func newHasher(key domainKey) *blake3.Hasher {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return hasher
}
