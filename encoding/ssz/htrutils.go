// Package ssz holds the hand rolled merkleization helpers for the small fixed containers used
// when signing: ForkData and SigningData.
package ssz

import (
	"encoding/binary"

	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/crypto/hash"
	"github.com/prysmaticlabs/blobkzg/encoding/bytesutil"
)

// Uint64Root computes the HashTreeRoot Merkleization of
// a simple uint64 value according to the Ethereum
// Simple Serialize specification.
func Uint64Root(val uint64) [32]byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, val)
	root := bytesutil.ToBytes32(buf)
	return root
}

// ForkDataRoot computes the HashTreeRoot Merkleization of
// a ForkData{current_version, genesis_validators_root} container.
func ForkDataRoot(version [fieldparams.VersionLength]byte, genesisValidatorsRoot [32]byte) [32]byte {
	versionRoot := bytesutil.ToBytes32(version[:])
	return hashPair(versionRoot, genesisValidatorsRoot)
}

// SigningDataRoot computes the HashTreeRoot Merkleization of
// a SigningData{object_root, domain} container.
func SigningDataRoot(objectRoot [32]byte, domain [fieldparams.DomainLength]byte) [32]byte {
	return hashPair(objectRoot, domain)
}

func hashPair(left, right [32]byte) [32]byte {
	var chunks [64]byte
	copy(chunks[:32], left[:])
	copy(chunks[32:], right[:])
	return hash.Hash(chunks[:])
}
