package blocks

import (
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/gohashtree"
)

// KzgCommitmentRoot is the hash tree root of a commitment, the leaf used when proving a
// commitment's inclusion in a block body.
func KzgCommitmentRoot(commitment [fieldparams.KzgCommitmentLength]byte) [32]byte {
	chunk := make([][32]byte, 2)
	copy(chunk[0][:], commitment[:])
	copy(chunk[1][:], commitment[fieldparams.RootLength:])
	gohashtree.HashChunks(chunk, chunk)
	return chunk[0]
}

// KzgCommitmentRoots returns the roots of the commitments of every sidecar in the list.
func (l BlobSidecarList) KzgCommitmentRoots() [][32]byte {
	roots := make([][32]byte, len(l))
	for i, sc := range l {
		roots[i] = KzgCommitmentRoot(sc.kzgCommitment)
	}
	return roots
}
