package logging

import (
	"fmt"

	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/sirupsen/logrus"
)

// BlobFields extracts a standard set of fields from a BlobSidecar into a logrus.Fields struct
// which can be passed to log.WithFields.
func BlobFields(blob *blocks.BlobSidecar) logrus.Fields {
	commitment := blob.KzgCommitment()
	return logrus.Fields{
		"slot":          blob.Slot(),
		"proposerIndex": blob.ProposerIndex(),
		"blockRoot":     fmt.Sprintf("%#x", blob.BlockRoot())[:8],
		"parentRoot":    fmt.Sprintf("%#x", blob.BlockParentRoot())[:8],
		"kzgCommitment": fmt.Sprintf("%#x", commitment)[:8],
		"index":         blob.Index(),
	}
}

// BlockFieldsFromBlob extracts the set of fields from a given BlobSidecar which are shared by the block and
// all other sidecars for the block.
func BlockFieldsFromBlob(blob *blocks.BlobSidecar) logrus.Fields {
	return logrus.Fields{
		"slot":          blob.Slot(),
		"proposerIndex": blob.ProposerIndex(),
		"blockRoot":     fmt.Sprintf("%#x", blob.BlockRoot()),
		"parentRoot":    fmt.Sprintf("%#x", blob.BlockParentRoot()),
	}
}
