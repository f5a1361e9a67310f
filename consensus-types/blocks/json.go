package blocks

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/config/params"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
)

type blobSidecarJSON struct {
	BlockRoot       hexutil.Bytes `json:"block_root"`
	Index           uint64        `json:"index,string"`
	Slot            uint64        `json:"slot,string"`
	BlockParentRoot hexutil.Bytes `json:"block_parent_root"`
	ProposerIndex   uint64        `json:"proposer_index,string"`
	Blob            hexutil.Bytes `json:"blob"`
	KzgCommitment   hexutil.Bytes `json:"kzg_commitment"`
	KzgProof        hexutil.Bytes `json:"kzg_proof"`
}

// MarshalJSON encodes byte fields as 0x prefixed hex and integers as quoted decimals.
func (b *BlobSidecar) MarshalJSON() ([]byte, error) {
	return json.Marshal(&blobSidecarJSON{
		BlockRoot:       b.blockRoot[:],
		Index:           b.index,
		Slot:            uint64(b.slot),
		BlockParentRoot: b.blockParentRoot[:],
		ProposerIndex:   uint64(b.proposerIndex),
		Blob:            b.blob,
		KzgCommitment:   b.kzgCommitment[:],
		KzgProof:        b.kzgProof[:],
	})
}

// UnmarshalBlobSidecarJSON decodes the MarshalJSON form of a sidecar built for cfg.
func UnmarshalBlobSidecarJSON(cfg *params.BeaconChainConfig, data []byte) (*BlobSidecar, error) {
	var enc blobSidecarJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, errors.Wrap(err, "could not decode blob sidecar json")
	}
	d := &BlobSidecarData{
		Index:         enc.Index,
		Slot:          primitives.Slot(enc.Slot),
		ProposerIndex: primitives.ValidatorIndex(enc.ProposerIndex),
		Blob:          enc.Blob,
	}
	fields := []struct {
		name string
		dst  []byte
		src  []byte
	}{
		{"block_root", d.BlockRoot[:], enc.BlockRoot},
		{"block_parent_root", d.BlockParentRoot[:], enc.BlockParentRoot},
		{"kzg_commitment", d.KzgCommitment[:], enc.KzgCommitment},
		{"kzg_proof", d.KzgProof[:], enc.KzgProof},
	}
	for _, f := range fields {
		if len(f.src) != len(f.dst) {
			return nil, errors.Errorf("%s has %d bytes, want %d", f.name, len(f.src), len(f.dst))
		}
		copy(f.dst, f.src)
	}
	return NewBlobSidecar(cfg, d)
}

