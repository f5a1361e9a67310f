package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	blobkzg "github.com/prysmaticlabs/blobkzg/beacon-chain/blockchain/kzg"
	"github.com/urfave/cli/v2"
)

var commitCmd = &cli.Command{
	Name:   "commit",
	Usage:  "compute the KZG commitment of a blob and the proof binding the blob to it",
	Flags:  []cli.Flag{blobFileFlag},
	Action: commitAction,
}

func commitAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	engine, err := loadEngine(c, cfg)
	if err != nil {
		return err
	}
	computer, err := blobkzg.NewProofComputer(cfg, engine)
	if err != nil {
		return err
	}
	blob, err := readBlob(c.String(blobFileFlag.Name))
	if err != nil {
		return err
	}
	commitment, err := computer.BlobToKZGCommitment(blob)
	if err != nil {
		return err
	}
	proof, err := computer.ComputeBlobKZGProof(blob, commitment)
	if err != nil {
		return err
	}
	log.WithField("commitment", fmt.Sprintf("%#x", commitment[:8])).Info("Computed blob commitment")
	_, err = fmt.Fprintf(c.App.Writer, "commitment: %s\nproof: %s\n", hexutil.Encode(commitment[:]), hexutil.Encode(proof[:]))
	return err
}
