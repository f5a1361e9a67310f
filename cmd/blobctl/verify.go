package main

import (
	"github.com/pkg/errors"
	blobkzg "github.com/prysmaticlabs/blobkzg/beacon-chain/blockchain/kzg"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/urfave/cli/v2"
)

var errInvalidProof = errors.New("proof does not verify")

var verifyCmd = &cli.Command{
	Name:   "verify",
	Usage:  "check that a blob proof binds a blob to its commitment",
	Flags:  []cli.Flag{blobFileFlag, commitmentFlag, proofFlag},
	Action: verifyAction,
}

func verifyAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	engine, err := loadEngine(c, cfg)
	if err != nil {
		return err
	}
	validator, err := blobkzg.NewProofValidator(cfg, engine)
	if err != nil {
		return err
	}
	blob, err := readBlob(c.String(blobFileFlag.Name))
	if err != nil {
		return err
	}
	rawCommitment, err := decodeFixed(c, commitmentFlag.Name, fieldparams.KzgCommitmentLength)
	if err != nil {
		return err
	}
	rawProof, err := decodeFixed(c, proofFlag.Name, fieldparams.KzgProofLength)
	if err != nil {
		return err
	}
	ok, err := validator.ValidateBlob(kzg.Commitment(rawCommitment), kzg.Proof(rawProof), blob)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidProof
	}
	log.Info("Blob proof is valid")
	return nil
}
