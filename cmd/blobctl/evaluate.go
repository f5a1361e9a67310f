package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	blobkzg "github.com/prysmaticlabs/blobkzg/beacon-chain/blockchain/kzg"
	fieldparams "github.com/prysmaticlabs/blobkzg/config/fieldparams"
	"github.com/prysmaticlabs/blobkzg/crypto/kzg"
	"github.com/urfave/cli/v2"
)

var evaluateCmd = &cli.Command{
	Name:   "evaluate",
	Usage:  "evaluate a blob polynomial at a point and prove the evaluation",
	Flags:  []cli.Flag{blobFileFlag, pointFlag},
	Action: evaluateAction,
}

func evaluateAction(c *cli.Context) error {
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
	verifier, err := blobkzg.NewEvaluationVerifier(engine)
	if err != nil {
		return err
	}
	blob, err := readBlob(c.String(blobFileFlag.Name))
	if err != nil {
		return err
	}
	rawPoint, err := decodeFixed(c, pointFlag.Name, fieldparams.KzgScalarLength)
	if err != nil {
		return err
	}
	point := kzg.Scalar(rawPoint)
	commitment, err := computer.BlobToKZGCommitment(blob)
	if err != nil {
		return err
	}
	proof, value, err := computer.ComputeKZGProof(blob, point)
	if err != nil {
		return err
	}
	ok, err := verifier.VerifyKZGProof(commitment, proof, point, value)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidProof
	}
	log.WithField("point", hexutil.Encode(point[:])).Info("Computed and checked evaluation proof")
	_, err = fmt.Fprintf(c.App.Writer, "commitment: %s\nvalue: %s\nproof: %s\n",
		hexutil.Encode(commitment[:]), hexutil.Encode(value[:]), hexutil.Encode(proof[:]))
	return err
}
