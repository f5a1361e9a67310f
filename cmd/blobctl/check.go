package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	blobkzg "github.com/prysmaticlabs/blobkzg/beacon-chain/blockchain/kzg"
	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/prysmaticlabs/blobkzg/runtime/logging"
	"github.com/urfave/cli/v2"
)

var checkCmd = &cli.Command{
	Name:   "check",
	Usage:  "verify the KZG proofs of the SSZ encoded sidecars of one block",
	Flags:  []cli.Flag{sidecarFileFlag},
	Action: checkAction,
}

func checkAction(c *cli.Context) error {
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
	fixed := blocks.NewFixedBlobSidecarList(cfg)
	for _, f := range c.StringSlice(sidecarFileFlag.Name) {
		raw, err := os.ReadFile(f) // #nosec G304
		if err != nil {
			return errors.Wrap(err, "could not read sidecar file")
		}
		sc, err := blocks.UnmarshalBlobSidecar(cfg, raw)
		if err != nil {
			return errors.Wrapf(err, "could not decode %s", f)
		}
		if _, ok := fixed.Get(sc.Index()); ok {
			return errors.Errorf("more than one sidecar with index %d", sc.Index())
		}
		if err := fixed.Set(sc); err != nil {
			return err
		}
		log.WithFields(logging.BlobFields(sc)).Debug("Loaded blob sidecar")
	}
	sidecars := fixed.Filled()
	if len(sidecars) > 0 {
		last := sidecars[len(sidecars)-1].Index()
		missing := fixed.Missing()
		for i := uint64(0); i < last; i++ {
			if missing.BitAt(i) {
				log.WithField("index", i).Warn("Sidecar missing below the highest index")
			}
		}
	}
	if err := validator.BisectBlobSidecarKzgProofs(sidecars); err != nil {
		var proofErr *blobkzg.KzgProofError
		if errors.As(err, &proofErr) {
			for _, cmt := range proofErr.Failed() {
				log.WithField("commitment", fmt.Sprintf("%#x", cmt)).Error("Sidecar proof does not verify")
			}
		}
		return err
	}
	roots := sidecars.KzgCommitmentRoots()
	for i, sc := range sidecars {
		if _, err := fmt.Fprintf(c.App.Writer, "index %d: ok, commitment root %#x\n", sc.Index(), roots[i]); err != nil {
			return err
		}
	}
	log.WithField("sidecars", len(sidecars)).Info("All sidecar proofs verify")
	return nil
}
