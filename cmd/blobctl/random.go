package main

import (
	"crypto/rand"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/beacon-chain/core/signing"
	"github.com/prysmaticlabs/blobkzg/consensus-types/blocks"
	"github.com/prysmaticlabs/blobkzg/consensus-types/primitives"
	"github.com/prysmaticlabs/blobkzg/crypto/bls"
	"github.com/prysmaticlabs/blobkzg/runtime/logging"
	"github.com/prysmaticlabs/blobkzg/testing/util"
	"github.com/urfave/cli/v2"
)

var randomCmd = &cli.Command{
	Name:   "random",
	Usage:  "generate a sidecar around a random blob with a valid commitment and proof",
	Flags:  []cli.Flag{indexFlag, slotFlag, signFlag, formatFlag, outputFileFlag},
	Action: randomAction,
}

func randomAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	engine, err := loadEngine(c, cfg)
	if err != nil {
		return err
	}
	base, err := util.RandomValidBlobSidecar(rand.Reader, cfg, engine)
	if err != nil {
		return err
	}
	var blockRoot, parentRoot [32]byte
	if _, err := rand.Read(blockRoot[:]); err != nil {
		return errors.Wrap(err, "could not read random block root")
	}
	if _, err := rand.Read(parentRoot[:]); err != nil {
		return errors.Wrap(err, "could not read random parent root")
	}
	sc, err := blocks.NewBlobSidecar(cfg, &blocks.BlobSidecarData{
		BlockRoot:       blockRoot,
		Index:           c.Uint64(indexFlag.Name),
		Slot:            primitives.Slot(c.Uint64(slotFlag.Name)),
		BlockParentRoot: parentRoot,
		Blob:            base.Blob(),
		KzgCommitment:   base.KzgCommitment(),
		KzgProof:        base.KzgProof(),
	})
	if err != nil {
		return err
	}
	if c.Bool(signFlag.Name) {
		if err := signAndCheck(sc); err != nil {
			return err
		}
	}
	log.WithFields(logging.BlobFields(sc)).Info("Generated blob sidecar")

	var out []byte
	switch c.String(formatFlag.Name) {
	case formatJSON:
		out, err = sc.MarshalJSON()
		out = append(out, '\n')
	default:
		out, err = sc.MarshalSSZ()
		if err == nil && c.String(outputFileFlag.Name) == "" {
			out = []byte(hexutil.Encode(out) + "\n")
		}
	}
	if err != nil {
		return err
	}
	return writeOutput(c, out)
}

// signAndCheck signs sc with a throwaway key and verifies the signature round trips.
func signAndCheck(sc *blocks.BlobSidecar) error {
	sk, err := bls.RandKey()
	if err != nil {
		return errors.Wrap(err, "could not generate key")
	}
	cfg := sc.Config()
	fork := signing.DenebFork(cfg)
	signed, err := sc.Sign(sk, fork, cfg.ZeroHash, cfg)
	if err != nil {
		return err
	}
	pubkey := sk.PublicKey().Marshal()
	if err := signed.Verify(pubkey, fork, cfg.ZeroHash); err != nil {
		return err
	}
	log.WithField("pubkey", hexutil.Encode(pubkey)).WithField("signature", hexutil.Encode(signed.Signature[:])).Info("Signed blob sidecar")
	return nil
}
