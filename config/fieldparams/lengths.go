// Package field_params defines byte widths that do not change between network presets.
package field_params

const (
	RootLength           = 32 // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength   = 96 // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength      = 48 // BLSPubkeyLength defines the byte length of a BLSSignature.
	BLSSecretKeyLength   = 32 // BLSSecretKeyLength defines the byte length of a BLS secret key.
	VersionLength        = 4  // VersionLength defines the byte length of a fork version number.
	DomainLength         = 32 // DomainLength defines the byte length of a signing domain.
	KzgCommitmentLength  = 48 // KzgCommitmentLength defines the byte length of a serialized KZG commitment.
	KzgProofLength       = 48 // KzgProofLength defines the byte length of a serialized KZG proof.
	KzgScalarLength      = 32 // KzgScalarLength defines the byte length of an evaluation point or value.
	BlobIdentifierLength = 40 // BlobIdentifierLength is the SSZ size of a BlobIdentifier.
)
