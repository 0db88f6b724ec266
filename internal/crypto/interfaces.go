package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts small secrets at rest under a key derived from a
// passphrase. Every Seal call draws a fresh salt, so sealing the same
// plaintext twice yields unrelated outputs.
type Sealer interface {
	// Seal encrypts plaintext. The returned salt is not secret and must be
	// stored alongside the blob; Open needs both.
	Seal(plaintext []byte) (salt, blob []byte, err error)

	// Open reverses Seal. It fails with [ErrDecrypt] when the passphrase is
	// wrong or the blob was tampered with.
	Open(salt, blob []byte) ([]byte, error)
}
