package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"eatgo/internal/util/memzero"
)

const (
	// The current supported version of the sealed value format.
	sealFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed value has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted item")
	// ErrSealed is returned when reading a sealed item without a passphrase.
	ErrSealed = errors.New("item is sealed; passphrase required")
)

// sealed is the on-disk JSON structure holding a ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

type scryptParams struct{ N, R, P int }

// Tunables for scrypt key derivation.
func defaultScryptParams() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// seal derives a key from passphrase and encrypts raw, binding key as
// associated data so a value cannot be moved to another key.
func seal(passphrase, key string, raw []byte, params scryptParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	k, err := scrypt.Key([]byte(passphrase), salt[:], params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Wipe(k)

	aead, err := chacha20poly1305.New(k)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // each seal derives a fresh key from a fresh salt
	ct := aead.Seal(nil, nonce[:], raw, associatedData(key, salt[:]))

	return json.Marshal(sealed{
		V:      sealFormatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// open reverses seal.
func open(passphrase, key string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.V > sealFormatVersion {
		return nil, fmt.Errorf("unsupported sealed item version %d", s.V)
	}

	k, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Wipe(k)

	aead, err := chacha20poly1305.New(k)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], s.Cipher, associatedData(key, s.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func associatedData(key string, salt []byte) []byte {
	ad := make([]byte, 0, len(key)+len(salt))
	ad = append(ad, key...)
	return append(ad, salt...)
}
