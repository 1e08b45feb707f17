// Package crypto seals payloads before they enter a carrier.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the password KDF.
const (
	saltSize    = 16
	argonTime   = 1
	argonMemory = 64 * 1024
	argonLanes  = 4
	keySize     = 32
)

var (
	// ErrCiphertextShort is returned when sealed data is shorter than its framing.
	ErrCiphertextShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed is returned when authentication fails, usually a wrong key.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// PayloadCipher seals payload bytes under a password. The sealed layout is
// salt | nonce | AES-256-GCM ciphertext, so every seal is self-contained.
type PayloadCipher struct {
	password []byte
}

func NewPayloadCipher(password string) *PayloadCipher {
	return &PayloadCipher{password: []byte(password)}
}

func (pc *PayloadCipher) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(pc.password, salt, argonTime, argonMemory, argonLanes, keySize)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext under a fresh salt and nonce.
func (pc *PayloadCipher) Encrypt(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	gcm, err := pc.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	sealed = append(sealed, salt...)
	sealed = append(sealed, nonce...)
	return gcm.Seal(sealed, nonce, plaintext, nil), nil
}

// Decrypt opens data sealed by Encrypt.
func (pc *PayloadCipher) Decrypt(sealed []byte) ([]byte, error) {
	if len(sealed) < saltSize {
		return nil, ErrCiphertextShort
	}
	salt, rest := sealed[:saltSize], sealed[saltSize:]

	gcm, err := pc.aead(salt)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, ErrCiphertextShort
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// ValidateKey checks that a password is usable before deriving a key from it.
func ValidateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("key cannot be empty")
	}
	if len(key) > 256 {
		return fmt.Errorf("key length cannot exceed 256 characters")
	}
	return nil
}
