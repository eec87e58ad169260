package ticketing

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"event-admission-platform/internal/models"
)

const keyLength = 32

// keyInfo binds derived keys to this use so the same passphrase configured
// elsewhere cannot yield the same AES key.
const keyInfo = "ticket-payload-encryption-v1"

// Cipher encrypts and decrypts ticket payloads with AES-256-CFB. Every
// Encrypt call draws a fresh random IV, so identical plaintexts produce
// unlinkable ciphertexts.
type Cipher struct {
	key []byte
}

// NewCipher derives the AES key from the configured passphrase using
// HKDF-SHA256 and returns a ready-to-use cipher.
func NewCipher(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, errors.New("encryption passphrase is required")
	}

	key := make([]byte, keyLength)
	kdf := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}

	return &Cipher{key: key}, nil
}

// Encrypt encrypts the plaintext and returns base64(iv || ciphertext),
// the form embedded in the QR symbol.
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext, plaintext)

	return base64.StdEncoding.EncodeToString(append(iv, ciphertext...)), nil
}

// Decrypt reverses Encrypt. It fails closed: any malformed or truncated
// input yields models.ErrInvalidCiphertext, never a partial plaintext.
func (c *Cipher) Decrypt(blob string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64", models.ErrInvalidCiphertext)
	}

	if len(data) < aes.BlockSize {
		return nil, fmt.Errorf("%w: payload shorter than IV", models.ErrInvalidCiphertext)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidCiphertext, err)
	}

	iv := data[:aes.BlockSize]
	ciphertext := data[aes.BlockSize:]

	plaintext := make([]byte, len(ciphertext))
	stream := cipher.NewCFBDecrypter(block, iv)
	stream.XORKeyStream(plaintext, ciphertext)

	return plaintext, nil
}
