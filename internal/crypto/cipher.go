// Package crypto implements the cipher service that protects stored
// credentials at rest. Every secret is encrypted with AES-256-CBC under a
// single process-wide key; a fresh random IV is generated per call and
// travels with the ciphertext, so encrypting the same value twice never
// yields the same blob.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const keySize = 32 // AES-256

var (
	// ErrInvalidKey means the configured encryption key is missing or does
	// not decode to exactly 32 bytes. Fatal at startup.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrDecryption means a stored blob is malformed, was produced under a
	// different key, or was tampered with. Fatal for the record, not the
	// process.
	ErrDecryption = errors.New("decryption failed")
)

// Cipher encrypts and decrypts single secret values. The key is fixed for
// the process lifetime; Cipher holds no other state and is safe for
// concurrent use.
type Cipher struct {
	key []byte
}

// New builds a Cipher from an encoded key (hex or std base64). It fails with
// ErrInvalidKey unless the key decodes to exactly 32 bytes.
func New(encodedKey string) (*Cipher, error) {
	if encodedKey == "" {
		return nil, fmt.Errorf("%w: key is not set", ErrInvalidKey)
	}

	key, err := decodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), keySize)
	}

	return &Cipher{key: key}, nil
}

func decodeKey(s string) ([]byte, error) {
	if key, err := hex.DecodeString(s); err == nil {
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("key is neither hex nor base64")
	}
	return key, nil
}

// Encrypt returns the blob "hex(iv):hex(ciphertext)" for the given
// plaintext. The IV comes from crypto/rand on every call.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Any structural problem with the blob, a key
// mismatch, or a padding failure surfaces as ErrDecryption.
func (c *Cipher) Decrypt(blob string) (string, error) {
	ivHex, dataHex, ok := strings.Cut(blob, ":")
	if !ok {
		return "", fmt.Errorf("%w: missing iv delimiter", ErrDecryption)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: bad iv", ErrDecryption)
	}

	ciphertext, err := hex.DecodeString(dataHex)
	if err != nil {
		return "", fmt.Errorf("%w: bad payload encoding", ErrDecryption)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: payload is not block aligned", ErrDecryption)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
