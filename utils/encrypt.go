package utils

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrCiphertextLength = errors.New("ciphertext is not a multiple of the block size")
	ErrInvalidPadding   = errors.New("invalid padding")
	ErrMissingIV        = errors.New("payload has no iv")
)

// EncryptedPayload is what Encrypt hands back to callers. IV is nil when the
// encryptor runs in pass-through mode and Data is then plain text.
type EncryptedPayload struct {
	Data string  `json:"data"`
	IV   *string `json:"iv"`
}

// Encryptor wraps AES-256-CBC with a key derived from a configured secret.
// The zero value, or one built from an empty secret, passes data through.
type Encryptor struct {
	key  []byte
	rand io.Reader
}

func NewEncryptor(secret string) *Encryptor {
	e := &Encryptor{rand: rand.Reader}
	if secret != "" {
		sum := sha256.Sum256([]byte(secret))
		e.key = sum[:]
	}
	return e
}

// Enabled reports whether a secret was configured.
func (e *Encryptor) Enabled() bool {
	return e != nil && len(e.key) > 0
}

// Encrypt serializes data (strings as-is, anything else as JSON) and encrypts
// it under a fresh IV.
func (e *Encryptor) Encrypt(data interface{}) (EncryptedPayload, error) {
	plain, err := serialize(data)
	if err != nil {
		return EncryptedPayload{}, err
	}
	if !e.Enabled() {
		return EncryptedPayload{Data: plain}, nil
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return EncryptedPayload{}, err
	}

	iv, err := generateRandomBytes(e.rand, aes.BlockSize)
	if err != nil {
		return EncryptedPayload{}, fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plain), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	ivHex := hex.EncodeToString(iv)
	return EncryptedPayload{Data: hex.EncodeToString(out), IV: &ivHex}, nil
}

// Decrypt reverses Encrypt and returns the serialized plain text.
func (e *Encryptor) Decrypt(p EncryptedPayload) (string, error) {
	if !e.Enabled() {
		return p.Data, nil
	}
	if p.IV == nil {
		return "", ErrMissingIV
	}

	iv, err := hex.DecodeString(*p.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("invalid iv: %q", *p.IV)
	}
	data, err := hex.DecodeString(p.Data)
	if err != nil {
		return "", fmt.Errorf("invalid ciphertext encoding: %w", err)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", ErrCiphertextLength
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func serialize(data interface{}) (string, error) {
	if s, ok := data.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}
	return string(b), nil
}

func generateRandomBytes(r io.Reader, length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ErrInvalidPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrInvalidPadding
		}
	}
	return b[:len(b)-n], nil
}
