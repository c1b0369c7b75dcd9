package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

var errMalformedCookie = errors.New("malformed cookie")

// CookieCodec seals cookie payloads so that clients can neither read nor
// forge them.
type CookieCodec struct {
	key [32]byte
}

// NewCookieCodec derives the sealing key from secret.
func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{key: sha256.Sum256([]byte(secret))}
}

// Seal encodes v as JSON and encrypts it.
func (c *CookieCodec) Seal(v any) (string, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	box := secretbox.Seal(nonce[:], plain, &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(box), nil
}

// Open decrypts value into v.
func (c *CookieCodec) Open(value string, v any) error {
	box, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(box) < 24+secretbox.Overhead {
		return errMalformedCookie
	}

	var nonce [24]byte
	copy(nonce[:], box[:24])
	plain, ok := secretbox.Open(nil, box[24:], &nonce, &c.key)
	if !ok {
		return errMalformedCookie
	}
	return json.Unmarshal(plain, v)
}
