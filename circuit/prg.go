//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic randomness source expanding a seed into a
// ChaCha20 keystream. It implements io.Reader and is the randomness
// source behind Rand gates.
type PRG struct {
	stream *chacha20.Cipher
}

// NewPRG creates a PRG keyed with a fresh seed from crypto/rand.
func NewPRG() (*PRG, error) {
	var seed [chacha20.KeySize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding PRG: %w", err)
	}
	return NewSeededPRG(seed[:])
}

// NewSeededPRG creates a PRG from the seed. The seed may be any
// non-empty length; it is repeated or trimmed deterministically to the
// ChaCha20 key size, so equal seeds always yield equal streams.
func NewSeededPRG(seed []byte) (*PRG, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("empty PRG seed")
	}
	key := make([]byte, chacha20.KeySize)
	for i := 0; i < len(key); i++ {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return &PRG{
		stream: stream,
	}, nil
}

// Read fills p with keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	prg.stream.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = (*PRG)(nil)
