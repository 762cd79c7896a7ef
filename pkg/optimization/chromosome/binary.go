package chromosome

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"strings"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

const wordSize = 64

// Binary is a fixed-width bit string. Gene i is the bit of weight 2^i, so the
// textual form prints gene Len()-1 first.
type Binary struct {
	base
	nBits int
	words []uint64
}

var _ Chromosome = &Binary{}

// NewBinary returns a random chromosome of nBits bits.
func NewBinary(nBits int, rng *rand.Rand) (*Binary, error) {
	if err := checkLength(nBits); err != nil {
		return nil, err
	}
	b := newBinary(nBits)
	b.Generate(rng)
	return b, nil
}

// NewBinaryFromString parses a string of '0' and '1' characters, most
// significant bit first. The width is the length of s.
func NewBinaryFromString(s string) (*Binary, error) {
	if err := checkLength(len(s)); err != nil {
		return nil, err
	}
	b := newBinary(len(s))
	for k, r := range s {
		i := len(s) - 1 - k
		switch r {
		case '0':
		case '1':
			b.words[i/wordSize] |= 1 << (i % wordSize)
		default:
			return nil, fmt.Errorf("%w: invalid bit %q at position %d", framework.ErrInvalidArgument, r, k)
		}
	}
	return b, nil
}

// NewBinaryFromUint64 returns an nBits wide chromosome holding v.
func NewBinaryFromUint64(nBits int, v uint64) (*Binary, error) {
	if err := checkLength(nBits); err != nil {
		return nil, err
	}
	if nBits < wordSize && v>>nBits != 0 {
		return nil, fmt.Errorf("%w: value %d does not fit in %d bits", framework.ErrInvalidArgument, v, nBits)
	}
	b := newBinary(nBits)
	b.words[0] = v
	return b, nil
}

func newBinary(nBits int) *Binary {
	return &Binary{
		nBits: nBits,
		words: make([]uint64, (nBits+wordSize-1)/wordSize),
	}
}

func (b *Binary) Len() int { return b.nBits }

func (b *Binary) Gene(i int) (bool, error) {
	if err := checkIndex(i, b.nBits); err != nil {
		return false, err
	}
	return b.bit(i), nil
}

func (b *Binary) SetGene(i int, v bool) error {
	if err := checkIndex(i, b.nBits); err != nil {
		return err
	}
	b.setBit(i, v)
	return nil
}

// Flip inverts gene i.
func (b *Binary) Flip(i int) error {
	if err := checkIndex(i, b.nBits); err != nil {
		return err
	}
	b.words[i/wordSize] ^= 1 << (i % wordSize)
	return nil
}

func (b *Binary) Swap(i, j int) error {
	if err := checkIndex(i, b.nBits); err != nil {
		return err
	}
	if err := checkIndex(j, b.nBits); err != nil {
		return err
	}
	bi, bj := b.bit(i), b.bit(j)
	b.setBit(i, bj)
	b.setBit(j, bi)
	return nil
}

func (b *Binary) Generate(rng *rand.Rand) {
	for w := range b.words {
		b.words[w] = rng.Uint64()
	}
	b.trim()
}

// OnesCount returns the number of set bits.
func (b *Binary) OnesCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Uint64 returns the numeric value of chromosomes up to 64 bits wide.
func (b *Binary) Uint64() (uint64, error) {
	if b.nBits > wordSize {
		return 0, fmt.Errorf("%w: %d bits do not fit in uint64", framework.ErrInvalidArgument, b.nBits)
	}
	return b.words[0], nil
}

// ToBinary renders exactly Len() characters, left-padded with '0'.
func (b *Binary) ToBinary() string {
	var sb strings.Builder
	sb.Grow(b.nBits)
	for i := b.nBits - 1; i >= 0; i-- {
		if b.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *Binary) String() string { return b.ToBinary() }

func (b *Binary) Clone() Chromosome {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &Binary{
		base:  b.base,
		nBits: b.nBits,
		words: words,
	}
}

func (b *Binary) CreateNew(rng *rand.Rand) Chromosome {
	c := newBinary(b.nBits)
	c.Generate(rng)
	return c
}

func (b *Binary) bit(i int) bool {
	return b.words[i/wordSize]&(1<<(i%wordSize)) != 0
}

func (b *Binary) setBit(i int, v bool) {
	if v {
		b.words[i/wordSize] |= 1 << (i % wordSize)
	} else {
		b.words[i/wordSize] &^= 1 << (i % wordSize)
	}
}

// trim clears the padding bits above nBits in the last word.
func (b *Binary) trim() {
	if rem := b.nBits % wordSize; rem != 0 {
		b.words[len(b.words)-1] &= (1 << rem) - 1
	}
}
