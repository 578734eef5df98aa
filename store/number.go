package store

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// NumberGenerator produces candidate customer numbers. The store collision-
// checks every candidate before persisting, so generators only need to be
// unique in expectation, not guaranteed.
type NumberGenerator interface {
	Next(now time.Time) (string, error)
}

// numberAlphabet excludes visually ambiguous symbols (0/O, 1/I).
const numberAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const randomSuffixLen = 4

// FormattedGenerator produces PREFIX-YYYYMMDD-XXXX numbers, the date taken
// from the order's local creation time.
type FormattedGenerator struct {
	Prefix string
}

func NewFormattedGenerator(prefix string) *FormattedGenerator {
	if prefix == "" {
		prefix = "GS"
	}
	return &FormattedGenerator{Prefix: prefix}
}

func (g *FormattedGenerator) Next(now time.Time) (string, error) {
	suffix := make([]byte, randomSuffixLen)
	max := big.NewInt(int64(len(numberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate customer number: %w", err)
		}
		suffix[i] = numberAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%s-%s-%s", g.Prefix, now.Format("20060102"), suffix), nil
}

// SequentialGenerator hands out plain incrementing integers starting from
// the given next value. The store still enforces uniqueness on insert.
type SequentialGenerator struct {
	next int64
}

func NewSequentialGenerator(start int64) *SequentialGenerator {
	if start < 1 {
		start = 1
	}
	return &SequentialGenerator{next: start}
}

func (g *SequentialGenerator) Next(time.Time) (string, error) {
	n := g.next
	g.next++
	return strconv.FormatInt(n, 10), nil
}
