package store

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormattedGeneratorFormat(t *testing.T) {
	gen := NewFormattedGenerator("GS")
	now := time.Date(2026, 4, 18, 14, 30, 0, 0, time.Local)

	pattern := regexp.MustCompile(`^GS-20260418-[23456789ABCDEFGHJKLMNPQRSTUVWXYZ]{4}$`)
	for i := 0; i < 50; i++ {
		number, err := gen.Next(now)
		assert.NoError(t, err)
		assert.Regexp(t, pattern, number)
	}
}

func TestFormattedGeneratorExcludesAmbiguousSymbols(t *testing.T) {
	gen := NewFormattedGenerator("EV")
	now := time.Now()

	for i := 0; i < 200; i++ {
		number, err := gen.Next(now)
		assert.NoError(t, err)
		suffix := number[strings.LastIndex(number, "-")+1:]
		assert.NotContains(t, suffix, "0")
		assert.NotContains(t, suffix, "O")
		assert.NotContains(t, suffix, "1")
		assert.NotContains(t, suffix, "I")
	}
}

func TestFormattedGeneratorDefaultPrefix(t *testing.T) {
	gen := NewFormattedGenerator("")
	number, err := gen.Next(time.Now())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(number, "GS-"))
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequentialGenerator(7)

	for want := 7; want < 10; want++ {
		number, err := gen.Next(time.Now())
		assert.NoError(t, err)
		assert.Equal(t, strconv.Itoa(want), number)
	}
}

func TestSequentialGeneratorClampsStart(t *testing.T) {
	gen := NewSequentialGenerator(0)
	number, err := gen.Next(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, "1", number)
}
