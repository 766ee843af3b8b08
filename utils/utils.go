package utils

import (
	"io"

	"github.com/charmbracelet/log"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Keys[A comparable, B any](input map[A]B) []A {
	keys := make([]A, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	return keys
}

// Closer returns a func suitable for defer that logs a failed Close.
func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Warn("failed to close", "error", err)
		}
	}
}
