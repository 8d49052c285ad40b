// Package util provides utility functions for the inventory system.
package util

import "github.com/google/uuid"

// NewID returns a random product identifier.
func NewID() string {
	return uuid.NewString()
}

// UniqueID draws ids from gen until taken reports false for one.
func UniqueID(gen func() string, taken func(string) bool) string {
	for {
		id := gen()
		if !taken(id) {
			return id
		}
	}
}
