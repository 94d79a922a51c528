// Package utils holds small helpers shared across the client.
package utils

import "github.com/google/uuid"

// RequestIDGenerator produces unique identifiers for outgoing requests.
// Version 7 UUIDs are time-ordered, which keeps correlated log entries
// sortable; generation errors fall back to a random v4.
type RequestIDGenerator struct{}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
