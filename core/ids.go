package core

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator returns a new identifier, unique for the lifetime of the process.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// SequentialIDs returns an IDGenerator yielding "start+1", "start+2", ...
// It is safe for concurrent use.
func SequentialIDs(start int) IDGenerator {
	var mu sync.Mutex
	n := start
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return strconv.Itoa(n)
	}
}
