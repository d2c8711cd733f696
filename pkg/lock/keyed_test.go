package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedSerializesSameName(t *testing.T) {
	k := New()

	const workers = 8
	const iterations = 200

	counter := 0
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				k.Lock("documents")
				counter++
				k.Unlock("documents")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

func TestKeyedIndependentNames(t *testing.T) {
	k := New()

	// Holding one table's lock must not block another's.
	k.Lock("documents")
	defer k.Unlock("documents")

	done := make(chan struct{})
	go func() {
		k.Lock("users")
		k.Unlock("users")
		close(done)
	}()
	<-done
}
