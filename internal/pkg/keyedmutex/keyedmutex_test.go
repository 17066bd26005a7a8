package keyedmutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializesSameKey(t *testing.T) {
	km := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("emp-1")
			defer km.Unlock("emp-1")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestIndependentKeysDoNotBlock(t *testing.T) {
	km := New()

	km.Lock("a")
	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	<-done
	km.Unlock("a")
}

func TestEntriesAreReclaimed(t *testing.T) {
	km := New()

	km.Lock("ephemeral")
	km.Unlock("ephemeral")

	assert.Empty(t, km.locks)
}

func TestUnlockUnheldKeyPanics(t *testing.T) {
	km := New()

	assert.Panics(t, func() {
		km.Unlock("never-locked")
	})
}
