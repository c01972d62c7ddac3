package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelize(t *testing.T) {
	square := func(i int) int { return i * i }

	var nilPool *Pool
	expected := Parallelize(nilPool, 100, square)

	pl := NewPool(4)
	defer pl.TearDown()
	assert.Equal(t, 4, pl.Workers())
	assert.Equal(t, 1, nilPool.Workers())

	got := Parallelize(pl, 100, square)
	require.Len(t, got, 100)
	assert.Equal(t, expected, got)
	assert.Empty(t, Parallelize(pl, 0, square))
}

func TestLockedReader(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i / 128)
	}
	r := NewLockedReader(bytes.NewReader(data))

	var (
		wg  sync.WaitGroup
		mtx sync.Mutex
		got [][]byte
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, 128)
			_, err := io.ReadFull(r, buf)
			assert.NoError(t, err)
			mtx.Lock()
			got = append(got, buf)
			mtx.Unlock()
		}()
	}
	wg.Wait()

	seen := make(map[byte]bool)
	for _, b := range got {
		seen[b[0]] = true
	}
	assert.Len(t, seen, 8, "every chunk should be read exactly once")
}
