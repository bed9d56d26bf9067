package reactive

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewSignal(0)
		assert.Equal(t, 0, count.Read())

		assert.NoError(t, count.Write(10))
		assert.Equal(t, 10, count.Read())
	})

	t.Run("write of equal value is a no-op", func(t *testing.T) {
		var ran int
		count := NewSignal(5)
		NewEffect(func() {
			count.Read()
			ran++
		})

		count.Write(5)

		assert.Equal(t, 1, ran)
	})

	t.Run("update folds over the current value", func(t *testing.T) {
		count := NewSignal(1)
		assert.NoError(t, count.Update(func(v int) int { return v + 9 }))
		assert.Equal(t, 10, count.Read())
	})

	t.Run("concurrent read/write", func(t *testing.T) {
		var wg sync.WaitGroup
		count := NewSignal(0)

		wg.Add(1)
		go func() {
			defer wg.Done()
			count.Write(count.Read() + 1)
		}()

		wg.Wait()
		assert.Equal(t, 1, count.Read())
	})

	t.Run("zero values", func(t *testing.T) {
		errSig := NewSignal[error](nil)
		assert.Nil(t, errSig.Read())

		errSig.Write(errors.New("oops"))
		assert.EqualError(t, errSig.Read(), "oops")

		errSig.Write(nil)
		assert.Nil(t, errSig.Read())
	})

	t.Run("custom equality skips propagation", func(t *testing.T) {
		type point struct{ x, y int }
		ran := 0

		p := NewSignal(point{1, 1}, WithEqual(func(a, b point) bool { return a.x == b.x }))
		NewEffect(func() {
			p.Read()
			ran++
		})

		p.Write(point{1, 99}) // x unchanged, should not trigger
		assert.Equal(t, 1, ran)

		p.Write(point{2, 99})
		assert.Equal(t, 2, ran)
	})
}

func ExampleSignal() {
	count := NewSignal(0)
	fmt.Println(count.Read())

	count.Write(10)
	fmt.Println(count.Read())

	// Output:
	// 0
	// 10
}
