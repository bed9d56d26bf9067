package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("coalesces multiple writes into one effect run", func(t *testing.T) {
		runs := 0
		a := NewSignal(1)
		b := NewSignal(2)
		NewEffect(func() {
			a.Read()
			b.Read()
			runs++
		})
		assert.Equal(t, 1, runs)

		Batch(func() {
			a.Write(10)
			b.Write(20)
		})
		assert.Equal(t, 2, runs)
	})

	t.Run("effects see the final value of each signal, not intermediate writes", func(t *testing.T) {
		var seen int
		count := NewSignal(0)
		NewEffect(func() {
			seen = count.Read()
		})

		Batch(func() {
			count.Write(1)
			count.Write(2)
			count.Write(3)
		})
		assert.Equal(t, 3, seen)
	})

	t.Run("nested batches only drain at the outermost exit", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			count.Read()
			runs++
		})

		Batch(func() {
			Batch(func() {
				count.Write(1)
			})
			assert.Equal(t, 1, runs, "inner batch exit must not drain")
			count.Write(2)
		})
		assert.Equal(t, 2, runs)
	})

	t.Run("drains pending effects even when fn panics", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			count.Read()
			runs++
		})

		assert.Panics(t, func() {
			Batch(func() {
				count.Write(1)
				panic("boom")
			})
		})
		assert.Equal(t, 2, runs)
	})
}

func ExampleBatch() {
	a := NewSignal(1)
	b := NewSignal(2)
	NewEffect(func() {
		fmt.Println("sum:", a.Read()+b.Read())
	})
	Batch(func() {
		a.Write(10)
		b.Write(20)
	})
	// Output:
	// sum: 3
	// sum: 30
}
