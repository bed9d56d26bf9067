package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("runs once immediately and again on dependency change", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			count.Read()
			runs++
		})
		assert.Equal(t, 1, runs)
		count.Write(1)
		assert.Equal(t, 2, runs)
		count.Write(2)
		assert.Equal(t, 3, runs)
	})

	t.Run("re-tracks dependencies on every run", func(t *testing.T) {
		runs := 0
		useA := NewSignal(true)
		a := NewSignal(1)
		b := NewSignal(100)
		NewEffect(func() {
			if useA.Read() {
				a.Read()
			} else {
				b.Read()
			}
			runs++
		})
		assert.Equal(t, 1, runs)

		useA.Write(false)
		assert.Equal(t, 2, runs)

		a.Write(999) // no longer a dependency
		assert.Equal(t, 2, runs)

		b.Write(200)
		assert.Equal(t, 3, runs)
	})

	t.Run("stop prevents further runs", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)
		e := NewEffect(func() {
			count.Read()
			runs++
		})
		e.Stop()
		count.Write(1)
		assert.Equal(t, 1, runs)
	})

	t.Run("nested effect disposed and re-created on every parent run", func(t *testing.T) {
		log := []string{}
		outer := NewSignal(0)
		inner := NewSignal(0)

		NewEffect(func() {
			outer.Read()
			log = append(log, "outer")
			NewEffect(func() {
				inner.Read()
				log = append(log, "inner")
			})
		})
		assert.Equal(t, []string{"outer", "inner"}, log)

		log = nil
		inner.Write(1)
		assert.Equal(t, []string{"inner"}, log)

		log = nil
		outer.Write(1)
		assert.Equal(t, []string{"outer", "inner"}, log)
	})

	t.Run("OnCleanup runs before the next execution and on stop", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)
		e := NewEffect(func() {
			n := count.Read()
			OnCleanup(func() { log = append(log, fmt.Sprintf("cleanup %d", n)) })
			log = append(log, fmt.Sprintf("run %d", n))
		})
		assert.Equal(t, []string{"run 0"}, log)

		log = nil
		count.Write(1)
		assert.Equal(t, []string{"cleanup 0", "run 1"}, log)

		log = nil
		e.Stop()
		assert.Equal(t, []string{"cleanup 1"}, log)
	})

	t.Run("panic in body is routed to the error sink and effect survives", func(t *testing.T) {
		var caught error
		SetErrorSink(func(err error) { caught = err })
		defer SetErrorSink(nil)

		runs := 0
		trigger := NewSignal(0)
		NewEffect(func() {
			runs++
			if trigger.Read() == 1 {
				panic("boom")
			}
		})
		trigger.Write(1)

		assert.Equal(t, 2, runs)
		var ee *EffectError
		assert.ErrorAs(t, caught, &ee)
	})
}

func ExampleEffect() {
	count := NewSignal(0)
	NewEffect(func() {
		fmt.Println("count is", count.Read())
	})
	count.Write(1)
	count.Write(2)
	// Output:
	// count is 0
	// count is 1
	// count is 2
}

func ExampleEffect_nested() {
	outer := NewSignal(0)
	inner := NewSignal(0)
	NewEffect(func() {
		outer.Read()
		fmt.Println("outer")
		NewEffect(func() {
			inner.Read()
			fmt.Println("inner")
			OnCleanup(func() { fmt.Println("cleanup inner") })
		})
		OnCleanup(func() { fmt.Println("cleanup outer") })
	})
	outer.Write(1)
	// Output:
	// outer
	// inner
	// cleanup inner
	// cleanup outer
	// outer
	// inner
}
