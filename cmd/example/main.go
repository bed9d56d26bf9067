package main

import (
	"fmt"
	"time"

	"github.com/graphwire/reactive"
)

func main() {
	reactive.NewScope(func() {
		a := reactive.NewSignal(1)
		b := reactive.NewSignal(2)

		sum := reactive.Memo(func() int {
			result := a.Read() + b.Read()
			fmt.Println("  [COMPUTED] sum:", result)
			return result
		})

		reactive.NewEffect(func() {
			fmt.Println("  [EFFECT] sum is:", sum.Read())
		})

		fmt.Println("\nUpdating both a and b in a batch...")
		reactive.Batch(func() {
			a.Write(10)
			b.Write(20)
		})

		fmt.Println("\nsum recomputes once per batch, not once per write (30)")
	})

	time.Sleep(1 * time.Second)
}
