// Command kata prints the demonstration output of each exercise for
// fixed sample inputs.
package main

import (
	"fmt"

	"github.com/gokata/kata"
)

func main() {
	n := 10 // Change this value to compute a different Fibonacci number
	fmt.Printf("The %dth Fibonacci number is: %d\n", n, kata.Fibonacci(n))

	fmt.Println(kata.Reverse("hello"))

	input := "Hello, World!"
	fmt.Printf("Original: %s\n", input)
	fmt.Printf("Reversed: %s\n", kata.Reverse(input))
}
