// package kata collects small self-contained programming exercises:
// pure functions with no shared state and no I/O, each paired with a
// demonstration and tests.
package kata

// Fibonacci returns the nth number in the Fibonacci sequence using the
// textbook recursive definition. Negative n yields 0. Call count grows
// exponentially with n, so values much beyond 30 take a long time.
func Fibonacci(n int) int {
	if n <= 0 {
		return 0
	} else if n == 1 {
		return 1
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
