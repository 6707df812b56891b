// Package mathx provides integer and number-theory helpers for the
// calculator engine.
package mathx

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxFactorial is the largest n for which n! is representable as a float64.
const MaxFactorial = 170

// Factorial returns n! as a float64. n must be in [0, MaxFactorial].
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative number %d", n)
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("factorial of %d exceeds float64 range", n)
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

// Totient returns Euler's totient of n, the count of integers in [1, n]
// coprime with n. n must be positive.
func Totient(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("totient requires a positive integer, got %d", n)
	}

	result := n
	temp := n
	for p := 2; p*p <= temp; p++ {
		if temp%p != 0 {
			continue
		}
		for temp%p == 0 {
			temp /= p
		}
		result -= result / p
	}
	if temp > 1 {
		result -= result / temp
	}
	return result, nil
}

// PrimeCount returns the number of primes less than or equal to n using a
// sieve of Eratosthenes. n must be non-negative; values below 2 yield 0.
func PrimeCount(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("prime count requires a non-negative integer, got %d", n)
	}
	if n < 2 {
		return 0, nil
	}

	composite := make([]bool, n+1)
	count := 0
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return count, nil
}

// Factorize returns the prime factorization of n rendered as "p1^e1 x p2^e2"
// with exponent 1 omitted, for example "2^3 x 3" for 24. Negative values are
// factored by absolute value; values below 2 are returned as-is.
func Factorize(n int) string {
	if n < 0 {
		n = -n
	}
	if n < 2 {
		return strconv.Itoa(n)
	}

	var parts []string
	temp := n
	for p := 2; p*p <= temp; p++ {
		if temp%p != 0 {
			continue
		}
		exp := 0
		for temp%p == 0 {
			temp /= p
			exp++
		}
		parts = append(parts, formatFactor(p, exp))
	}
	if temp > 1 {
		parts = append(parts, formatFactor(temp, 1))
	}
	return strings.Join(parts, " x ")
}

func formatFactor(prime, exp int) string {
	if exp == 1 {
		return strconv.Itoa(prime)
	}
	return strconv.Itoa(prime) + "^" + strconv.Itoa(exp)
}
