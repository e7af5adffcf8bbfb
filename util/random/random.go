// Package random generates random strings for secrets.
package random

import (
	"crypto/rand"
	"math/big"
)

var allSeq [62]rune

func init() {
	i := 0
	for r := '0'; r <= '9'; r++ {
		allSeq[i] = r
		i++
	}
	for r := 'a'; r <= 'z'; r++ {
		allSeq[i] = r
		i++
	}
	for r := 'A'; r <= 'Z'; r++ {
		allSeq[i] = r
		i++
	}
}

// Seq generates a random alphanumeric string of length n.
func Seq(n int) string {
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(allSeq))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		runes[i] = allSeq[idx.Int64()]
	}
	return string(runes)
}
