package graph

import (
	"strings"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a 64-bit highwayhash fingerprint of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint hashes declaration text with whitespace runs collapsed, reindented declarations keep their fingerprint
func Fingerprint(text string) (uint64, error) {
	return Hash([]byte(strings.Join(strings.Fields(text), " ")))
}
