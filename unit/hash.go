package unit

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns the highwayhash of a unit's fields
func Hash(u *TextUnit) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(u.Position.Line))
	binary.LittleEndian.PutUint64(buf[8:], uint64(u.Position.Column))
	hash.Write([]byte(u.Kind))
	hash.Write([]byte{0})
	hash.Write(buf[:])
	_, err = hash.Write([]byte(u.Text))
	return hash.Sum64(), err
}
