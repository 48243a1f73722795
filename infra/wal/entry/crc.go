package entry

import "hash/crc32"

func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

func CRC32Valid(b []byte, sum uint32) bool {
	return crc32.ChecksumIEEE(b) == sum
}
