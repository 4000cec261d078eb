// Package hash provides hashing utilities for data integrity.
//
// All checksums in bibgo use CRC32-Castagnoli (CRC32C), which is hardware
// accelerated on x86 (SSE4.2) and ARM (CRC extension) and matches the
// checksum algorithm S3 validates on upload.
//
// For one-shot checksums:
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
