// Package checksum provides content digests for dataset integrity checks.
//
// Two entry points cover the two shapes dataset content arrives in:
//
//   - DigestFile: streams a file through SHA-256 in fixed 64 KiB blocks,
//     so fingerprinting a multi-gigabyte dataset costs the same memory as
//     a one-line file
//   - DigestBytes: hashes content already held in memory (scanner results,
//     test fixtures)
//
// Digests are lowercase hex, byte-for-byte comparable with the sha256sum
// tool and with digests recorded by other toolchains.
//
// # Example Usage
//
//	calc := checksum.New()
//	digest, err := calc.DigestFile("data/traces.jsonl")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(digest)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
