// Package archive maintains an optional compressed mirror of sealed
// RawLog files, so a capture session's raw binary logs can be kept
// around for cold storage without consuming their uncompressed size.
package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// MirrorSuffix is appended to a RawLog's path to name its compressed
// mirror.
const MirrorSuffix = ".zst"

// Mirror compresses the RawLog file at path into a sibling file with
// MirrorSuffix appended, leaving the original untouched. It returns the
// mirror's path.
func Mirror(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("archive: open %s: %w", path, err)
	}
	defer src.Close()

	destPath := path + MirrorSuffix
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("archive: create %s: %w", destPath, err)
	}
	defer dest.Close()

	enc, err := zstd.NewWriter(dest)
	if err != nil {
		return "", fmt.Errorf("archive: new zstd writer: %w", err)
	}

	if _, err := io.Copy(enc, src); err != nil {
		enc.Close()
		return "", fmt.Errorf("archive: compress %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("archive: finalize zstd stream: %w", err)
	}
	return destPath, nil
}

// Restore decompresses a mirror file produced by Mirror back into raw
// bytes, writing them to destPath.
func Restore(mirrorPath, destPath string) error {
	src, err := os.Open(mirrorPath)
	if err != nil {
		return fmt.Errorf("archive: open %s: %w", mirrorPath, err)
	}
	defer src.Close()

	dec, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("archive: new zstd reader: %w", err)
	}
	defer dec.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", destPath, err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, dec); err != nil {
		return fmt.Errorf("archive: decompress %s: %w", mirrorPath, err)
	}
	return nil
}
