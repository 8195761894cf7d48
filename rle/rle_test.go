// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"bytes"
	"testing"

	"github.com/purgepack/purgepack/container"
	"github.com/purgepack/purgepack/internal/testutil"
)

func payload(t *testing.T, enc []byte, alg container.Algorithm) []byte {
	t.Helper()
	rest, err := container.Expect(enc, alg)
	if err != nil {
		t.Fatalf("container.Expect: %v", err)
	}
	return rest
}

// TestS2 reproduces the RLEv1 end-to-end scenario from the specification.
func TestS2(t *testing.T) {
	in := []byte{65, 65, 65, 66, 66, 67}
	enc, err := CompressV1(in)
	if err != nil {
		t.Fatalf("CompressV1: %v", err)
	}
	got := payload(t, enc, container.RLEv1)
	want := []byte{3, 65, 2, 66, 1, 67}
	if !bytes.Equal(got, want) {
		t.Fatalf("payload = %v, want %v", got, want)
	}
	back, err := DecompressV1(enc)
	if err != nil {
		t.Fatalf("DecompressV1: %v", err)
	}
	if !bytes.Equal(back, in) {
		t.Fatalf("DecompressV1(CompressV1(%v)) = %v", in, back)
	}
}

// TestS3 reproduces the RLEv2 long-run end-to-end scenario from the spec.
func TestS3(t *testing.T) {
	in := []byte{1, 6, 6, 6, 6, 6, 7}
	enc, err := CompressV2(in)
	if err != nil {
		t.Fatalf("CompressV2: %v", err)
	}
	got := payload(t, enc, container.RLEv2)
	want := []byte{1, 0x00, 5, 6, 7}
	if !bytes.Equal(got, want) {
		t.Fatalf("payload = %v, want %v", got, want)
	}
	back, err := DecompressV2(enc)
	if err != nil {
		t.Fatalf("DecompressV2: %v", err)
	}
	if !bytes.Equal(back, in) {
		t.Fatalf("DecompressV2(CompressV2(%v)) = %v", in, back)
	}
}

// TestS4 reproduces the RLEv2 escape-byte end-to-end scenario from the spec.
func TestS4(t *testing.T) {
	in := []byte{0x00, 0x00}
	enc, err := CompressV2(in)
	if err != nil {
		t.Fatalf("CompressV2: %v", err)
	}
	got := payload(t, enc, container.RLEv2)
	want := []byte{0x00, 2, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("payload = %v, want %v", got, want)
	}
	back, err := DecompressV2(enc)
	if err != nil {
		t.Fatalf("DecompressV2: %v", err)
	}
	if !bytes.Equal(back, in) {
		t.Fatalf("DecompressV2(CompressV2(%v)) = %v", in, back)
	}
}

func TestV1EvenLength(t *testing.T) {
	for _, in := range [][]byte{{1}, {1, 2, 3}, bytes.Repeat([]byte{9}, 600)} {
		enc, err := CompressV1(in)
		if err != nil {
			t.Fatalf("CompressV1(%v): %v", in, err)
		}
		payload := payload(t, enc, container.RLEv1)
		if len(payload)%2 != 0 {
			t.Fatalf("CompressV1(%v) payload has odd length %d", in, len(payload))
		}
		if len(enc) > container.HeaderLen+2*len(in) {
			t.Fatalf("CompressV1(%v) length %d exceeds 2*|in|+header", in, len(enc))
		}
	}
}

func TestV2IdentityOnShortRuns(t *testing.T) {
	in := []byte{1, 2, 2, 3, 3, 3, 4, 5, 5}
	enc, err := CompressV2(in)
	if err != nil {
		t.Fatalf("CompressV2: %v", err)
	}
	got := payload(t, enc, container.RLEv2)
	if !bytes.Equal(got, in) {
		t.Fatalf("CompressV2(%v) payload = %v, want identity", in, got)
	}
}

func TestV1DecompressOddLength(t *testing.T) {
	enc := container.Append(nil, container.RLEv1)
	enc = append(enc, 1, 2, 3)
	if _, err := DecompressV1(enc); err != ErrCorrupt {
		t.Fatalf("DecompressV1(odd) = %v, want ErrCorrupt", err)
	}
}

func TestV2DecompressTruncatedEscape(t *testing.T) {
	enc := container.Append(nil, container.RLEv2)
	enc = append(enc, 1, 2, 3, 0x00, 5)
	if _, err := DecompressV2(enc); err != ErrCorrupt {
		t.Fatalf("DecompressV2(truncated escape) = %v, want ErrCorrupt", err)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	enc, err := CompressV1(nil)
	if err != nil || len(enc) != 0 {
		t.Fatalf("CompressV1(nil) = %v, %v; want empty, nil", enc, err)
	}
	enc, err = CompressV2(nil)
	if err != nil || len(enc) != 0 {
		t.Fatalf("CompressV2(nil) = %v, %v; want empty, nil", enc, err)
	}
}

// TestS6 reproduces the auto-selector scenarios from the specification.
func TestS6(t *testing.T) {
	// A pseudo-random 2048-byte sequence with no 0x00 byte and no run longer
	// than 3 should favor v2 (it stays near-identity while v1 doubles size).
	noEsc := make([]byte, 2048)
	x := uint32(0xACE1)
	for i := range noEsc {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b := byte(1 + x%255) // never 0x00
		noEsc[i] = b
	}
	if got := Select(noEsc); got != V2 {
		t.Fatalf("Select(no-escape random) = %v, want v2", got)
	}

	// 100 copies of 0xAA followed by 100 copies of 0xBB, repeated to 2048
	// bytes: every run is long enough that both variants escape it, but
	// v1's 2-byte pair beats v2's 3-byte ESC triplet, so v1 should win.
	var longRuns []byte
	for len(longRuns) < 2048 {
		longRuns = append(longRuns, bytes.Repeat([]byte{0xAA}, 100)...)
		longRuns = append(longRuns, bytes.Repeat([]byte{0xBB}, 100)...)
	}
	longRuns = longRuns[:2048]
	if got := Select(longRuns); got != V1 {
		t.Fatalf("Select(long uniform runs) = %v, want v1", got)
	}
}

// TestDecompressV1HexVector decodes a known-answer wire frame (header plus
// the TestS2 payload) expressed as a hex vector, in the style of
// flate/reader_test.go and bzip2/reader_test.go's table-driven hex fixtures.
func TestDecompressV1HexVector(t *testing.T) {
	enc := testutil.MustDecodeHex("5050434203034102420143")
	want := []byte{65, 65, 65, 66, 66, 67}
	got, err := DecompressV1(enc)
	if err != nil {
		t.Fatalf("DecompressV1: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("DecompressV1(hex vector) = %v, want %v", got, want)
	}
}

func TestAutoDecodesWithChosenVariant(t *testing.T) {
	in := bytes.Repeat([]byte{7}, 50)
	enc, chosen, err := Compress(in)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	back, err := Decompress(enc)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(back, in) {
		t.Fatalf("round-trip via chosen variant %v failed: got %v", chosen, back)
	}
}
