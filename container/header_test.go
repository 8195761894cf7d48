// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package container

import "testing"

func TestAppendParse(t *testing.T) {
	var vectors = []struct {
		desc string
		alg  Algorithm
	}{
		{"delta", Delta},
		{"huffman", Huffman},
		{"rle v1", RLEv1},
		{"rle v2", RLEv2},
	}
	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			buf := Append(nil, v.alg)
			if len(buf) != HeaderLen {
				t.Fatalf("Append: got %d bytes, want %d", len(buf), HeaderLen)
			}
			rest, err := Expect(buf, v.alg)
			if err != nil {
				t.Fatalf("Expect: unexpected error: %v", err)
			}
			if len(rest) != 0 {
				t.Fatalf("Expect: rest = %v, want empty", rest)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, _, err := Parse(nil); err != ErrCorrupt {
		t.Errorf("Parse(nil) = %v, want ErrCorrupt", err)
	}
	if _, _, err := Parse([]byte("PPC")); err != ErrCorrupt {
		t.Errorf("Parse(short) = %v, want ErrCorrupt", err)
	}
	bad := append([]byte("XXCB"), byte(Delta))
	if _, _, err := Parse(bad); err != ErrCorrupt {
		t.Errorf("Parse(bad magic) = %v, want ErrCorrupt", err)
	}
	buf := Append(nil, Delta)
	if _, err := Expect(buf, Huffman); err != ErrUnsupported {
		t.Errorf("Expect(wrong alg) = %v, want ErrUnsupported", err)
	}
}
