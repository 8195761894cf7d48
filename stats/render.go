// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/dsnet/golib/strconv"
)

// formatBytes renders n with strconv.FormatPrefix using base-1024 prefixes
// and two decimals, the same call internal/tool/bench/common.go's getName
// uses to render byte counts. Values below 1024 go through the same call;
// there is no separate formatting path for them.
func formatBytes(n uint64) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
}

// Render produces the deterministic, two-decimal-field text report of a
// Stats record (spec section 4.9).
func (s Stats) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "algorithm:    %s (id=0x%02x, version=%s)\n", s.AlgorithmName, s.AlgorithmID, s.Version)
	fmt.Fprintf(&b, "direction:    %s\n", s.Direction)
	fmt.Fprintf(&b, "original:     %s (%d bytes)\n", formatBytes(s.OriginalLen), s.OriginalLen)
	fmt.Fprintf(&b, "processed:    %s (%d bytes)\n", formatBytes(s.ProcessedLen), s.ProcessedLen)
	fmt.Fprintf(&b, "duration:     %s\n", s.TotalDuration)
	fmt.Fprintf(&b, "ratio:        %.2f\n", s.Ratio())

	speed := s.SpeedMiBPerSec()
	if math.IsInf(speed, 1) {
		fmt.Fprintf(&b, "speed:        Inf MiB/s\n")
	} else {
		fmt.Fprintf(&b, "speed:        %.2f MiB/s\n", speed)
	}

	diff := s.RawByteDifference()
	sign := ""
	if diff < 0 {
		sign = "-"
		diff = -diff
	}
	fmt.Fprintf(&b, "delta:        %s%s\n", sign, formatBytes(uint64(diff)))
	fmt.Fprintf(&b, "change:       %.2f%%\n", s.PercentChange())

	if len(s.Sections) > 0 {
		fmt.Fprintf(&b, "sections:\n")
		for _, sec := range s.Sections {
			fmt.Fprintf(&b, "  %-12s %s\n", sec.Name+":", sec.Duration)
		}
	}

	return b.String()
}
