// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stats

import "time"

// Builder accumulates the mandatory and optional fields of a Stats record.
// Build refuses to construct an incomplete record (spec section 4.9).
type Builder struct {
	algName   *string
	algID     *byte
	version   *string
	origLen   *uint64
	procLen   *uint64
	totalDur  *time.Duration
	direction *Direction
	sections  []Section
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) AlgorithmName(name string) *Builder { b.algName = &name; return b }
func (b *Builder) AlgorithmID(id byte) *Builder        { b.algID = &id; return b }
func (b *Builder) Version(v string) *Builder           { b.version = &v; return b }
func (b *Builder) OriginalLen(n uint64) *Builder       { b.origLen = &n; return b }
func (b *Builder) ProcessedLen(n uint64) *Builder      { b.procLen = &n; return b }
func (b *Builder) TotalDuration(d time.Duration) *Builder {
	b.totalDur = &d
	return b
}
func (b *Builder) Direction(d Direction) *Builder { b.direction = &d; return b }

// AddSection appends one named sub-interval timing, preserving call order
// (spec GLOSSARY, "Section timing").
func (b *Builder) AddSection(name string, d time.Duration) *Builder {
	b.sections = append(b.sections, Section{Name: name, Duration: d})
	return b
}

// Build returns the completed record, or a MissingField error naming the
// first mandatory field that was never set.
func (b *Builder) Build() (Stats, error) {
	switch {
	case b.algName == nil:
		return Stats{}, MissingField("algorithm name")
	case b.algID == nil:
		return Stats{}, MissingField("algorithm id")
	case b.version == nil:
		return Stats{}, MissingField("version")
	case b.origLen == nil:
		return Stats{}, MissingField("original length")
	case b.procLen == nil:
		return Stats{}, MissingField("processed length")
	case b.totalDur == nil:
		return Stats{}, MissingField("total duration")
	case b.direction == nil:
		return Stats{}, MissingField("direction")
	}
	return Stats{
		AlgorithmName: *b.algName,
		AlgorithmID:   *b.algID,
		Version:       *b.version,
		OriginalLen:   *b.origLen,
		ProcessedLen:  *b.procLen,
		TotalDuration: *b.totalDur,
		Direction:     *b.direction,
		Sections:      append([]Section(nil), b.sections...),
	}, nil
}
