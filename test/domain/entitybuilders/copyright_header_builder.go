package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// CopyrightHeaderBuilder helps create test headers with a fluent interface.
type CopyrightHeaderBuilder struct {
	*testkit.BaseBuilder
	owner      string
	firstYear  int
	secondYear int
}

// NewCopyrightHeaderBuilder creates a new header builder with sensible defaults.
func NewCopyrightHeaderBuilder() *CopyrightHeaderBuilder {
	return &CopyrightHeaderBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		owner:       "test-owner",
		firstYear:   2020,
	}
}

// WithOwner sets the owner embedded in the header text.
func (b *CopyrightHeaderBuilder) WithOwner(owner string) *CopyrightHeaderBuilder {
	b.owner = owner
	return b
}

// WithFirstYear sets the first year.
func (b *CopyrightHeaderBuilder) WithFirstYear(year int) *CopyrightHeaderBuilder {
	b.firstYear = year
	return b
}

// WithSecondYear sets the second year of the range form.
func (b *CopyrightHeaderBuilder) WithSecondYear(year int) *CopyrightHeaderBuilder {
	b.secondYear = year
	return b
}

// Build creates the header (satisfies testkit.Builder interface).
func (b *CopyrightHeaderBuilder) Build() interface{} {
	return b.BuildCopyrightHeader()
}

// BuildCopyrightHeader creates the header with a concrete return type.
func (b *CopyrightHeaderBuilder) BuildCopyrightHeader() entities.CopyrightHeader {
	years := fmt.Sprintf("%d", b.firstYear)
	if b.secondYear != 0 {
		years = fmt.Sprintf("%d, %d", b.firstYear, b.secondYear)
	}
	return entities.CopyrightHeader{
		Text:       fmt.Sprintf("Copyright (c) %s by %s", years, b.owner),
		FirstYear:  b.firstYear,
		SecondYear: b.secondYear,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CopyrightHeaderBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.owner = "test-owner"
	b.firstYear = 2020
	b.secondYear = 0
	return b
}

// Clone creates a deep copy of the CopyrightHeaderBuilder.
func (b *CopyrightHeaderBuilder) Clone() testkit.Builder {
	return &CopyrightHeaderBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		owner:       b.owner,
		firstYear:   b.firstYear,
		secondYear:  b.secondYear,
	}
}
