// Package testdoubles provides test doubles (spies, stubs, fakes) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"github.com/rios0rios0/githooks/internal/domain/entities"
	domainRepos "github.com/rios0rios0/githooks/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// SpySourceControlRepository
// ---------------------------------------------------------------------------

// SpySourceControlRepository implements repositories.SourceControlRepository
// as a configurable spy. Configure the response maps for the methods your
// test exercises, then inspect the call-tracking fields.
type SpySourceControlRepository struct {
	// --- Changes ---
	Diffs      map[string]string // path -> diff text
	ChangesErr error
	// spy: paths that were diffed
	DiffedPaths []string

	// --- LastAuthoredYear ---
	AuthoredYears map[string]int // path -> year; absent means not in history
	AuthoredErr   error

	// --- IsStaged ---
	StagedPaths map[string]bool
	StagedErr   error
}

var _ domainRepos.SourceControlRepository = (*SpySourceControlRepository)(nil)

func (it *SpySourceControlRepository) Changes(path string) (string, error) {
	it.DiffedPaths = append(it.DiffedPaths, path)
	if it.ChangesErr != nil {
		return "", it.ChangesErr
	}
	return it.Diffs[path], nil
}

func (it *SpySourceControlRepository) LastAuthoredYear(path string) (int, bool, error) {
	if it.AuthoredErr != nil {
		return 0, false, it.AuthoredErr
	}
	year, ok := it.AuthoredYears[path]
	return year, ok, nil
}

func (it *SpySourceControlRepository) IsStaged(path string) (bool, error) {
	if it.StagedErr != nil {
		return false, it.StagedErr
	}
	return it.StagedPaths[path], nil
}

// ---------------------------------------------------------------------------
// FakeFileRepository
// ---------------------------------------------------------------------------

// FakeFileRepository is an in-memory repositories.FileRepository. Files in
// Unreadable behave like permission or decode failures.
type FakeFileRepository struct {
	Contents   map[string]string
	Unreadable map[string]bool
	// spy: content written per path
	Written map[string]string
}

var _ domainRepos.FileRepository = (*FakeFileRepository)(nil)

func NewFakeFileRepository() *FakeFileRepository {
	return &FakeFileRepository{
		Contents:   make(map[string]string),
		Unreadable: make(map[string]bool),
		Written:    make(map[string]string),
	}
}

func (it *FakeFileRepository) Read(path string) (string, bool) {
	if it.Unreadable[path] {
		return "", false
	}
	content, ok := it.Contents[path]
	return content, ok
}

func (it *FakeFileRepository) Write(path string, content string) bool {
	it.Written[path] = content
	it.Contents[path] = content
	return true
}

func (it *FakeFileRepository) Exists(path string) bool {
	_, ok := it.Contents[path]
	return ok || it.Unreadable[path]
}

// ---------------------------------------------------------------------------
// StubImportParser
// ---------------------------------------------------------------------------

// StubImportParser returns the configured statements for any content.
type StubImportParser struct {
	Statements []entities.ImportStatement
	Err        error
}

var _ domainRepos.ImportParser = (*StubImportParser)(nil)

func (it *StubImportParser) ParseImports(_ string) ([]entities.ImportStatement, error) {
	return it.Statements, it.Err
}

// ---------------------------------------------------------------------------
// StubModuleResolver
// ---------------------------------------------------------------------------

// StubModuleResolver classifies from fixed maps. Names is keyed by
// "module.name".
type StubModuleResolver struct {
	Modules map[string]bool
	Names   map[string]entities.Classification
	// spy: roots passed to SetSearchPaths
	SearchPaths []string
}

var _ domainRepos.ModuleResolver = (*StubModuleResolver)(nil)

func (it *StubModuleResolver) SetSearchPaths(roots []string) {
	it.SearchPaths = roots
}

func (it *StubModuleResolver) ResolveModule(module string) bool {
	return it.Modules[module]
}

func (it *StubModuleResolver) ResolveName(module, name string) entities.Classification {
	return it.Names[module+"."+name]
}
