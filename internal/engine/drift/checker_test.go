package drift_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ontocheck/internal/adapters/fs"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports/mocks"
	"go.trai.ch/ontocheck/internal/engine/drift"
	"go.uber.org/mock/gomock"
)

func newChecker(t *testing.T) *drift.Checker {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return drift.NewChecker(domain.DefaultConfig(t.TempDir()), fs.NewHasher(), fs.NewDiffer(), log)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCheck_IdenticalSnapshots(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "ex:Dataset a owl:Class .\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "old content\n")
	writeFile(t, filepath.Join(tmpDir, "2.0", "onto.ttl"), "ex:Dataset a owl:Class .\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	assert.True(t, report.Empty())
}

func TestCheck_SemverOrderingNotLexical(t *testing.T) {
	t.Parallel()

	// Lexical ordering would pick "2.3"; version ordering must pick "10.0".
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "newest\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "oldest\n")
	writeFile(t, filepath.Join(tmpDir, "2.3", "onto.ttl"), "middle\n")
	writeFile(t, filepath.Join(tmpDir, "10.0", "onto.ttl"), "newest\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	assert.True(t, report.Empty())
}

func TestCheck_OnlyInLatest(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "same\n")
	writeFile(t, filepath.Join(tmpDir, "latest", "extra.ttl"), "stray\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "same\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "Only in latest/")
	assert.Contains(t, report.Entries()[0], "extra.ttl")
}

func TestCheck_OnlyInVersion(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "same\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "same\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "forgotten.ttl"), "left behind\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "Only in 1.0/")
	assert.Contains(t, report.Entries()[0], "forgotten.ttl")
}

func TestCheck_DifferingContent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	left := filepath.Join(tmpDir, "latest", "onto.ttl")
	right := filepath.Join(tmpDir, "2.0", "onto.ttl")
	writeFile(t, left, "line one\nline two\n")
	writeFile(t, right, "line one\nline changed\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	// The unified diff is logged, not put in the report.
	log.EXPECT().Warn(gomock.Regex(`-line two`)).Times(1)

	checker := drift.NewChecker(domain.DefaultConfig(tmpDir), fs.NewHasher(), fs.NewDiffer(), log)

	report := domain.NewReport()
	checker.Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "files are different")
	assert.Contains(t, report.Entries()[0], left)
	assert.Contains(t, report.Entries()[0], right)
}

func TestCheck_NestedDirectoryDrift(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	left := filepath.Join(tmpDir, "latest", "sub", "onto.ttl")
	right := filepath.Join(tmpDir, "1.0", "sub", "onto.ttl")
	writeFile(t, left, "new\n")
	writeFile(t, right, "old\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "files are different")
	assert.Contains(t, report.Entries()[0], left)
	assert.Contains(t, report.Entries()[0], right)
}

func TestCheck_NestedOnlyInLatest(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "sub", "onto.ttl"), "same\n")
	writeFile(t, filepath.Join(tmpDir, "latest", "sub", "extra.ttl"), "stray\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "sub", "onto.ttl"), "same\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "Only in "+filepath.Join("latest", "sub")+"/")
	assert.Contains(t, report.Entries()[0], "extra.ttl")
}

func TestCheck_DirectoryVersusFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "sub", "onto.ttl"), "nested\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "sub"), "flat\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "files are different")
	assert.Contains(t, report.Entries()[0], filepath.Join(tmpDir, "latest", "sub"))
}

func TestCheck_NoVersionedDirectories(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "content\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "No versioned directories found")
}

func TestCheck_LatestMissing(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "content\n")

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "can't find")
	assert.Contains(t, report.Entries()[0], filepath.Join(tmpDir, "latest"))
}

func TestCheck_SkipsNonVersionDirectories(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "same\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "same\n")
	writeFile(t, filepath.Join(tmpDir, "drafts", "onto.ttl"), "scratch\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Regex(`drafts`)).Times(1)

	checker := drift.NewChecker(domain.DefaultConfig(tmpDir), fs.NewHasher(), fs.NewDiffer(), log)

	report := domain.NewReport()
	checker.Check(tmpDir, report)

	assert.True(t, report.Empty())
}

func TestCheck_ReportIsAppendOnly(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "content\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "content\n")

	report := domain.NewReport()
	report.Add("pre-existing finding")

	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Equal(t, "pre-existing finding", report.Entries()[0])
}

func TestCheck_MissingOntologyRoot(t *testing.T) {
	t.Parallel()

	report := domain.NewReport()
	newChecker(t).Check(filepath.Join(t.TempDir(), "nope"), report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "can't read")
}

func TestCheck_UnlistableVersionDirectory(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "latest", "onto.ttl"), "content\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "content\n")
	versionDir := filepath.Join(tmpDir, "1.0")
	require.NoError(t, os.Chmod(versionDir, 0o100))
	t.Cleanup(func() { _ = os.Chmod(versionDir, 0o700) })

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "can't find")
	assert.Contains(t, report.Entries()[0], versionDir)
}

func TestCheck_UnreadableCommonFile(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	left := filepath.Join(tmpDir, "latest", "onto.ttl")
	writeFile(t, left, "content\n")
	writeFile(t, filepath.Join(tmpDir, "1.0", "onto.ttl"), "content!\n")
	require.NoError(t, os.Chmod(left, 0o000))
	t.Cleanup(func() { _ = os.Chmod(left, 0o600) })

	report := domain.NewReport()
	newChecker(t).Check(tmpDir, report)

	require.Len(t, report.Entries(), 1)
	assert.Contains(t, report.Entries()[0], "couldn't check these files")
	assert.Contains(t, report.Entries()[0], "onto.ttl")
}
