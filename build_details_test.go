package typedpath

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBuild sets the ldflags variables for the duration of a test.
func withBuild(t *testing.T, v, c, bt string) {
	t.Helper()
	savedVersion, savedCommit, savedBuildTime := version, commit, buildTime
	version, commit, buildTime = v, c, bt
	t.Cleanup(func() {
		version, commit, buildTime = savedVersion, savedCommit, savedBuildTime
	})
}

func TestBuildDetails_Defaults(t *testing.T) {
	withBuild(t, "dev", "unknown", "unknown")

	assert.Equal(t, "dev", Version())
	assert.Equal(t, "unknown", Commit())
	assert.Equal(t, "unknown", BuildTime())
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestBuildDetails_Release(t *testing.T) {
	withBuild(t, "0.3.1", "4f2c9ab", "2026-10-01T12:00:00Z")

	assert.Equal(t, "0.3.1", Version())
	assert.Equal(t, "4f2c9ab", Commit())
	assert.Equal(t, "2026-10-01T12:00:00Z", BuildTime())
}

func TestBuildInfo(t *testing.T) {
	withBuild(t, "0.3.1", "4f2c9ab", "2026-10-01T12:00:00Z")

	info := BuildInfo()
	require.True(t, strings.HasSuffix(info, "\n"), "version -v prints BuildInfo as is")

	lines := strings.Split(strings.TrimSuffix(info, "\n"), "\n")
	assert.Equal(t, []string{
		"Version: 0.3.1",
		"Commit: 4f2c9ab",
		"Build Time: 2026-10-01T12:00:00Z",
		"Go Version: " + runtime.Version(),
	}, lines)
}

func BenchmarkBuildInfo(b *testing.B) {
	for b.Loop() {
		_ = BuildInfo()
	}
}
