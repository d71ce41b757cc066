package walk_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/dirkit/internal/walk"
)

func TestNewExcludes_DropsBlankNames(t *testing.T) {
	set := walk.NewExcludes("", "  ", "node_modules", "'.next'")

	assert.Len(t, set, 2)
	assert.True(t, set.Match("node_modules"))
	assert.True(t, set.Match(".next"))
}

func TestExcludes_MatchesBaseNameOnly(t *testing.T) {
	set := walk.NewExcludes("build")

	assert.True(t, set.Match("build"))
	assert.False(t, set.Match("builds"))
	assert.False(t, set.Match("src/build"))
}

func TestExcludes_CaseFollowsHost(t *testing.T) {
	set := walk.NewExcludes("Build")

	switch runtime.GOOS {
	case "windows", "darwin":
		assert.True(t, set.Match("build"))
	default:
		assert.False(t, set.Match("build"))
	}
}

func TestExcludes_NilMatchesNothing(t *testing.T) {
	var set walk.Excludes

	assert.False(t, set.Match("node_modules"))
	assert.Empty(t, set.Names())
}
