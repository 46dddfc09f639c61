package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ForcesAllKeys(t *testing.T) {
	result := ToMap(Build([]string{"PATH=/usr/bin", "HOME=/home/u"}, ""))

	assert.Equal(t, "true", result[StdioEnabled])
	assert.Equal(t, "/mcp", result[HTTPRootPath])
	assert.Equal(t, "false", result[BannerEnabled])
	assert.Equal(t, "INFO", result[LogLevel])
	assert.Equal(t, "/usr/bin", result["PATH"])
	assert.Equal(t, "/home/u", result["HOME"])
	assert.Len(t, result, 6)
}

func TestBuild_ForcedKeysOverrideInherited(t *testing.T) {
	base := []string{
		StdioEnabled + "=false",
		HTTPRootPath + "=/other",
		BannerEnabled + "=true",
		LogLevel + "=TRACE",
	}
	result := ToMap(Build(base, ""))

	assert.Equal(t, "true", result[StdioEnabled])
	assert.Equal(t, "/mcp", result[HTTPRootPath])
	assert.Equal(t, "false", result[BannerEnabled])
	assert.Equal(t, "INFO", result[LogLevel])
}

func TestBuild_LogLevelOverrideChangesOnlyLogLevel(t *testing.T) {
	base := []string{"A=1", "B=two=2"}
	plain := ToMap(Build(base, ""))
	overridden := ToMap(Build(append(base, LogLevelOverride+"=DEBUG"), ""))

	assert.Equal(t, "DEBUG", overridden[LogLevel])
	delete(overridden, LogLevel)
	delete(overridden, LogLevelOverride)
	delete(plain, LogLevel)
	assert.Equal(t, plain, overridden)
}

func TestBuild_EmptyOverrideFallsBack(t *testing.T) {
	result := ToMap(Build([]string{LogLevelOverride + "="}, "WARN"))
	assert.Equal(t, "WARN", result[LogLevel])
	assert.Equal(t, "", result[LogLevelOverride])
}

func TestBuild_OverrideBeatsConfiguredDefault(t *testing.T) {
	result := ToMap(Build([]string{LogLevelOverride + "=ERROR"}, "WARN"))
	assert.Equal(t, "ERROR", result[LogLevel])
}

func TestBuild_AcceptsAnyValue(t *testing.T) {
	result := ToMap(Build([]string{LogLevelOverride + "=not a level"}, ""))
	assert.Equal(t, "not a level", result[LogLevel])
}

func TestBuild_DoesNotModifyBase(t *testing.T) {
	base := []string{LogLevel + "=TRACE", "KEEP=1"}
	_ = Build(base, "")
	assert.Equal(t, []string{LogLevel + "=TRACE", "KEEP=1"}, base)
}

func TestOverlay_LaterLayersWin(t *testing.T) {
	result := Overlay([]string{"A=base"}, map[string]string{"A": "one", "B": "one"}, map[string]string{"B": "two"})
	assert.Equal(t, []string{"A=one", "B=two"}, result)
}

func TestOverlay_DeterministicOrder(t *testing.T) {
	layer := map[string]string{"Z": "1", "M": "2", "A": "3"}
	first := Overlay(nil, layer)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Overlay(nil, layer))
	}
	assert.Equal(t, []string{"A=3", "M=2", "Z=1"}, first)
}

func TestGetSetUnset(t *testing.T) {
	envs := []string{"A=1", "B=2"}
	value, ok := Get(envs, "A")
	require.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok = Get(envs, "C")
	assert.False(t, ok)

	envs = Set(envs, "A", "3")
	value, _ = Get(envs, "A")
	assert.Equal(t, "3", value)

	envs = Set(envs, "C", "4")
	assert.Equal(t, []string{"A=3", "B=2", "C=4"}, envs)

	envs = Unset(envs, "B")
	_, ok = Get(envs, "B")
	assert.False(t, ok)

	assert.Equal(t, envs, Unset(envs, ""))
}

func TestSet_CollapsesDuplicates(t *testing.T) {
	envs := Set([]string{"A=1", "X=9", "A=2"}, "A", "3")
	assert.Equal(t, []string{"A=3", "X=9"}, envs)
}

func TestSet_PrefixIsExact(t *testing.T) {
	envs := Set([]string{"AB=1"}, "A", "2")
	assert.Equal(t, []string{"AB=1", "A=2"}, envs)
}

func TestToMap_SkipsMalformed(t *testing.T) {
	result := ToMap([]string{"A=1", "garbage", "B=x=y"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, result)
}
