package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/ginjaninja78/qbo-request-builder", Version: "v1.4.0"},
		Deps: []*debug.Module{
			{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
			{Path: "gopkg.in/yaml.v3", Version: "v3.0.1", Replace: &debug.Module{Path: "example.com/yaml", Version: "v3.0.2"}},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "3f2c1a9d0b8e7f6a"},
			{Key: "vcs.time", Value: "2024-01-31T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
}

func TestNewVersionInfo_FromBuildInfo(t *testing.T) {
	v := newVersionInfo(sampleBuildInfo(), true)

	assert.Equal(t, "v1.4.0", v.Version)
	assert.Equal(t, "github.com/ginjaninja78/qbo-request-builder", v.Module)
	assert.Equal(t, "3f2c1a9", v.Revision)
	assert.True(t, v.Modified)
	assert.Equal(t, "2024-01-31T10:00:00Z", v.Built)
	assert.Equal(t, []string{"github.com/spf13/cobra v1.10.2", "example.com/yaml v3.0.2"}, v.Deps)
}

func TestNewVersionInfo_StampsWin(t *testing.T) {
	oldVersion, oldDate := Version, BuildDate
	defer func() { Version, BuildDate = oldVersion, oldDate }()
	Version, BuildDate = "v2.0.0", "2024-02-01"

	v := newVersionInfo(sampleBuildInfo(), true)
	assert.Equal(t, "v2.0.0", v.Version)
	assert.Equal(t, "2024-02-01", v.Built)
}

func TestNewVersionInfo_NoBuildInfo(t *testing.T) {
	v := newVersionInfo(nil, false)
	assert.Equal(t, "dev", v.Version)

	var out bytes.Buffer
	v.write(&out, true)
	assert.Equal(t, "qbo-convert dev\nOutput:     payload, batch (max 30 items per batch)\n", out.String())
}

func TestVersionInfo_Write(t *testing.T) {
	var out bytes.Buffer
	newVersionInfo(sampleBuildInfo(), true).write(&out, true)

	assert.Equal(t, `qbo-convert v1.4.0
Module:     github.com/ginjaninja78/qbo-request-builder
Revision:   3f2c1a9 (modified)
Built:      2024-01-31T10:00:00Z
Output:     payload, batch (max 30 items per batch)
Dependencies:
  github.com/spf13/cobra v1.10.2
  example.com/yaml v3.0.2
`, out.String())
}
