package g2h

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func buildInfo(deps ...*debug.Module) *debug.BuildInfo {
	return &debug.BuildInfo{Deps: deps}
}

func TestCheckDepsInfo(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	CheckDepsInfo(log, buildInfo(
		&debug.Module{Path: "google.golang.org/grpc", Version: "v1.64.0"},
		&debug.Module{Path: "github.com/gorilla/mux", Version: "v1.8.1"},
		&debug.Module{Path: "google.golang.org/protobuf", Version: "v1.34.1"},
	))
	assert.Equal(t, 0, logs.Len(), "up-to-date deps must not warn")
}

func TestCheckDepsInfoOutdated(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	CheckDepsInfo(log, buildInfo(
		&debug.Module{Path: "google.golang.org/grpc", Version: "v1.26.0"},
		&debug.Module{Path: "github.com/gorilla/mux", Version: "v1.8.1"},
		&debug.Module{Path: "google.golang.org/protobuf", Version: "v1.34.1"},
	))
	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "older than")
}

func TestCheckDepsInfoAbsent(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	CheckDepsInfo(log, buildInfo())
	assert.Equal(t, len(pinnedDeps), logs.Len())
}

func TestCheckDepsInfoReplace(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	CheckDepsInfo(log, buildInfo(
		&debug.Module{
			Path:    "google.golang.org/grpc",
			Version: "v1.26.0",
			Replace: &debug.Module{Path: "google.golang.org/grpc", Version: "v1.64.0"},
		},
		&debug.Module{Path: "github.com/gorilla/mux", Version: "v1.8.1"},
		&debug.Module{Path: "google.golang.org/protobuf", Version: "v1.34.1"},
	))
	assert.Equal(t, 0, logs.Len(), "replacement version wins")
}
