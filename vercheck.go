package g2h

import (
	"runtime/debug"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

// Minimum versions of the runtime dependencies the generated code is written
// against. The check is advisory: a mismatch is reported so the build log
// explains a later compile failure, but generation proceeds.
var pinnedDeps = []struct {
	path string
	min  string
}{
	{"google.golang.org/grpc", "v1.40.0"},
	{"github.com/gorilla/mux", "v1.8.0"},
	{"google.golang.org/protobuf", "v1.28.0"},
}

// CheckDeps compares the binary's build info against the pinned minimum
// versions and logs a warning per absent or out-of-date dependency.
func CheckDeps(log *zap.Logger) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	CheckDepsInfo(log, bi)
}

// CheckDepsInfo is CheckDeps with injectable build info, for tests.
func CheckDepsInfo(log *zap.Logger, bi *debug.BuildInfo) {
	found := map[string]string{}
	for _, dep := range bi.Deps {
		d := dep
		if d.Replace != nil {
			d = d.Replace
		}
		found[d.Path] = d.Version
	}
	for _, pin := range pinnedDeps {
		ver, ok := found[pin.path]
		if !ok {
			log.Warn("expected dependency is absent from build",
				zap.String("dependency", pin.path),
				zap.String("minimum", pin.min))
			continue
		}
		if semver.IsValid(ver) && semver.Compare(ver, pin.min) < 0 {
			log.Warn("dependency is older than the version generated code targets",
				zap.String("dependency", pin.path),
				zap.String("minimum", pin.min),
				zap.String("found", ver))
		}
	}
}
