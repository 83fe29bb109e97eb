// SPDX-License-Identifier: MIT

package bench

import (
	"log/slog"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Platform describes the host the timings were taken on.
type Platform struct {
	GOOS      string
	GOARCH    string
	GoVersion string
	NumCPU    int

	// SIMD features relevant to float64 elementwise loops.
	HasAVX2    bool // x86-64 AVX2 + FMA
	HasAVX512F bool // x86-64 AVX-512 Foundation
	HasASIMD   bool // ARM64 NEON
	HasSVE     bool // ARM64 SVE
}

// DetectPlatform reads the runtime and CPU feature flags.
// Feature flags for a foreign architecture are always false.
func DetectPlatform() Platform {
	return Platform{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		HasAVX2:    cpu.X86.HasAVX2 && cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasASIMD:   cpu.ARM64.HasASIMD,
		HasSVE:     cpu.ARM64.HasSVE,
	}
}

// LogValue implements slog.LogValuer.
func (p Platform) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("os", p.GOOS),
		slog.String("arch", p.GOARCH),
		slog.String("go", p.GoVersion),
		slog.Int("cpus", p.NumCPU),
		slog.Bool("avx2", p.HasAVX2),
		slog.Bool("avx512f", p.HasAVX512F),
		slog.Bool("asimd", p.HasASIMD),
		slog.Bool("sve", p.HasSVE),
	)
}
