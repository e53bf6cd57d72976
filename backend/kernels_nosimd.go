//go:build !amd64 || !goexperiment.simd

package backend

// installArch has no intrinsic kernels to add without GOEXPERIMENT=simd.
func installArch(DispatchLevel) {}
