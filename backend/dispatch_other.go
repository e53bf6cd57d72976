//go:build !amd64 && !arm64

package backend

func init() {
	// Other architectures run the Base* kernels.
	setLevel(DispatchScalar)
}
