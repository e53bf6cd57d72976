package fmath

// Func is a scalar float32 function such as Sqrt or Sin.
type Func func(float32) float32

// Transform applies fn to each element of input, storing results in output.
// Only min(len(input), len(output)) elements are processed.
//
// Example usage:
//
//	Transform(input, output, func(x float32) float32 { return x*x + x })
func Transform(input, output []float32, fn Func) {
	n := min(len(input), len(output))
	i := 0
	for ; i+4 <= n; i += 4 {
		output[i] = fn(input[i])
		output[i+1] = fn(input[i+1])
		output[i+2] = fn(input[i+2])
		output[i+3] = fn(input[i+3])
	}
	for ; i < n; i++ {
		output[i] = fn(input[i])
	}
}

// SqrtTransform applies Sqrt to each element.
// Caller must ensure len(output) >= len(input).
func SqrtTransform(input, output []float32) { Transform(input, output, Sqrt) }

// RSqrtTransform applies RSqrt to each element.
func RSqrtTransform(input, output []float32) { Transform(input, output, RSqrt) }

// ExpTransform applies Exp to each element.
func ExpTransform(input, output []float32) { Transform(input, output, Exp) }

// LogTransform applies Log to each element.
func LogTransform(input, output []float32) { Transform(input, output, Log) }

// SinTransform applies Sin to each element.
func SinTransform(input, output []float32) { Transform(input, output, Sin) }

// CosTransform applies Cos to each element.
func CosTransform(input, output []float32) { Transform(input, output, Cos) }
