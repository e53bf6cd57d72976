// Copyright 2026 go-fmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fmath provides fast float32 approximations of elementary functions.
//
// Every function works directly on the IEEE-754 bit pattern of its argument:
// an exponent/mantissa manipulation gives a cheap first estimate which is then
// refined with a fixed number of Newton-Raphson steps or a short polynomial.
// The iteration counts are fixed, so every call has the same latency.
//
// None of the functions validate their input. Arguments outside a function's
// documented domain (negative values for Sqrt or Log, |x| > 1 for Asin, very
// large values for Exp) produce unspecified results rather than NaN or a
// panic. Callers that need IEEE-exact behaviour should use the standard
// library math package instead.
//
// Accuracy, measured against the standard library over the documented domain:
//
//	Sqrt, RSqrt, Cbrt   relative error < 1e-4
//	Log                 absolute error < 1e-4 for x in [1e-3, 1e3]
//	Exp                 relative error < 1e-4 for |x| <= 20
//	Sin, Cos            absolute error < 1e-4 for |x| <= 2*Pi
//	Tan                 relative error < 1e-3 for |x| <= 1.4
//	Asin                absolute error < 1e-2 for |x| <= 0.985
//	Atan                absolute error < 2e-3 for |x| <= 1
//
// Run cmd/fmatherr to reproduce these figures on the current machine.
package fmath
