// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringspan

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent [Shared] stress tests: the detector does
// not observe the happens-before edge of the atomix lock word and reports
// the guarded storage accesses as races.
const RaceEnabled = true
