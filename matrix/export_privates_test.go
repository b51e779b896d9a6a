// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes unexported kernels to matrix_test only.
var ReducedRowEchelonForm = toReducedRowEchelonForm
