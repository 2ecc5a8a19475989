package common

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	SOLDecimals = 9  // SOL has 9 decimals (lamports)
	ETHDecimals = 18 // ETH has 18 decimals (wei)
)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(fmt.Sprintf("%d", lamports), SOLDecimals)
}

// WeiToETH converts wei to ETH string without float precision loss.
// Wei amounts exceed uint64, so the input is a big.Int.
func WeiToETH(wei *big.Int) string {
	if wei == nil {
		return "0." + strings.Repeat("0", ETHDecimals)
	}
	return formatWithDecimals(wei.String(), ETHDecimals)
}

// formatWithDecimals converts an integer string to a decimal string by
// inserting a decimal point.
// Example: formatWithDecimals("24981836", 9) = "0.024981836"
func formatWithDecimals(s string, decimals int) string {
	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}
