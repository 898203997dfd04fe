package utils

import (
	"fmt"
	"strings"
)

// FormatINR memformat angka ke format Rupee India, mis. 150000 -> "₹1,50,000.00".
// Grouping India: tiga digit terakhir, lalu kelompok dua digit.
func FormatINR(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := false
	if strings.HasPrefix(integerPart, "-") {
		negative = true
		integerPart = integerPart[1:]
	}

	var groups []string
	if len(integerPart) > 3 {
		groups = append(groups, integerPart[len(integerPart)-3:])
		rest := integerPart[:len(integerPart)-3]
		for len(rest) > 2 {
			groups = append([]string{rest[len(rest)-2:]}, groups...)
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			groups = append([]string{rest}, groups...)
		}
	} else {
		groups = []string{integerPart}
	}

	result := "₹" + strings.Join(groups, ",") + "." + decimalPart
	if negative {
		result = "-" + result
	}
	return result
}
