package fsutils

import "strconv"

var sizeUnits = [...]string{"KB", "MB", "GB", "TB"}

// GetSizeShortText formats size in bytes with the largest unit up to TB
// that keeps the value at or above 1, rounding to the nearest integer.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	exp, div := 0, int64(unit)
	for exp < len(sizeUnits)-1 && size/div >= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
