package value

import "strconv"

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
