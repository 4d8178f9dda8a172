package handlers

import "strconv"

const internalServerError = "Internal Server Error"

// parseID parses a positive numeric path parameter.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
