package reversi

import (
	"fmt"
	"strings"
)

// FieldToIndex converts a field notation (e.g. "a1", "h8") to an index (0-63).
func FieldToIndex(field string) (int, error) {
	if len(field) != 2 {
		return 0, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return 0, fmt.Errorf("invalid field: %q", field)
	}

	col := int(field[0] - 'a')
	row := int(field[1] - '1')
	return row*8 + col, nil
}

// IndexToField converts an index (0-63) to field notation. It is the inverse
// of FieldToIndex.
func IndexToField(index int) (string, error) {
	if index < 0 || index >= 64 {
		return "", fmt.Errorf("invalid index: %d", index)
	}

	col := byte('a' + index%8)
	row := byte('1' + index/8)
	return string([]byte{col, row}), nil
}
