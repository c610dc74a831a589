package types

import (
	"strconv"
	"strings"
)

// Num is a numeric field that upstream stat feeds serialize inconsistently,
// sometimes as a JSON number and sometimes as a quoted string ("23.5").
// Unparseable values decode to 0 rather than failing the whole record.
type Num float64

func (n *Num) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Num(f)
	return nil
}

// String renders the shortest decimal form ("3", "23.5").
func (n Num) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
