package appconfig

import (
	"fmt"
	"strconv"
	"strings"
)

type ByteSize int64

var byteSizeUnits = []struct {
	suffix string
	factor int64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"B", 1},
}

func (s *ByteSize) Decode(value string) error {
	value = strings.TrimSpace(value)
	factor := int64(1)
	for _, unit := range byteSizeUnits {
		if strings.HasSuffix(value, unit.suffix) {
			value = strings.TrimSpace(strings.TrimSuffix(value, unit.suffix))
			factor = unit.factor
			break
		}
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid byte size: expect an integer with an optional B/KiB/MiB/GiB suffix, but got: %s (%w)", value, err)
	}
	if n <= 0 {
		return fmt.Errorf("invalid byte size: expect a positive size, but got: %d", n)
	}
	*s = ByteSize(n * factor)
	return nil
}
