package argdef

import (
	"encoding"

	"github.com/dustin/go-humanize"
)

// A nice builtin type that will parse human readable byte quantities to
// int64. For example 100GB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ encoding.TextUnmarshaler = (*Bytes)(nil)

func (me *Bytes) UnmarshalText(text []byte) error {
	ui64, err := humanize.ParseBytes(string(text))
	if err != nil {
		return err
	}
	*me = Bytes(ui64)
	return nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
