package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Pair is an (x, y) coordinate or a (start, end) window on the wire.
// Decoding fails unless exactly two numbers are present.
type Pair [2]float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != 2 {
		return fmt.Errorf("%w: expected a pair of numbers, got %s", ErrMalformed, data)
	}
	p[0], p[1] = vals[0], vals[1]
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *Pair) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: expected a pair of numbers, got %d elements", ErrMalformed, n)
	}
	for i := range p {
		if p[i], err = dec.DecodeFloat64(); err != nil {
			return err
		}
	}
	return nil
}
