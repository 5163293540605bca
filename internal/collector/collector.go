// Package collector gathers integers into an ordered set and renders them
// on a single line.
package collector

import (
	"io"
	"iter"
	"strconv"

	"github.com/ddirect/ordered/set"
)

type Value = int32

// DemoValues are inserted by the ordset command, in this order.
var DemoValues = []Value{1, 2, 6, 7, 700000, 88, 100, 0}

func ascending(lhs, rhs Value) bool {
	return lhs < rhs
}

type Collector struct {
	s *set.Set[Value]
}

func New() *Collector {
	return &Collector{
		s: set.New[Value](ascending),
	}
}

// Demo returns a collector holding DemoValues.
func Demo() *Collector {
	c := New()
	for _, v := range DemoValues {
		c.Insert(v)
	}
	return c
}

// Insert adds v; inserting a value already present does nothing.
func (c *Collector) Insert(v Value) {
	c.s.Insert(v)
}

func (c *Collector) Len() int {
	return c.s.Len()
}

func (c *Collector) Values() iter.Seq[Value] {
	return c.s.Values()
}

func (c *Collector) appendLine(b []byte) []byte {
	for v := range c.s.Values() {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return append(b, '\r', '\n')
}

// WriteTo writes each value preceded by a space, then CRLF, in one write.
func (c *Collector) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.appendLine(nil))
	return int64(n), err
}

func (c *Collector) String() string {
	return string(c.appendLine(nil))
}
