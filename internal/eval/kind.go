//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab -text
package eval

import "github.com/vipcxj/progression/pkg/progression"

// Kind selects the element type a textual expression is evaluated with.
type Kind int

const (
	KindAuto Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindChar
)

// Resolve replaces KindAuto with char when any of exprs uses a character
// literal, and with int otherwise.
func (k Kind) Resolve(exprs ...progression.Expr) Kind {
	if k != KindAuto {
		return k
	}
	for _, e := range exprs {
		if e.HasChar {
			return KindChar
		}
	}
	return KindInt
}
