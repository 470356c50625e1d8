package verify

import (
	"fmt"
	"math/rand/v2"

	"github.com/iamNilotpal/gf2/pkg/clmul"
	"github.com/iamNilotpal/gf2/pkg/word"
)

// Case compares two carry-less multipliers over random operands.
type Case struct {
	Name string
	run  func(rng *rand.Rand, trials int) *Mismatch
}

// Mismatch records the first trial on which the candidate disagreed with
// the reference. Values are hex encoded.
type Mismatch struct {
	Trial     int
	Left      string
	Right     string
	Reference string
	Candidate string
}

func newCase[R, V word.Unsigned](name string, reference, candidate clmul.Func[R, V]) Case {
	return Case{
		Name: name,
		run: func(rng *rand.Rand, trials int) *Mismatch {
			for i := 0; i < trials; i++ {
				l, r := V(rng.Uint64()), V(rng.Uint64())
				want, got := reference(l, r), candidate(l, r)
				if want != got {
					return &Mismatch{
						Trial:     i,
						Left:      hex(l),
						Right:     hex(r),
						Reference: hex(want),
						Candidate: hex(got),
					}
				}
			}
			return nil
		},
	}
}

func hex[V word.Unsigned](v V) string {
	return fmt.Sprintf("0x%0*x", word.Bytes[V]()*2, uint64(v))
}

func pair[R, V word.Unsigned](suffix string) []Case {
	return []Case{
		newCase("clmul-test/"+suffix,
			clmul.Bind[R, V](clmul.Naive, false), clmul.Bind[R, V](clmul.Strided, false)),
		newCase("clmul-test-reversed/"+suffix,
			clmul.Bind[R, V](clmul.Naive, true), clmul.Bind[R, V](clmul.Strided, true)),
	}
}

// DefaultCases checks the strided multiplier against the naive one for each
// operand width, widening the product where a wider type exists.
func DefaultCases() []Case {
	var cases []Case
	cases = append(cases, pair[uint16, uint8]("u8")...)
	cases = append(cases, pair[uint32, uint16]("u16")...)
	cases = append(cases, pair[uint64, uint32]("u32")...)
	cases = append(cases, pair[uint64, uint64]("u64")...)
	return cases
}
