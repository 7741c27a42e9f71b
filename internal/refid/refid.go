// Package refid issues the short human-shareable identifiers returned to a
// user after a successful submission.
package refid

import (
	"fmt"
	"math/rand"

	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
)

// Type tags which intake flow produced the submission.
type Type byte

const (
	TypeCarrier Type = 'C'
	TypeQuote   Type = 'Q'
	TypeContact Type = 'N'
)

// suffix alphabet excludes 0, O, 1, I and L so the ID survives being read
// aloud over a dispatch phone line.
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const suffixLen = 4

// Generate returns a reference ID of the form APX-<TYPE>-<YY>-<SUFFIX>,
// e.g. APX-Q-26-K7MB.
func Generate(t Type) string {
	year := utils.NowUTC().Year() % 100
	buf := make([]byte, suffixLen)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("APX-%c-%02d-%s", byte(t), year, buf)
}
