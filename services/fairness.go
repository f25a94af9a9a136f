package services

import (
	"crypto/sha256"
	"strconv"
	"time"

	"caracoroa/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draw is the randomness consumed by one settlement: the stored seed, the coin
// side it produced, and an independent 0..99.99 roll checked against the
// tier's win chance. Both values come from the same SHA-256 digest but from
// disjoint bytes, so they are independent and neither is predictable before
// the seed exists.
type Draw struct {
	Seed    string
	Result  string
	WinRoll decimal.Decimal
}

// NewDraw generates a fresh seed and derives the two decisions from it. The
// seed is a v4 UUID (crypto/rand underneath) hashed together with the current
// unix-millisecond timestamp, mirroring how stored seeds are re-verified.
func NewDraw() Draw {
	return DrawFromSeed(uuid.New().String(), time.Now().UnixMilli())
}

// DrawFromSeed deterministically maps a seed plus timestamp to a draw. Byte 0
// of the digest picks the coin side; bytes 1..8 feed the win roll.
func DrawFromSeed(seed string, unixMilli int64) Draw {
	sum := sha256.Sum256([]byte(seed + strconv.FormatInt(unixMilli, 10)))

	result := models.ChoiceCara
	if sum[0]%2 == 1 {
		result = models.ChoiceCoroa
	}

	var n uint64
	for _, b := range sum[1:9] {
		n = n<<8 | uint64(b)
	}
	roll := decimal.NewFromInt(int64(n % 10000)).Div(decimal.NewFromInt(100))

	return Draw{Seed: seed, Result: result, WinRoll: roll}
}
