package donation

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewSerialNumber returns TT-<base36 unix millis>-<4 random base36 chars>,
// uppercase.
func NewSerialNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	var suffix [4]byte
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return "TT-" + ts + "-" + string(suffix[:])
}
