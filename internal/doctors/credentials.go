package doctors

import (
	"fmt"
	"math/rand"
	"strings"
)

// demoPassword is the fixed password issued to auto-created doctor accounts.
// Returned to the booking caller as demo credentials.
const demoPassword = "123"

// GenerateCredentials derives a login for a doctor created implicitly during
// booking. The username is the lowercased name with spaces and the "dr."
// prefix dropped, truncated to 8 characters, with a random 3-digit suffix.
func GenerateCredentials(name string) (username, password string) {
	clean := strings.ToLower(name)
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "dr.", "")
	if len(clean) > 8 {
		clean = clean[:8]
	}
	username = fmt.Sprintf("dr_%s_%d", clean, 100+rand.Intn(900))
	return username, demoPassword
}
