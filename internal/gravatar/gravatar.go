package gravatar

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// URL derives the deterministic avatar URL for an email: md5 of the
// lowercased, trimmed address with size, rating and default-image params.
// Accounts without a gravatar render the "mm" identicon placeholder.
func URL(email string, size int, rating, defaultImage string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	q := url.Values{}
	q.Set("s", fmt.Sprintf("%d", size))
	q.Set("r", rating)
	q.Set("d", defaultImage)

	return fmt.Sprintf("%s%x?%s", baseURL, hash, q.Encode())
}
