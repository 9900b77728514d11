package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	got := URL("alice@example.com", 200, "pg", "mm")
	assert.Equal(t, "https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?d=mm&r=pg&s=200", got)
}

func TestURL_NormalizesEmail(t *testing.T) {
	plain := URL("bob@example.com", 200, "pg", "mm")
	shouty := URL("  BOB@Example.COM ", 200, "pg", "mm")
	assert.Equal(t, plain, shouty)
	assert.Contains(t, plain, "4b9bb80620f03eb3719e0a061c14283d")
}

func TestURL_Deterministic(t *testing.T) {
	a := URL("alice@example.com", 200, "pg", "mm")
	b := URL("alice@example.com", 200, "pg", "mm")
	assert.Equal(t, a, b)
}
