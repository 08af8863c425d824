package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	domain, ok := emailDomain("jamie@example.com")
	assert.True(t, ok)
	assert.Equal(t, "example.com", domain)
}

func TestEmailDomain_LastAtWins(t *testing.T) {
	domain, ok := emailDomain(`"odd@local"@example.com`)
	assert.True(t, ok)
	assert.Equal(t, "example.com", domain)
}

func TestEmailDomain_Malformed(t *testing.T) {
	for _, input := range []string{"", "no-at-sign", "trailing@"} {
		_, ok := emailDomain(input)
		assert.False(t, ok, "input %q", input)
	}
}
