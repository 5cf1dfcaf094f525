package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperInvariant_Normalize(t *testing.T) {
	n := NewUpperInvariant()

	assert.Equal(t, "SETYA ADI KURNIA", n.Normalize("Setya Adi Kurnia"))
	assert.Equal(t, "SETYAADIKURNIA@HOTMAIL.COM", n.Normalize("setyaadikurnia@hotmail.com"))
	assert.Equal(t, "", n.Normalize(""))
}

func TestUpperInvariant_Idempotent(t *testing.T) {
	n := NewUpperInvariant()

	inputs := []string{"alice", "Alice", "ALICE", "bob@example.com", "Straße", "ŁUKASZ"}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalize must be idempotent for %q", in)
	}
}
