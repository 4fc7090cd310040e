package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Verify_Roundtrip(t *testing.T) {
	encoded, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify("correct horse battery staple", encoded))
	assert.False(t, Verify("correct horse battery stapler", encoded))
}

func TestHash_FreshSaltEachCall(t *testing.T) {
	first, err := Hash("same password")
	require.NoError(t, err)
	second, err := Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same password", first))
	assert.True(t, Verify("same password", second))
}

func TestHash_SelfDescribingFormat(t *testing.T) {
	encoded, err := Hash("pw")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "m=65536,t=1,p=4", parts[3])
}

func TestVerify_MalformedHash(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{"wrong version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{"missing sections", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$ZGlnZXN0"},
		{"bad digest encoding", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
		{"zero params", "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$ZGlnZXN0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, Verify("anything", tc.encoded))
		})
	}
}
