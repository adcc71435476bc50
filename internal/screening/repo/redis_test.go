package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateKeyShape(t *testing.T) {
	s := NewRedisCandidateStore(nil)
	assert.Equal(t, "candidate:20241221_143022", s.candidateKey("20241221_143022"))
}
