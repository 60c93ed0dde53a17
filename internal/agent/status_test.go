package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type seqIntn struct {
	vals []int
	i    int
}

func (s *seqIntn) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "Active", StatusActive.String())
	assert.Equal(t, "Processing", StatusProcessing.String())
	assert.Equal(t, "Idle", StatusIdle.String())
	assert.Equal(t, "Error", StatusError.String())
	assert.NotEqual(t, StatusActive.Color(), StatusError.Color())
}

func TestRotatorFollowsSource(t *testing.T) {
	r := NewRotator(&seqIntn{vals: []int{2, 0, 1}})
	assert.Equal(t, StatusIdle, r.Next())
	assert.Equal(t, StatusActive, r.Next())
	assert.Equal(t, StatusProcessing, r.Next())
}

func TestRotatorNeverErrors(t *testing.T) {
	r := NewRotator(rand.New(rand.NewSource(99)))
	seen := map[Status]bool{}
	for i := 0; i < 300; i++ {
		s := r.Next()
		assert.NotEqual(t, StatusError, s)
		seen[s] = true
	}
	assert.Len(t, seen, 3)
}
