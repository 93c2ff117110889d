package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetIDPrefersDyno(t *testing.T) {
	t.Setenv("DYNO", "web.2")
	t.Setenv("HOSTNAME", "api-7f9c")
	assert.Equal(t, "web.2", GetID())
}

func TestGetIDFallsBack(t *testing.T) {
	t.Setenv("DYNO", "")
	t.Setenv("HOSTNAME", "api-7f9c")
	assert.Equal(t, "api-7f9c", GetID())

	t.Setenv("HOSTNAME", "")
	assert.Equal(t, "local", GetID())
}
