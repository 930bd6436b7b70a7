package common

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d+\.\d+$`), Version())
	assert.Equal(t, "solarledger/"+Version(), ServerName())
}
