package version

import (
	"strings"
	"testing"

	"github.com/prysmaticlabs/blobkzg/testing/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.Equal(t, true, strings.HasPrefix(v, "blobkzg/Unknown/"))
	assert.Equal(t, true, strings.HasSuffix(v, "Built at: Moments ago"))
}
