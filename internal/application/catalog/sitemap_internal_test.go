package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductRoom(t *testing.T) {
	assert.Equal(t, MaxSitemapURLs-10, productRoom(7, 3, false))
	assert.Equal(t, MaxSitemapURLs-11, productRoom(7, 3, true))
	assert.Equal(t, 1, productRoom(7, MaxSitemapURLs-8, false))
	assert.Equal(t, 0, productRoom(7, MaxSitemapURLs-7, true))
	assert.Equal(t, 0, productRoom(7, MaxSitemapURLs, false))
}
