package imageops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockSizeClampedToAtLeastOne(t *testing.T) {
	assert.Equal(t, 1, blockSize(50, 50, 1))
	assert.Equal(t, 1, blockSize(10, 10, 1))
}

func TestBlockSizeGrowsAsValueApproaches100(t *testing.T) {
	small := blockSize(1000, 1000, 1)
	large := blockSize(1000, 1000, 90)
	assert.Greater(t, large, small)
}

func TestBlockSizeUsesSmallerDimension(t *testing.T) {
	assert.Equal(t, blockSize(50, 200, 50), blockSize(50, 50, 50))
}
