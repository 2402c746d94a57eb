package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBannerShowThenExpire(t *testing.T) {
	var b Banner
	assert.False(t, b.Showing())

	seq := b.Show("Todo added!")
	assert.True(t, b.Showing())
	assert.Equal(t, "Todo added!", b.Text())

	assert.True(t, b.Expire(seq))
	assert.False(t, b.Showing())
	assert.Equal(t, "", b.Text())
}

func TestBannerLatestWins(t *testing.T) {
	var b Banner
	first := b.Show("Todo added!")
	second := b.Show("Todo deleted!")

	// the first clear fires while the second message is still fresh
	assert.False(t, b.Expire(first))
	assert.Equal(t, "Todo deleted!", b.Text())

	assert.True(t, b.Expire(second))
	assert.False(t, b.Showing())
}

func TestBannerExpireTwice(t *testing.T) {
	var b Banner
	seq := b.Show("x")
	assert.True(t, b.Expire(seq))
	assert.False(t, b.Expire(seq))
}
