package linkcard_test

import (
	"testing"

	"github.com/fwojciec/linkcard"
	"github.com/stretchr/testify/assert"
)

func TestLooksLikeImage(t *testing.T) {
	t.Parallel()

	t.Run("recognizes image extensions in any case", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://example.com/a.png",
			"https://example.com/a.JPG",
			"https://example.com/a.jpeg?w=100",
			"https://example.com/a.webp",
			"https://example.com/a.avif",
			"https://example.com/a.gif#x",
			"https://example.com/a.bmp",
			"https://example.com/a.svg",
		} {
			assert.True(t, linkcard.LooksLikeImage(u), u)
		}
	})

	t.Run("recognizes image CDN hosts", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://pbs.twimg.com/media/FXyz",
			"https://i.imgur.com/abc",
			"https://images.unsplash.com/photo-123",
			"https://res.cloudinary.com/demo/sample",
			"https://acme.imgix.net/hero",
			"https://lh3.googleusercontent.com/abc",
			"https://wx1.sinaimg.cn/large/abc",
			"https://i0.hdslb.com/bfs/archive/abc",
			"https://mmbiz.qpic.cn/mmbiz/abc",
			"https://www.gravatar.com/avatar/abc",
			"https://cdn.example.com/image/upload/v1/abc",
		} {
			assert.True(t, linkcard.LooksLikeImage(u), u)
		}
	})

	t.Run("recognizes format query parameters", func(t *testing.T) {
		t.Parallel()

		assert.True(t, linkcard.LooksLikeImage("https://example.com/render?format=PNG"))
		assert.True(t, linkcard.LooksLikeImage("https://example.com/img?fm=webp&w=300"))
		assert.True(t, linkcard.LooksLikeImage("https://example.com/x?wx_fmt=jpeg"))
	})

	t.Run("rejects pages and lookalikes", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://example.com/",
			"https://example.com/png",
			"https://example.com/a.png/view",
			"https://example.com/page?format=html",
			"https://example.com/avatar",
			"not a url",
			"",
		} {
			assert.False(t, linkcard.LooksLikeImage(u), u)
		}
	})
}
