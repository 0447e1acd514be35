package linkcard_test

import (
	"testing"

	"github.com/fwojciec/linkcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("maps localized labels", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("标题: 新品发布\n链接: https://example.com/p\n描述: 这是一个新产品。")

		require.NoError(t, err)
		assert.Equal(t, linkcard.FormatKeyValue, p.Format)
		assert.Equal(t, "新品发布", p.Title)
		assert.Equal(t, "https://example.com/p", p.URL)
		assert.Equal(t, "这是一个新产品。", p.Description)
	})

	t.Run("accepts full-width colons and loose label spelling", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("Source URL：https://example.com/a\nOG-Title : Hello\r\nthumbnail_url: https://cdn.example.com/t.png")

		require.NoError(t, err)
		assert.Equal(t, "Hello", p.Title)
		assert.Equal(t, "https://example.com/a", p.URL)
		assert.Equal(t, "https://cdn.example.com/t.png", p.Image)
	})

	t.Run("unrecognized lines become the description", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("Title: Launch\nWe are live.\nNote: bring snacks")

		require.NoError(t, err)
		assert.Equal(t, "Launch", p.Title)
		assert.Equal(t, "We are live. Note: bring snacks", p.Description)
	})

	t.Run("an explicit description wins over unrecognized lines", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("Title: Launch\nstray line\nSummary: The real one")

		require.NoError(t, err)
		assert.Equal(t, "The real one", p.Description)
	})

	t.Run("uses the first value that is a valid URL", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("link: see below\nurl: https://example.com/real")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/real", p.URL)
	})

	t.Run("resolves a relative image against the URL", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("url: https://example.com/posts/1\nimage: /cover.jpg")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/cover.jpg", p.Image)
	})

	t.Run("scans bare URLs when no URL label is valid", func(t *testing.T) {
		t.Parallel()

		p, err := linkcard.NewKeyValueExtractor().Extract("Title: Gallery\nhttps://example.com/g https://cdn.example.com/a.png")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/g", p.URL)
		assert.Equal(t, "https://cdn.example.com/a.png", p.Image)
	})

	t.Run("bare URLs are not labels", func(t *testing.T) {
		t.Parallel()

		_, err := linkcard.NewKeyValueExtractor().Extract("See https://cdn.example.com/photo.jpg for the shot.")

		assert.Equal(t, linkcard.ENOMATCH, linkcard.ErrorCode(err))
	})

	t.Run("requires a recognized label", func(t *testing.T) {
		t.Parallel()

		_, err := linkcard.NewKeyValueExtractor().Extract("Note: bring snacks\nTime: 5pm")

		assert.Equal(t, linkcard.ENOMATCH, linkcard.ErrorCode(err))
	})

	t.Run("ignores labels with empty values", func(t *testing.T) {
		t.Parallel()

		_, err := linkcard.NewKeyValueExtractor().Extract("Title:\nURL:   ")

		assert.Equal(t, linkcard.ENOMATCH, linkcard.ErrorCode(err))
	})

	t.Run("rejects overlong labels", func(t *testing.T) {
		t.Parallel()

		_, err := linkcard.NewKeyValueExtractor().Extract("this label is far too long to be a title: x")

		assert.Equal(t, linkcard.ENOMATCH, linkcard.ErrorCode(err))
	})
}

func TestLookupLabel(t *testing.T) {
	t.Parallel()

	t.Run("ignores case spaces underscores and hyphens", func(t *testing.T) {
		t.Parallel()

		for _, label := range []string{"Image URL", "image_url", "IMAGE-URL", " imageUrl "} {
			f, ok := linkcard.LookupLabel(label)
			assert.True(t, ok, label)
			assert.Equal(t, linkcard.FieldImage, f, label)
		}
	})

	t.Run("maps CJK labels", func(t *testing.T) {
		t.Parallel()

		cases := map[string]linkcard.Field{
			"标题": linkcard.FieldTitle,
			"摘要": linkcard.FieldDescription,
			"网址": linkcard.FieldURL,
			"封面": linkcard.FieldImage,
			"タイトル": linkcard.FieldTitle,
			"링크": linkcard.FieldURL,
		}
		for label, want := range cases {
			f, ok := linkcard.LookupLabel(label)
			assert.True(t, ok, label)
			assert.Equal(t, want, f, label)
		}
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		t.Parallel()

		_, ok := linkcard.LookupLabel("author")
		assert.False(t, ok)
	})
}
