package linkcard

import (
	"net/url"
	"path"
	"strings"
)

// imageExtensions are path extensions of raster and vector image formats.
var imageExtensions = map[string]bool{
	".avif": true,
	".webp": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".svg":  true,
}

// imageFormats are values of a format query parameter naming an image format.
var imageFormats = map[string]bool{
	"avif": true,
	"webp": true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
	"svg":  true,
}

// imageFormatParams are query parameters image CDNs use to pick an output format.
var imageFormatParams = []string{"format", "fm", "wx_fmt"}

// imageHostHints are substrings of host+path that identify image CDNs
// serving extension-less URLs.
var imageHostHints = []string{
	"pbs.twimg.com",
	"i.imgur.com",
	"images.unsplash.com",
	"res.cloudinary.com",
	"imgix.net",
	"googleusercontent.com",
	"sinaimg.cn",
	"hdslb.com",
	"mmbiz.qpic.cn",
	"gravatar.com/avatar",
	"/image/upload/",
}

// LooksLikeImage reports whether rawURL likely denotes an image resource.
// The decision uses the path extension, known image CDN hosts and format
// query parameters only; the URL is never fetched.
func LooksLikeImage(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return false
	}

	p := strings.ToLower(u.Path)
	if imageExtensions[path.Ext(p)] {
		return true
	}

	hostPath := strings.ToLower(u.Host) + p
	for _, hint := range imageHostHints {
		if strings.Contains(hostPath, hint) {
			return true
		}
	}

	query := u.Query()
	for _, param := range imageFormatParams {
		if imageFormats[strings.ToLower(query.Get(param))] {
			return true
		}
	}

	return false
}
