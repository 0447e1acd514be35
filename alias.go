package linkcard

import "strings"

// Field names a canonical preview field that producer keys map onto.
type Field int

// Canonical preview fields addressed by key-alias lists.
const (
	FieldTitle Field = iota
	FieldDescription
	FieldURL
	FieldImage
)

// JSON key-alias lists. Keys are literal and case-sensitive, matching the
// names upstream producers use.
var (
	JSONTitleKeys       = []string{"title", "subject", "headline", "name", "og_title"}
	JSONDescriptionKeys = []string{"description", "summary", "excerpt", "text", "content", "preview", "body"}
	JSONURLKeys         = []string{"url", "link", "href", "source_url", "sourceUrl", "permalink", "og_url", "ogUrl"}
	JSONImageKeys       = []string{
		"image", "image_url", "imageUrl", "cover", "cover_url", "coverUrl",
		"thumbnail", "thumbnail_url", "thumbnailUrl", "og_image", "ogImage", "pic",
	}

	// JSONNestedKeys name sub-objects whose fields take precedence over
	// the top-level object.
	JSONNestedKeys = []string{"preview", "card", "link_preview"}
)

// labelAliases maps canonical key-value labels onto preview fields.
// Labels are compared after canonicalLabel.
var labelAliases = map[string]Field{
	// title
	"title": FieldTitle, "subject": FieldTitle, "headline": FieldTitle,
	"name": FieldTitle, "ogtitle": FieldTitle, "topic": FieldTitle,
	"标题": FieldTitle, "主题": FieldTitle, "题目": FieldTitle, "名称": FieldTitle,
	"標題": FieldTitle, "タイトル": FieldTitle, "제목": FieldTitle,

	// description
	"description": FieldDescription, "desc": FieldDescription, "summary": FieldDescription,
	"excerpt": FieldDescription, "text": FieldDescription, "content": FieldDescription,
	"preview": FieldDescription, "body": FieldDescription, "abstract": FieldDescription,
	"描述": FieldDescription, "摘要": FieldDescription, "简介": FieldDescription,
	"簡介": FieldDescription, "内容": FieldDescription, "內容": FieldDescription,
	"正文": FieldDescription, "说明": FieldDescription, "說明": FieldDescription,
	"概要": FieldDescription, "説明": FieldDescription, "설명": FieldDescription,

	// url
	"url": FieldURL, "link": FieldURL, "href": FieldURL, "sourceurl": FieldURL,
	"source": FieldURL, "permalink": FieldURL, "ogurl": FieldURL, "website": FieldURL,
	"链接": FieldURL, "鏈接": FieldURL, "連結": FieldURL, "网址": FieldURL,
	"網址": FieldURL, "地址": FieldURL, "原文": FieldURL, "原文链接": FieldURL,
	"来源": FieldURL, "リンク": FieldURL, "링크": FieldURL,

	// image
	"image": FieldImage, "imageurl": FieldImage, "img": FieldImage,
	"cover": FieldImage, "coverurl": FieldImage, "thumbnail": FieldImage,
	"thumbnailurl": FieldImage, "thumb": FieldImage, "ogimage": FieldImage,
	"pic": FieldImage, "picture": FieldImage, "photo": FieldImage,
	"图片": FieldImage, "圖片": FieldImage, "封面": FieldImage, "配图": FieldImage,
	"缩略图": FieldImage, "縮圖": FieldImage, "头图": FieldImage, "画像": FieldImage,
	"이미지": FieldImage,
}

// LookupLabel maps a free-form key-value label onto a preview field.
// Matching ignores case, spaces, underscores and hyphens.
func LookupLabel(label string) (Field, bool) {
	f, ok := labelAliases[canonicalLabel(label)]
	return f, ok
}

func canonicalLabel(label string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(label)))
}
