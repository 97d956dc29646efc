// Package normalize turns the rich-text HTML produced by the TipTap-style
// editors embedded in every supported input format into the sanitized,
// engine-ready markup the canonical document model stores.
package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var allowedTags = map[string]bool{
	"a": true, "abbr": true, "acronym": true, "address": true, "article": true,
	"aside": true, "b": true, "bdi": true, "bdo": true, "big": true,
	"blockquote": true, "br": true, "caption": true, "center": true, "cite": true,
	"code": true, "col": true, "colgroup": true, "data": true, "dd": true,
	"del": true, "details": true, "dfn": true, "div": true, "dl": true, "dt": true,
	"em": true, "figcaption": true, "figure": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "i": true, "img": true, "ins": true, "kbd": true,
	"li": true, "main": true, "mark": true, "nav": true, "ol": true, "p": true,
	"pre": true, "q": true, "rp": true, "rt": true, "ruby": true, "s": true,
	"samp": true, "section": true, "small": true, "span": true, "strike": true,
	"strong": true, "sub": true, "summary": true, "sup": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"time": true, "tr": true, "tt": true, "u": true, "ul": true, "var": true,
	"wbr": true,
}

// allowedAttrs maps a tag to the attribute names it may keep. Attributes
// not listed under "*" or the tag's own name are stripped.
var allowedAttrs = map[string]map[string]bool{
	"*":   {"class": true, "id": true},
	"a":   {"href": true, "title": true, "target": true},
	"img": {"src": true, "alt": true, "title": true},
}

// SanitizeHTML strips any tag outside the résumé rich-text allow-list
// (scripts, styles, iframes, event handlers, and so on) while preserving
// every allowed tag's text content and permitted attributes. Links are
// given rel="noopener noreferrer" so a rendered résumé never leaks a
// referrer or lets a target="_blank" link control the opener window.
func SanitizeHTML(html string) (string, error) {
	trimmed := strings.TrimSpace(html)
	if trimmed == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return "", err
	}

	body := doc.Find("body")
	sanitizeNode(body)

	out, err := body.Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// sanitizeNode walks every descendant element, unwrapping disallowed tags
// (keeping their children in place) and pruning disallowed attributes from
// the ones that remain.
func sanitizeNode(sel *goquery.Selection) {
	sel.Find("script, style, iframe, object, embed, form, input, button, noscript").Remove()

	sel.Find("*").Each(func(_ int, node *goquery.Selection) {
		tag := goquery.NodeName(node)
		if tag == "body" || tag == "html" || tag == "head" {
			return
		}
		if !allowedTags[tag] {
			node.ReplaceWithSelection(node.Contents())
			return
		}
		pruneAttrs(node, tag)
	})

	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && href != "" {
			a.SetAttr("rel", "noopener noreferrer")
		}
	})
}

func pruneAttrs(node *goquery.Selection, tag string) {
	el := node.Get(0)
	if el == nil {
		return
	}
	keep := allowedAttrs["*"]
	tagSpecific := allowedAttrs[tag]

	var drop []string
	for _, attr := range el.Attr {
		if keep[attr.Key] || tagSpecific[attr.Key] {
			continue
		}
		drop = append(drop, attr.Key)
	}
	for _, name := range drop {
		node.RemoveAttr(name)
	}
}
