// Package sanitize applies bluemonday policies to user-generated
// content before it is stored. Article bodies may carry limited HTML;
// comment text is reduced to plain text.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var (
	articlePolicy = bluemonday.UGCPolicy()
	strictPolicy  = bluemonday.StrictPolicy()
)

// ArticleHTML keeps the safe user-generated-content subset of HTML.
func ArticleHTML(s string) string { return articlePolicy.Sanitize(s) }

// Text strips all markup, leaving plain text only.
func Text(s string) string { return strictPolicy.Sanitize(s) }
