package leetcode

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var extraBlankLines = regexp.MustCompile(`\n{3,}`)

// HTMLToText flattens a problem statement to plain text, keeping paragraph
// and list breaks. Superscripts become "^" and subscripts "_" so bounds like
// 10<sup>9</sup> read 10^9. Entities are decoded by the parser.
func HTMLToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	text := strings.ReplaceAll(builder.String(), "\u00a0", " ")
	return strings.TrimSpace(extraBlankLines.ReplaceAllString(text, "\n\n"))
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "br", "p", "pre":
			builder.WriteRune('\n')
		case "li":
			builder.WriteString("\n- ")
		case "sup":
			builder.WriteRune('^')
		case "sub":
			builder.WriteRune('_')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "pre" || node.Data == "ul" || node.Data == "ol") {
		builder.WriteRune('\n')
	}
}
