package application

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	maxUseCases    = 5
	defaultUseCase = "Repository analysis required to determine use cases"
)

// useCaseHeadings are the README section titles mined for use cases.
var useCaseHeadings = []string{
	"use cases",
	"features",
	"capabilities",
	"what it does",
}

// UseCasesFromReadme extracts up to five use cases from the README's
// use-case-like sections: the list items directly under a matching
// heading. Returns a fixed placeholder when nothing is found.
func UseCasesFromReadme(readme string) []string {
	if strings.TrimSpace(readme) == "" {
		return []string{defaultUseCase}
	}

	source := []byte(readme)
	document := goldmark.New().Parser().Parse(text.NewReader(source))

	var found []string
	for node := document.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*gmast.Heading)
		if !ok || !isUseCaseHeading(plainText(heading, source)) {
			continue
		}

		for sibling := node.NextSibling(); sibling != nil; sibling = sibling.NextSibling() {
			if _, isHeading := sibling.(*gmast.Heading); isHeading {
				break
			}
			list, isList := sibling.(*gmast.List)
			if !isList {
				continue
			}
			for item := list.FirstChild(); item != nil; item = item.NextSibling() {
				if entry := strings.TrimSpace(plainText(item, source)); entry != "" {
					found = append(found, entry)
				}
				if len(found) >= maxUseCases {
					return found
				}
			}
		}
	}

	if len(found) == 0 {
		return []string{defaultUseCase}
	}
	return found
}

func isUseCaseHeading(title string) bool {
	lowered := strings.ToLower(strings.TrimSpace(title))
	for _, heading := range useCaseHeadings {
		if strings.Contains(lowered, heading) {
			return true
		}
	}
	return false
}

// plainText collects the raw text segments beneath a node.
func plainText(node gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(node, func(child gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if textNode, ok := child.(*gmast.Text); ok {
			sb.Write(textNode.Segment.Value(source))
		}
		return gmast.WalkContinue, nil
	})
	return sb.String()
}
