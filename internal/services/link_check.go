package services

import (
	"regexp"
	"strings"
)

var resourceLinkRe = regexp.MustCompile(`\((https?://[^)]+)\)`)

// IsInvalidResourceLink 检查markdown中的资源链接是否为占位链接
// 只做子串启发式判断，不做真实可达性检查：
// 链接包含 example.com、broken 或省略号 ... 时视为无效
func IsInvalidResourceLink(markdownText string) bool {
	m := resourceLinkRe.FindStringSubmatch(markdownText)
	if m == nil {
		return false
	}
	link := m[1]
	return strings.Contains(link, "example.com") ||
		strings.Contains(link, "broken") ||
		strings.Contains(link, "...")
}
