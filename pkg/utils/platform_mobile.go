//go:build mobile

package utils

// IsMobile ebitenmobile 构建（-tags mobile）总是 true
func IsMobile() bool { return true }
