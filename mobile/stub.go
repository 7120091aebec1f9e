//go:build !mobile

// Package mobile 在普通构建中为空，真正的入口见 mobile.go（-tags mobile）
package mobile

func Dummy() {}
