//go:build !android

package utils

// EnsureStorageDir 桌面端和浏览器上 gdata 自己负责创建目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 只有 Android 需要，其余平台为空
func GetStoragePath() string {
	return ""
}
