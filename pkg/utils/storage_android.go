//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const androidDataRoot = "/data/data"

// EnsureStorageDir 创建 gdata 在 Android 上使用的 settings 目录
//
// gdata 把数据放在 /data/data/<包名>/ 下，但不会创建子目录；
// 目录不存在或不可写时设置只能留在内存中。
func EnsureStorageDir() error {
	dir, err := androidSettingsDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	marker := filepath.Join(dir, ".writable")
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}

// GetStoragePath 应用私有数据目录，无法识别包名时为空
func GetStoragePath() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg)
}

func androidSettingsDir() (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", err
	}
	return filepath.Join(androidDataRoot, pkg, "settings"), nil
}

// androidPackage 从 /proc/self/cmdline 读取包名
// Android 上进程名就是包名，以 NUL 结尾
func androidPackage() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("read process name: %w", err)
	}
	name, _, _ := bytes.Cut(cmdline, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return "", fmt.Errorf("empty process name in /proc/self/cmdline")
	}
	return string(name), nil
}
