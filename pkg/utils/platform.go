//go:build !mobile

package utils

import (
	"os"
	"strconv"
)

// MobileEmulateEnv 设置为 1 / true 时桌面端按移动端运行（调试触摸输入）
const MobileEmulateEnv = "CARROM_MOBILE_EMULATE"

// IsMobile 桌面端默认为 false
func IsMobile() bool {
	on, _ := strconv.ParseBool(os.Getenv(MobileEmulateEnv))
	return on
}
