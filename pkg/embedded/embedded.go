// Package embedded 按路径前缀访问游戏资源
//
// go:embed 只能引用声明所在包目录下的文件，所以 embed.FS 声明在
// 根目录的 main 包（移动端在 mobile 包），启动时通过 Init 交给这里。
// 路径必须以下列前缀之一开头：
//   - "assets/": 图片、音效、资源清单
//   - "data/":   棋盘配置
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// roots 前缀 -> 文件系统，Init 之前为 nil
var roots map[string]fs.FS

// Init 设置资源来源
// 通常传入 embed.FS，测试中可以传 fstest.MapFS
func Init(assets, data fs.FS) {
	roots = map[string]fs.FS{
		"assets": assets,
		"data":   data,
	}
}

// InitFromDir 直接使用磁盘目录（cmd 工具使用），root 下需要有 assets/ 和 data/
func InitFromDir(root string) error {
	for _, dir := range []string{"assets", "data"} {
		if _, err := os.Stat(filepath.Join(root, dir)); err != nil {
			return fmt.Errorf("resource directory missing: %w", err)
		}
	}
	dirFS := os.DirFS(root)
	Init(dirFS, dirFS)
	return nil
}

func IsInitialized() bool {
	return roots != nil
}

// resolve 规范化路径并选出对应的文件系统
func resolve(name string) (fs.FS, string, error) {
	if roots == nil {
		return nil, "", fmt.Errorf("embedded: not initialized, call Init first")
	}

	name = path.Clean(filepath.ToSlash(name))
	prefix, _, _ := strings.Cut(name, "/")
	fsys, ok := roots[prefix]
	if !ok || prefix == name {
		return nil, "", fmt.Errorf("embedded: %s must start with assets/ or data/", name)
	}
	return fsys, name, nil
}

func Open(name string) (fs.File, error) {
	fsys, name, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

func ReadFile(name string) ([]byte, error) {
	fsys, name, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 文件能否打开
func Exists(name string) bool {
	f, err := Open(name)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Glob 按 path.Match 语法匹配，结果保留前缀
func Glob(pattern string) ([]string, error) {
	fsys, pattern, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, pattern)
}
