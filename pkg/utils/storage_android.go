//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在 gdata 打开最高分存档前准备 Android 存档目录
//
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会创建子目录。
//
// 返回：
//   - error: 无法识别包名、创建目录失败或目录不可写时返回错误
func EnsureStorageDir() error {
	root := StorageRoot()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	savesDir := filepath.Join(root, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// StorageRoot 返回应用私有目录 /data/data/{package}，识别失败时返回空字符串
func StorageRoot() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔参数，第一个参数即包名
	pkg, _, _ := strings.Cut(string(data), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
