//go:build !android

package utils

// EnsureStorageDir 桌面端由 gdata 自行创建最高分存档目录，这里无需处理
func EnsureStorageDir() error {
	return nil
}

// StorageRoot 桌面端没有需要预先准备的存档根目录
func StorageRoot() string {
	return ""
}
