//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 data/balance.yaml 复制到 mobile/data/ 下：
//
//	mkdir -p mobile/data && cp data/balance.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/balance.yaml
var dataFS embed.FS
