//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 只能嵌入本目录下的文件，构建前需要把 data/wheel.yaml 复制到 mobile/data/。
package mobile

import "embed"

//go:embed data/wheel.yaml
var dataFS embed.FS
