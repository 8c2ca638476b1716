package wheel

import "math"

// FullTurn 一整圈的弧度
const FullTurn = 2 * math.Pi

// ResolveSector 计算指针当前对准的扇区编号（从 1 开始）
//
// 扇区宽度 unit = 2π/sectorCount，先求角度所在的桶 i = floor(angle/unit)，
// 再把 i 归约到 [0, sectorCount)（负角度同样适用），结果为 sectorCount - i。
// 轮盘在固定指针下转动，因此转角增大时指针相对的编号递减。
//
// 注意：此反转公式与绘制约定耦合（指针在上方，扇区从顶部顺时针排列），
// 修改指针位置或扇区起始角度时需要重新推导。
//
// 参数：
//   - angle: 累计转角（弧度，未归一化）
//   - sectorCount: 扇区数量
//
// 返回：
//   - int: [1, sectorCount] 内的扇区编号；sectorCount < 1 时返回 0；
//     angle 为 NaN 或 ±Inf 时按角度 0 处理，返回 sectorCount
func ResolveSector(angle float64, sectorCount int) int {
	if sectorCount < 1 {
		return 0
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return sectorCount
	}

	unit := FullTurn / float64(sectorCount)
	bucket := math.Floor(angle / unit)

	// 先在浮点域取模，避免超大角度转 int 溢出
	i := int(math.Mod(bucket, float64(sectorCount)))
	if i < 0 {
		i += sectorCount
	}

	return sectorCount - i
}

// NormalizeAngle 将任意角度归一化到 [0, 2π)
func NormalizeAngle(angle float64) float64 {
	r := math.Mod(angle, FullTurn)
	if r < 0 {
		r += FullTurn
	}
	// -1e-18 之类的极小负数加 2π 后会舍入成 2π
	if r >= FullTurn {
		r = 0
	}
	return r
}
