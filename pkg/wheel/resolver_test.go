package wheel

import (
	"fmt"
	"math"
	"testing"
)

func TestResolveSector(t *testing.T) {
	unit8 := FullTurn / 8

	tests := []struct {
		angle       float64
		sectorCount int
		want        int
	}{
		{0, 8, 8},
		{unit8 * 0.5, 8, 8},
		{unit8 * 1.5, 8, 7},
		{unit8 * 7.5, 8, 1},
		{FullTurn + unit8*0.5, 8, 8},
		{FullTurn*10 + unit8*2.5, 8, 6},
		{-unit8 * 0.5, 8, 1},
		{-unit8 * 1.5, 8, 2},
		{-FullTurn*3 - unit8*0.5, 8, 1},
		{0, 2, 2},
		{math.Pi + 0.1, 2, 1},
		{0.01, 50, 50},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d@%.4f", tt.sectorCount, tt.angle), func(t *testing.T) {
			if got := ResolveSector(tt.angle, tt.sectorCount); got != tt.want {
				t.Errorf("ResolveSector() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSector_InvalidCount(t *testing.T) {
	if got := ResolveSector(1.0, 0); got != 0 {
		t.Errorf("ResolveSector(1.0, 0) = %d, want 0", got)
	}
	if got := ResolveSector(1.0, -3); got != 0 {
		t.Errorf("ResolveSector(1.0, -3) = %d, want 0", got)
	}
}

func TestResolveSector_NonFiniteAngle(t *testing.T) {
	for _, angle := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for _, n := range []int{2, 8, 50} {
			if got := ResolveSector(angle, n); got != n {
				t.Errorf("ResolveSector(%v, %d) = %d, want %d", angle, n, got, n)
			}
		}
	}
}

// sampleAngles 生成密集的角度样本，覆盖负数、零和 2π 的整数倍
func sampleAngles() []float64 {
	angles := make([]float64, 0, 2000)
	for k := -20; k <= 20; k++ {
		angles = append(angles, float64(k)*FullTurn)
	}
	for a := -50.0; a <= 50.0; a += 0.0517 {
		angles = append(angles, a)
	}
	angles = append(angles, 0, math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 1e6, -1e6)
	return angles
}

func TestResolveSector_Range(t *testing.T) {
	angles := sampleAngles()
	for n := MinSectors; n <= MaxSectors; n++ {
		for _, a := range angles {
			got := ResolveSector(a, n)
			if got < 1 || got > n {
				t.Fatalf("ResolveSector(%v, %d) = %d, out of [1, %d]", a, n, got, n)
			}
		}
	}
}

func TestResolveSector_Periodic(t *testing.T) {
	angles := sampleAngles()
	for n := MinSectors; n <= MaxSectors; n++ {
		unit := FullTurn / float64(n)
		for _, a := range angles {
			// 跳过紧贴扇区边界的样本，浮点舍入会让 floor 落到相邻桶
			pos := a / unit
			frac := pos - math.Floor(pos)
			if frac < 1e-6 || frac > 1-1e-6 {
				continue
			}
			if ResolveSector(a, n) != ResolveSector(a+FullTurn, n) {
				t.Fatalf("ResolveSector not periodic at angle=%v n=%d: %d vs %d",
					a, n, ResolveSector(a, n), ResolveSector(a+FullTurn, n))
			}
		}
	}
}

func TestResolveSector_ZeroIsLastSector(t *testing.T) {
	for n := MinSectors; n <= MaxSectors; n++ {
		if got := ResolveSector(0, n); got != n {
			t.Errorf("ResolveSector(0, %d) = %d, want %d", n, got, n)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"零", 0, 0},
		{"正常值", 1.5, 1.5},
		{"一整圈", FullTurn, 0},
		{"多圈", FullTurn*3 + 0.25, 0.25},
		{"负数", -0.25, FullTurn - 0.25},
		{"极小负数", -1e-18, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.angle)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
			if got < 0 || got >= FullTurn {
				t.Errorf("NormalizeAngle(%v) = %v, out of [0, 2π)", tt.angle, got)
			}
		})
	}
}
