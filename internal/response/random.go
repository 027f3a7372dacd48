package response

import "math/rand"

// Rand 随机源（测试时注入固定实现）
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand 创建基于 math/rand 的随机源
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
