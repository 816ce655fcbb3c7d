package vec

import "math"

// Vec3Float представляет позицию в мире с плавающей точкой (камера, точка фокуса)
type Vec3Float struct {
	X, Y, Z float64
}

// Floor возвращает целочисленные координаты блока, содержащего точку
func (v Vec3Float) Floor() Vec3 {
	return Vec3{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)),
		Z: int(math.Floor(v.Z)),
	}
}

// Vec3Float32 используется для вершин: float32 совпадает с форматом буфера GPU
type Vec3Float32 struct {
	X, Y, Z float32
}

// Add складывает два вектора
func (v Vec3Float32) Add(other Vec3Float32) Vec3Float32 {
	return Vec3Float32{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub вычитает вектор
func (v Vec3Float32) Sub(other Vec3Float32) Vec3Float32 {
	return Vec3Float32{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Cross возвращает векторное произведение
func (v Vec3Float32) Cross(other Vec3Float32) Vec3Float32 {
	return Vec3Float32{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length возвращает длину вектора
func (v Vec3Float32) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalized возвращает нормализованный вектор
func (v Vec3Float32) Normalized() Vec3Float32 {
	length := v.Length()
	if length == 0 {
		return Vec3Float32{}
	}
	return Vec3Float32{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}
