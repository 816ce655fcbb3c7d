package vec

// ChunkShift и ChunkMask описывают размер чанка (32 = 1<<5) для
// перевода мировых координат в координаты чанка и обратно.
const (
	ChunkShift = 5
	ChunkSize  = 1 << ChunkShift
	ChunkMask  = ChunkSize - 1
)

// Vec3 представляет трехмерный вектор с целочисленными координатами
type Vec3 struct {
	X int
	Y int
	Z int
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul умножает вектор на скаляр
func (v Vec3) Mul(scalar int) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// ToChunkCoords преобразует глобальные координаты блока в координаты чанка.
// Арифметический сдвиг округляет вниз и для отрицательных координат.
func (v Vec3) ToChunkCoords() Vec3 {
	return Vec3{X: v.X >> ChunkShift, Y: v.Y >> ChunkShift, Z: v.Z >> ChunkShift}
}

// LocalInChunk возвращает локальные координаты внутри чанка (модуль 32)
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & ChunkMask, Y: v.Y & ChunkMask, Z: v.Z & ChunkMask}
}

// ChunkOrigin возвращает мировые координаты нулевого блока чанка с координатами v
func (v Vec3) ChunkOrigin() Vec3 {
	return v.Mul(ChunkSize)
}

// DistanceSquared возвращает квадрат евклидова расстояния до другого вектора
func (v Vec3) DistanceSquared(other Vec3) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ToFloat32 преобразует вектор в Vec3Float32
func (v Vec3) ToFloat32() Vec3Float32 {
	return Vec3Float32{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
