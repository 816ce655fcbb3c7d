package vec

// Vec2Float32 представляет текстурные координаты (u, v)
type Vec2Float32 struct {
	X, Y float32
}

// Add складывает два вектора
func (v Vec2Float32) Add(other Vec2Float32) Vec2Float32 {
	return Vec2Float32{X: v.X + other.X, Y: v.Y + other.Y}
}

// Div делит вектор на скаляр
func (v Vec2Float32) Div(scalar float32) Vec2Float32 {
	return Vec2Float32{X: v.X / scalar, Y: v.Y / scalar}
}
