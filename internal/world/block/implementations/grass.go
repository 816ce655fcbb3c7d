package implementations

func init() {
	// Дёрн: боковые грани с травой, снизу земля
	register("grass", columnar("grass_side", "grass_top", "dirt"))
}
