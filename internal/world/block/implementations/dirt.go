package implementations

func init() {
	register("dirt", solid("dirt"))
	register("gravel", solid("gravel"))
	register("sand", solid("sand"))
}
