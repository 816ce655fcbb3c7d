package implementations

func init() {
	register("stone", solid("stone"))
	register("cobblestone", solid("cobblestone"))
	// Неразрушимое основание мира
	register("bedrock", solid("bedrock"))
	register("obsidian", solid("obsidian"))
}
