package pokemon

// Seed provides the built-in dataset used when no data file is configured:
// the first twenty entries of the national dex.
func Seed() []Pokemon {
	return []Pokemon{
		seed(1, "Bulbasaur", "Grass", "Poison", 45, 49, 49, 65, 65, 45),
		seed(2, "Ivysaur", "Grass", "Poison", 60, 62, 63, 80, 80, 60),
		seed(3, "Venusaur", "Grass", "Poison", 80, 82, 83, 100, 100, 80),
		seed(4, "Charmander", "Fire", "", 39, 52, 43, 60, 50, 65),
		seed(5, "Charmeleon", "Fire", "", 58, 64, 58, 80, 65, 80),
		seed(6, "Charizard", "Fire", "Flying", 78, 84, 78, 109, 85, 100),
		seed(7, "Squirtle", "Water", "", 44, 48, 65, 50, 64, 43),
		seed(8, "Wartortle", "Water", "", 59, 63, 80, 65, 80, 58),
		seed(9, "Blastoise", "Water", "", 79, 83, 100, 85, 105, 78),
		seed(10, "Caterpie", "Bug", "", 45, 30, 35, 20, 20, 45),
		seed(11, "Metapod", "Bug", "", 50, 20, 55, 25, 25, 30),
		seed(12, "Butterfree", "Bug", "Flying", 60, 45, 50, 90, 80, 70),
		seed(13, "Weedle", "Bug", "Poison", 40, 35, 30, 20, 20, 50),
		seed(14, "Kakuna", "Bug", "Poison", 45, 25, 50, 25, 25, 35),
		seed(15, "Beedrill", "Bug", "Poison", 65, 90, 40, 45, 80, 75),
		seed(16, "Pidgey", "Normal", "Flying", 40, 45, 40, 35, 35, 56),
		seed(17, "Pidgeotto", "Normal", "Flying", 63, 60, 55, 50, 50, 71),
		seed(18, "Pidgeot", "Normal", "Flying", 83, 80, 75, 70, 70, 101),
		seed(19, "Rattata", "Normal", "", 30, 56, 35, 25, 35, 72),
		seed(20, "Raticate", "Normal", "", 55, 81, 60, 50, 70, 97),
	}
}

func seed(number int, name, typeOne, typeTwo string, hp, atk, def, spAtk, spDef, speed int) Pokemon {
	return Pokemon{
		Number:  number,
		Name:    name,
		TypeOne: typeOne,
		TypeTwo: typeTwo,
		Extra: map[string]any{
			"total":           hp + atk + def + spAtk + spDef + speed,
			"hit_points":      hp,
			"attack":          atk,
			"defense":         def,
			"special_attack":  spAtk,
			"special_defense": spDef,
			"speed":           speed,
			"generation":      1,
			"legendary":       false,
		},
	}
}
