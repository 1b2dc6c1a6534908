package wordassoc

const (
	// themeStrength links a theme word to each of its members.
	themeStrength = 0.75
	// siblingStrength links members of the same theme to each other.
	siblingStrength = 0.45
)

// themes is the bundled association data covering the default word pool.
// The theme word is itself a usable clue for every member.
var themes = map[string][]string{
	"animal":    {"cat", "bear", "tiger", "lion", "elephant", "rabbit", "horse", "mouse", "wolf", "kangaroo", "penguin", "duck", "hawk", "shark", "whale", "octopus", "scorpion", "spider", "worm", "mole", "slug", "robin", "seal", "turkey", "mammoth"},
	"body":      {"hand", "head", "eye", "foot", "face", "heart", "mouth", "thumb", "spine", "skull", "tooth", "palm", "organ", "lap"},
	"nature":    {"forest", "grass", "cloud", "storm", "stream", "wind", "wave", "snow", "spring", "ground", "field", "wood", "root", "plant"},
	"building":  {"school", "hospital", "bank", "hotel", "church", "tower", "stadium", "shop", "bridge", "wall"},
	"color":     {"green", "gold", "orange", "olive", "ivory", "rose"},
	"food":      {"apple", "lemon", "olive", "honey", "jam", "pie", "egg", "nut", "ketchup", "paste", "mint", "pumpkin", "maple", "kiwi", "orange", "taste", "cook"},
	"sport":     {"ball", "game", "pitch", "racket", "skate", "ski", "match", "strike", "pool", "swing", "track", "round"},
	"water":     {"beach", "fish", "pool", "wave", "ship", "port", "scuba", "sub", "sink", "stream", "loch", "seal", "whale", "shark", "octopus", "duck"},
	"royal":     {"king", "queen", "crown", "royal", "princess", "knight", "castle", "diamond"},
	"war":       {"soldier", "force", "pistol", "missile", "strike", "shot", "spy", "fighter", "march", "knight", "tank"},
	"space":     {"moon", "star", "jupiter", "saturn", "mercury", "satellite", "ray", "space", "laser"},
	"music":     {"piano", "note", "opera", "flute", "horn", "organ", "string", "pitch"},
	"money":     {"bank", "gold", "stock", "pound", "millionaire", "diamond", "mine"},
	"time":      {"watch", "night", "march", "fall", "spring", "time", "tick"},
	"round":     {"ball", "circle", "ring", "round", "wheel", "plate", "pool", "moon"},
	"sharp":     {"knife", "needle", "point", "spike", "nail", "pin", "fork", "tooth", "drill"},
	"cold":      {"ice", "snow", "igloo", "snowman", "penguin", "mammoth"},
	"place":     {"china", "egypt", "england", "france", "germany", "india", "mexico", "turkey", "london", "moscow", "rome", "tokyo", "washington", "hollywood", "himalayas", "olympus"},
	"flying":    {"fly", "jet", "plane", "helicopter", "parachute", "pilot", "hawk", "kiwi", "robin"},
	"science":   {"lab", "microscope", "scientist", "laser", "gas", "mercury", "scale", "genius"},
	"magic":     {"witch", "wizard", "spell", "dragon", "ghost", "giant", "unicorn", "leprechaun", "phoenix", "genius"},
	"doctor":    {"doctor", "nurse", "hospital", "lab", "vet", "pupil"},
	"crime":     {"thief", "smuggler", "pirate", "police", "poison", "spy", "ninja", "pistol", "undertaker"},
	"clothing":  {"dress", "hat", "glove", "sock", "shoe", "suit", "pants", "tie", "wool"},
	"kitchen":   {"fork", "knife", "pan", "plate", "mug", "stove", "bottle", "glass", "table", "straw", "washer"},
	"writing":   {"book", "novel", "note", "paper", "quill", "file", "stamp", "mail", "press", "plot"},
	"theater":   {"film", "play", "opera", "screen", "shakespeare", "hollywood", "cast", "figure"},
	"vehicle":   {"van", "train", "ship", "jet", "plane", "limousine", "helicopter", "sub", "engine"},
	"light":     {"light", "fire", "torch", "laser", "star", "moon", "shadow", "ray"},
	"luck":      {"luck", "roulette", "spot", "match", "jack", "ace"},
	"tool":      {"hammer", "drill", "nail", "saw", "screw", "lock", "key", "tap", "switch"},
	"computer":  {"code", "server", "net", "web", "link", "file", "mouse", "screen", "tablet", "icon", "key"},
	"baby":      {"drop", "litter", "egg", "duck", "pupil"},
	"garden":    {"grass", "rose", "plant", "yard", "worm", "palm", "root", "pit"},
	"metal":     {"iron", "gold", "lead", "mercury", "nail", "key"},
}

// Default returns the bundled index. Sibling words in a theme get a weaker
// association than the theme word itself, mirroring how a spymaster would
// prefer the theme as a clue over one of its members.
func Default() *Index {
	ix := New()
	for theme, members := range themes {
		for i, w := range members {
			ix.Add(theme, w, themeStrength)
			for _, v := range members[i+1:] {
				ix.Add(w, v, siblingStrength)
			}
		}
	}
	return ix
}
