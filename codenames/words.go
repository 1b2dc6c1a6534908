package codenames

// DefaultWords is the built-in pool the board generator samples from when a
// caller doesn't supply its own. Words are stored normalized.
var DefaultWords = []string{
	"apple", "ball", "bank", "beach", "bear", "bed", "book", "bottle", "bridge",
	"brother", "cat", "china", "church", "circle", "cloud", "code", "cook", "cross",
	"crown", "dance", "diamond", "doctor", "dragon", "dress", "drill", "drop", "duck",
	"egg", "egypt", "elephant", "engine", "england", "eye", "face", "fair", "fall",
	"fan", "fence", "field", "fighter", "figure", "file", "film", "fire", "fish",
	"flute", "fly", "foot", "force", "forest", "fork", "france", "game", "gas",
	"genius", "germany", "ghost", "giant", "glass", "glove", "gold", "grace", "grass",
	"green", "ground", "hammer", "hand", "hat", "hawk", "head", "heart", "helicopter",
	"himalayas", "hole", "hollywood", "honey", "horn", "horse", "hospital", "hotel",
	"ice", "icon", "igloo", "india", "iron", "ivory", "jack", "jam", "jet",
	"jupiter", "kangaroo", "ketchup", "key", "king", "kiwi", "knife", "knight",
	"lab", "lap", "laser", "lawyer", "lead", "lemon", "leprechaun", "life", "light",
	"limousine", "line", "link", "lion", "litter", "loch", "lock", "log", "london",
	"luck", "mail", "mammoth", "maple", "march", "mass", "match", "mercury", "mexico",
	"microscope", "millionaire", "mine", "mint", "missile", "model", "mole", "moon",
	"moscow", "mount", "mouse", "mouth", "mug", "nail", "needle", "net", "new york",
	"night", "ninja", "note", "novel", "nurse", "nut", "octopus", "oil", "olive",
	"olympus", "opera", "orange", "organ", "palm", "pan", "pants", "paper", "parachute",
	"park", "part", "pass", "paste", "penguin", "phoenix", "piano", "pie", "pilot",
	"pin", "pipe", "pirate", "pistol", "pit", "pitch", "plane", "plant", "plastic",
	"plate", "play", "plot", "point", "poison", "pole", "police", "pool", "port",
	"post", "pound", "press", "princess", "pumpkin", "pupil", "pyramid", "queen",
	"quill", "rabbit", "racket", "ray", "revolution", "ring", "robin", "rock", "rome",
	"root", "rose", "roulette", "round", "row", "royal", "rubber", "rule", "satellite",
	"saturn", "scale", "school", "scientist", "scorpion", "screen", "scuba", "seal",
	"server", "shadow", "shakespeare", "shark", "ship", "shoe", "shop", "shot", "sink",
	"skate", "ski", "skull", "slip", "slug", "smuggler", "snow", "snowman", "sock",
	"soldier", "soul", "space", "spell", "spider", "spike", "spine", "spot", "spring",
	"spy", "square", "stadium", "staff", "stamp", "star", "state", "stick", "stock",
	"storm", "stove", "straw", "stream", "strike", "string", "sub", "suit", "superhero",
	"swing", "switch", "table", "tablet", "tag", "tail", "tap", "taste", "thief",
	"thumb", "tick", "tie", "tiger", "time", "tokyo", "tooth", "torch", "tower",
	"track", "train", "triangle", "trip", "trunk", "tube", "turkey", "undertaker",
	"unicorn", "vacuum", "van", "vet", "wake", "wall", "war", "washer", "washington",
	"watch", "water", "wave", "web", "well", "whale", "whip", "wind", "witch",
	"wizard", "wolf", "wood", "wool", "world", "worm", "yard",
}
