package words

// EnglishWords is the alternative secret-word pool.
var EnglishWords = []string{
	// Animals
	"dog", "cat", "lion", "elephant", "bear", "tiger", "camel", "dolphin",
	"eagle", "butterfly", "bee", "rooster", "chicken", "cow", "sheep", "goat",
	"horse", "donkey", "pig", "rabbit", "hamster", "parrot", "canary", "turtle",
	"fish", "shark", "whale", "penguin", "flamingo", "ostrich", "kangaroo", "beaver",
	"ant", "spider", "hedgehog", "bat", "seahorse", "jellyfish", "octopus", "crab",

	// Food
	"bread", "cheese", "milk", "meat", "egg", "apple", "banana", "grapes",
	"orange", "lemon", "tomato", "cucumber", "onion", "garlic", "potato", "carrot",
	"spinach", "lettuce", "rice", "pasta", "pizza", "sandwich", "burger", "soup",
	"salad", "cake", "cookie", "chocolate", "coffee", "tea", "juice", "water",

	// Objects
	"table", "chair", "bed", "window", "door", "key", "book", "pen",
	"phone", "computer", "television", "refrigerator", "kitchen", "car", "bicycle", "train",
	"airplane", "ship", "clock", "glasses", "hat", "shoes", "shirt", "pants",
	"dress", "bag", "umbrella", "backpack", "spoon", "fork", "knife", "plate",

	// Professions
	"doctor", "teacher", "police", "firefighter", "engineer", "lawyer", "artist", "musician",
	"painter", "writer", "journalist", "chef", "waiter", "driver", "cleaner", "veterinarian",
	"pilot", "sailor", "soldier", "hairdresser", "pharmacist", "nurse", "architect", "programmer",

	// Colors
	"red", "blue", "yellow", "green", "black", "white", "gray", "brown",
	"pink", "purple", "orange", "beige", "gold", "silver", "burgundy", "turquoise",

	// Nature
	"tree", "flower", "grass", "leaf", "branch", "root", "fruit", "seed",
	"mountain", "sea", "river", "lake", "island", "beach", "stone", "sand",
	"sun", "moon", "star", "cloud", "rain", "snow", "wind", "fire",
	"sky", "earth", "water", "ice", "fog", "storm", "rainbow", "tsunami",

	// Sports
	"football", "basketball", "tennis", "volleyball", "swimming", "running", "cycling", "skiing",
	"golf", "boxing", "wrestling", "gymnastics", "ping-pong", "baseball", "hockey", "karate",

	// Music
	"piano", "guitar", "violin", "drums", "flute", "trumpet", "saxophone", "organ",
	"song", "melody", "rhythm", "dance", "opera", "concert", "orchestra", "band",

	// Body
	"head", "eye", "nose", "mouth", "ear", "hair", "hand", "finger",
	"foot", "sole", "heart", "brain", "stomach", "back", "arm", "knee",

	// House
	"living room", "kitchen", "bedroom", "bathroom", "balcony", "garden", "garage", "stairs",
	"roof", "wall", "floor", "ceiling", "lamp", "sofa", "wardrobe", "mirror",

	// School
	"lesson", "student", "notebook", "pencil", "blackboard", "desk", "bag", "break",
	"exams", "grade", "classroom", "playground", "library", "laboratory", "gym", "cafeteria",
}
