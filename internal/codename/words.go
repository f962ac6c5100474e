package codename

var adjectives = []string{
	"Able", "Ancient", "Angry", "Bold", "Brave", "Bright", "Brisk", "Calm",
	"Clever", "Cold", "Crafty", "Curious", "Daring", "Dark", "Eager", "Electric",
	"Elegant", "Fearless", "Fierce", "Flying", "Frozen", "Gentle", "Giant", "Golden",
	"Grumpy", "Hidden", "Hollow", "Hungry", "Icy", "Iron", "Jolly", "Keen",
	"Lazy", "Lucky", "Mighty", "Misty", "Nimble", "Noble", "Odd", "Patient",
	"Proud", "Quick", "Quiet", "Rapid", "Restless", "Rusty", "Savage", "Secret",
	"Sharp", "Silent", "Sleepy", "Sly", "Smooth", "Solid", "Steady", "Stormy",
	"Swift", "Tame", "Tiny", "Vivid", "Wandering", "Wild", "Wise", "Zealous",
}

var colors = []string{
	"Amaranth", "Amber", "Aqua", "Azure", "Beige", "Black", "Blue", "Bronze",
	"Brown", "Chocolate", "Coffee", "Copper", "Coral", "Crimson", "Cyan", "Emerald",
	"Fuchsia", "Gold", "Gray", "Green", "Harlequin", "Indigo", "Ivory", "Jade",
	"Lavender", "Lime", "Magenta", "Maroon", "Moccasin", "Olive", "Orange", "Peach",
	"Pink", "Plum", "Purple", "Red", "Rose", "Ruby", "Salmon", "Sapphire",
	"Scarlet", "Silver", "Tan", "Teal", "Turquoise", "Violet", "White", "Yellow",
}

var animals = []string{
	"Albatross", "Alligator", "Badger", "Barracuda", "Bat", "Bear", "Beaver", "Bison",
	"Bobcat", "Buffalo", "Camel", "Caribou", "Cheetah", "Cobra", "Condor", "Cougar",
	"Coyote", "Crane", "Crow", "Dolphin", "Eagle", "Falcon", "Ferret", "Fox",
	"Gazelle", "Gecko", "Gorilla", "Hawk", "Hedgehog", "Heron", "Hyena", "Ibis",
	"Jackal", "Jaguar", "Kangaroo", "Koala", "Lemur", "Leopard", "Lion", "Lynx",
	"Mongoose", "Moose", "Narwhal", "Ocelot", "Octopus", "Orca", "Otter", "Owl",
	"Panther", "Pelican", "Puma", "Python", "Raven", "Rhino", "Scorpion", "Shark",
	"Sparrow", "Stingray", "Tiger", "Viper", "Walrus", "Weasel", "Wolf", "Wolverine",
}

// theme 替代代號字庫，每組三個字表
type theme [3][]string

var themes = []theme{
	// spy
	{
		{"Stealth", "Shadow", "Phantom", "Ghost", "Viper", "Falcon", "Eagle", "Raven", "Wolf", "Panther"},
		{"Strike", "Blade", "Fury", "Storm", "Lightning", "Thunder", "Fire", "Ice", "Steel", "Diamond"},
		{"Protocol", "Directive", "Operation", "Mission", "Code", "Cipher", "Signal", "Vector", "Matrix", "Nexus"},
	},
	// mythological
	{
		{"Titan", "Phoenix", "Dragon", "Kraken", "Hydra", "Griffin", "Chimera", "Cerberus", "Pegasus", "Sphinx"},
		{"Prime", "Elite", "Supreme", "Ultra", "Mega", "Hyper", "Alpha", "Beta", "Gamma", "Delta"},
		{"Guardian", "Sentinel", "Defender", "Protector", "Warden", "Shield", "Armor", "Fortress", "Bastion", "Citadel"},
	},
	// tech
	{
		{"Quantum", "Neural", "Digital", "Cyber", "Nano", "Plasma", "Photon", "Electron", "Proton", "Neutron"},
		{"Core", "Matrix", "Array", "Grid", "Network", "System", "Engine", "Drive", "Processor", "Circuit"},
		{"Interface", "Protocol", "Algorithm", "Database", "Framework", "Platform", "Module", "Component", "Device", "Tool"},
	},
}

var descriptionTemplates = []string{
	"%s is a state-of-the-art surveillance device with quantum encryption capabilities.",
	"%s features advanced stealth technology and multi-spectrum camouflage systems.",
	"%s is equipped with neural interface technology for seamless agent integration.",
	"%s incorporates cutting-edge biometric authentication and self-defense mechanisms.",
	"%s utilizes nano-scale components for maximum portability and effectiveness.",
	"%s combines artificial intelligence with traditional espionage tools for optimal mission success.",
	"%s features electromagnetic pulse resistance and tactical communication arrays.",
	"%s is designed for extreme environments with adaptive camouflage capabilities.",
	"%s includes holographic projection technology and voice modulation systems.",
	"%s integrates satellite uplink capabilities with real-time data analysis tools.",
}
