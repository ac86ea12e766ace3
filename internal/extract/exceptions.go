package extract

// exceptions lists irregular inflections per category.
var exceptions = map[Category]map[string]string{
	Noun: {
		"men": "man", "women": "woman", "children": "child", "feet": "foot", "teeth": "tooth",
		"geese": "goose", "mice": "mouse", "lice": "louse", "oxen": "ox",
		"criteria": "criterion", "phenomena": "phenomenon", "analyses": "analysis",
		"theses": "thesis", "crises": "crisis", "hypotheses": "hypothesis", "diagnoses": "diagnosis",
		"axes": "axis", "indices": "index", "matrices": "matrix", "vertices": "vertex",
		"appendices": "appendix", "cacti": "cactus", "fungi": "fungus", "nuclei": "nucleus",
		"radii": "radius", "stimuli": "stimulus", "syllabi": "syllabus", "alumni": "alumnus",
		"knives": "knife", "wives": "wife", "lives": "life", "leaves": "leaf", "halves": "half",
		"wolves": "wolf", "shelves": "shelf", "thieves": "thief", "loaves": "loaf", "calves": "calf",
		"selves": "self", "elves": "elf", "scarves": "scarf", "heroes": "hero", "potatoes": "potato",
		"tomatoes": "tomato", "echoes": "echo", "buses": "bus", "gases": "gas", "news": "news",
		"series": "series", "species": "species", "means": "means", "physics": "physics",
		"mathematics": "mathematics", "lens": "lens",
	},
	Verb: {
		"am": "be", "is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
		"has": "have", "had": "have", "having": "have", "does": "do", "did": "do", "done": "do",
		"went": "go", "gone": "go", "goes": "go", "ran": "run", "saw": "see", "seen": "see",
		"made": "make", "took": "take", "taken": "take", "came": "come", "knew": "know",
		"known": "know", "got": "get", "gotten": "get", "gave": "give", "given": "give",
		"found": "find", "thought": "think", "told": "tell", "became": "become", "left": "leave",
		"felt": "feel", "brought": "bring", "began": "begin", "begun": "begin", "kept": "keep",
		"held": "hold", "wrote": "write", "written": "write", "stood": "stand", "heard": "hear",
		"meant": "mean", "met": "meet", "paid": "pay", "sat": "sit", "spoke": "speak",
		"spoken": "speak", "led": "lead", "grew": "grow", "grown": "grow", "lost": "lose",
		"fell": "fall", "fallen": "fall", "sent": "send", "built": "build",
		"understood": "understand", "drew": "draw", "drawn": "draw", "broke": "break",
		"broken": "break", "spent": "spend", "rose": "rise", "risen": "rise", "drove": "drive",
		"driven": "drive", "bought": "buy", "wore": "wear", "worn": "wear", "chose": "choose",
		"chosen": "choose", "sought": "seek", "threw": "throw", "thrown": "throw", "caught": "catch",
		"dealt": "deal", "won": "win", "fought": "fight", "taught": "teach", "ate": "eat",
		"eaten": "eat", "sang": "sing", "sung": "sing", "slept": "sleep", "sold": "sell",
		"forgot": "forget", "forgotten": "forget", "flew": "fly", "flown": "fly", "swam": "swim",
		"swum": "swim", "hid": "hide", "hidden": "hide", "shook": "shake", "shaken": "shake",
		"rode": "ride", "ridden": "ride", "stole": "steal", "stolen": "steal", "struck": "strike",
		"bore": "bear", "borne": "bear", "born": "bear", "froze": "freeze", "frozen": "freeze",
		"bit": "bite", "bitten": "bite", "lay": "lie", "lain": "lie", "laid": "lay", "woke": "wake",
		"woken": "wake", "fed": "feed", "fled": "flee", "bent": "bend", "lent": "lend",
		"shot": "shoot", "hung": "hang", "dug": "dig", "wept": "weep", "swept": "sweep",
		"knelt": "kneel", "dreamt": "dream", "learnt": "learn", "burnt": "burn", "spelt": "spell",
		"spilt": "spill", "smelt": "smell", "leapt": "leap", "crept": "creep", "sprang": "spring",
		"sprung": "spring", "drank": "drink", "drunk": "drink", "rang": "ring", "rung": "ring",
		"sank": "sink", "sunk": "sink", "shrank": "shrink", "forbade": "forbid",
		"forbidden": "forbid", "forgave": "forgive", "forgiven": "forgive", "undertook": "undertake",
		"overcame": "overcome", "withdrew": "withdraw", "withdrawn": "withdraw", "arose": "arise",
		"arisen": "arise", "awoke": "awake", "dying": "die", "lying": "lie", "tying": "tie",
		"stuck": "stick", "strove": "strive", "swore": "swear", "sworn": "swear", "tore": "tear",
		"torn": "tear", "wound": "wind", "wove": "weave", "woven": "weave", "planned": "plan",
		"stopped": "stop", "occurred": "occur", "preferred": "prefer", "referred": "refer",
		"admitted": "admit", "committed": "commit", "controlled": "control", "travelled": "travel",
	},
	Adjective: {
		"better": "good", "best": "good", "worse": "bad", "worst": "bad", "further": "far",
		"farther": "far", "furthest": "far", "farthest": "far", "more": "much", "most": "much",
		"less": "little", "least": "little", "elder": "old", "eldest": "old", "bigger": "big",
		"biggest": "big", "hotter": "hot", "hottest": "hot", "fatter": "fat", "fattest": "fat",
		"thinner": "thin", "thinnest": "thin", "wetter": "wet", "wettest": "wet", "sadder": "sad",
		"saddest": "sad", "redder": "red", "reddest": "red", "madder": "mad", "maddest": "mad",
		"fitter": "fit", "fittest": "fit", "flatter": "flat", "flattest": "flat",
	},
	Adverb: {
		"best": "well", "better": "well", "further": "far", "farther": "far", "hardest": "hard",
		"harder": "hard",
	},
}
