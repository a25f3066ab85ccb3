package rules

// DefaultSchema returns the built-in category schema. Declaration order is
// the priority tie-break, so entries within one priority tier must keep
// their order.
func DefaultSchema() Schema {
	return Schema{Rules: defaultRules(), Groups: defaultGroups()}
}

func pats(exprs ...string) []Matcher {
	matchers := make([]Matcher, len(exprs))
	for i, expr := range exprs {
		matchers[i] = MustPattern(expr)
	}
	return matchers
}

func defaultRules() []Rule {
	return []Rule{
		// Food delivery apps. Highest tier so "uber eats" and friends win
		// before the broader rideshare and restaurant vocabularies.
		{
			Label:    "Uber Eats",
			Keywords: []string{"ubereats", "uber eats", "uber canada/ubereats", "uber* eats"},
			Patterns: pats(`uber.*eats`, `ubereats`),
			Color:    "#22d3ee", Icon: "🥡", Priority: 100,
		},
		{
			Label:    "DoorDash",
			Keywords: []string{"doordash", "door dash"},
			Patterns: pats(`door\s*dash`),
			Color:    "#ff3008", Icon: "🚪", Priority: 100,
		},
		{
			Label:    "Skip The Dishes",
			Keywords: []string{"skip the dishes", "skipthedishes", "skip dishes"},
			Patterns: pats(`skip.*dish`),
			Color:    "#ff6b00", Icon: "🍱", Priority: 100,
		},
		{
			Label:    "Fantuan",
			Keywords: []string{"fantuan", "fan tuan"},
			Patterns: pats(`fan\s*tuan`),
			Color:    "#e60012", Icon: "🥢", Priority: 100,
		},
		{
			Label:    "Hungry Panda",
			Keywords: []string{"hungry panda", "hungrypanda"},
			Patterns: pats(`hungry\s*panda`),
			Color:    "#ff6b6b", Icon: "🐼", Priority: 100,
		},

		// Rideshare and transportation.
		{
			Label: "Rideshare",
			Keywords: []string{
				"uber canada", "uber holdings", "lyft", "uberdirect",
				"uber trip", "ubertrip", "uber* trip", "uberonemem",
			},
			Patterns: pats(`uber\s*(?:canada|holdings|direct|trip)`, `ubertrip`, `lyft`),
			Excludes: pats(`eats`),
			Color:    "#000000", Icon: "🚗", Priority: 95,
		},
		{
			Label:    "Public Transit",
			Keywords: []string{"compass", "translink", "transit", "metro", "bus pass"},
			Patterns: pats(`compass\s*account`, `translink`),
			Color:    "#0072ce", Icon: "🚌", Priority: 80,
		},
		{
			Label: "Parking",
			Keywords: []string{
				"parking", "parkade", "easy park", "easypark", "paybyphone",
				"impark", "diamond parking",
			},
			Patterns: pats(`easy\s*park`, `pay\s*by\s*phone`, `park.*cp\d+`),
			Color:    "#6366f1", Icon: "🅿️", Priority: 80,
		},

		// Restaurants and dining.
		{
			Label: "Japanese Restaurants",
			Keywords: []string{
				"sushi", "ramen", "izakaya", "teriyaki", "tempura", "yakitori",
				"tonkatsu", "udon", "soba", "donburi", "bento", "omakase",
				"teppanyaki", "robata", "kaiseki", "gyudon", "katsu",
				"gaya sushi", "nemo sushi", "saku", "miku", "minami",
				"guu", "kingyo", "jinya", "santouka", "marutama", "hokkaido ramen",
				"kintaro", "menya", "taishoken",
			},
			Patterns: pats(`sushi`, `ramen`, `izakaya`, `japanese`, `\bjapan\b`, `teriyaki`, `gyoza`),
			Color:    "#dc2626", Icon: "🍣", Priority: 85,
		},
		{
			Label: "Chinese Restaurants",
			Keywords: []string{
				"chinese", "dim sum", "dumpling", "wonton", "chow mein",
				"fried rice", "szechuan", "sichuan", "cantonese", "hotpot",
				"hot pot", "mapo", "kung pao", "peking", "beijing",
				"peking restaurant", "manchu wok", "panda express",
				"chen's", "golden dragon", "jade garden", "dynasty",
				"t&t", "hons", "kirin",
			},
			Patterns: pats(`chinese`, `peking`, `szechuan`, `dim\s*sum`, `\bwok\b`,
				`dragon.*(?:restaurant|kitchen|palace)`),
			Excludes: pats(`wok\s*box`),
			Color:    "#f59e0b", Icon: "🥟", Priority: 85,
		},
		{
			Label: "Vietnamese Restaurants",
			Keywords: []string{
				"pho", "vietnamese", "banh mi", "bun", "saigon", "hanoi",
				"viet", "vermicelli", "spring roll",
				"le petit saigon", "pho hoa", "cau tre",
			},
			Patterns: pats(`pho\s`, `vietnamese`, `\bviet\b`, `saigon`, `banh\s*mi`),
			Color:    "#84cc16", Icon: "🍜", Priority: 85,
		},
		{
			Label: "Korean Restaurants",
			Keywords: []string{
				"korean", "bbq", "bulgogi", "bibimbap", "kimchi", "kbbq",
				"galbi", "soju", "jjigae", "samgyeopsal", "gopchang",
				"seoul", "korea house",
			},
			Patterns: pats(`korean`, `\bbbq\b.*(?:house|restaurant|grill)`, `bulgogi`, `bibimbap`),
			Color:    "#ef4444", Icon: "🥘", Priority: 85,
		},
		{
			Label: "Indian Restaurants",
			Keywords: []string{
				"indian", "curry", "tandoori", "naan", "masala", "biryani",
				"tikka", "samosa", "pakora", "dosa", "thali", "dal",
				"bombay", "punjabi", "mughal", "taj",
			},
			Patterns: pats(`indian`, `curry\s*(?:house|palace|garden)`, `tandoori`, `masala`),
			Color:    "#f97316", Icon: "🍛", Priority: 85,
		},
		{
			Label: "Thai Restaurants",
			Keywords: []string{
				"thai", "pad thai", "tom yum", "green curry", "satay",
				"bangkok", "basil", "mango sticky", "larb",
			},
			Patterns: pats(`thai`, `bangkok`, `pad\s*thai`),
			Color:    "#a855f7", Icon: "🍲", Priority: 85,
		},
		{
			Label: "Mexican Restaurants",
			Keywords: []string{
				"mexican", "taco", "burrito", "quesadilla", "nacho",
				"enchilada", "fajita", "guacamole", "salsa", "tortilla",
				"chipotle", "taco bell", "taco time", "mucho burrito",
				"la taqueria", "cantina",
			},
			Patterns: pats(`mexican`, `taco`, `burrito`, `cantina`),
			Color:    "#22c55e", Icon: "🌮", Priority: 85,
		},
		{
			Label: "Italian Restaurants",
			Keywords: []string{
				"italian", "pizza", "pasta", "pizzeria", "trattoria",
				"ristorante", "lasagna", "risotto", "gnocchi", "gelato",
				"olive garden", "boston pizza", "pizza hut", "dominos",
				"little caesars", "panago", "fresh slice",
			},
			Patterns: pats(`italian`, `pizza`, `pasta`, `trattoria`),
			Color:    "#16a34a", Icon: "🍕", Priority: 85,
		},
		{
			Label: "Fast Food",
			Keywords: []string{
				"mcdonald", "mcdonalds", "burger king", "wendys", "wendy's",
				"kfc", "popeyes", "chick-fil-a", "five guys", "fatburger",
				"white castle", "in-n-out", "jack in the box", "carl's jr",
				"hardees", "sonic", "dairy queen", "arby's", "taco bell",
				"subway", "quiznos", "mr sub", "firehouse subs", "jimmy johns",
				"a and w", "a&w", "triple o", "white spot", "mary brown",
				"harveys", "new york fries", "opa",
			},
			Patterns: pats(`mcdonald`, `burger\s*king`, `wendy'?s`, `a\s*(?:and|&)\s*w`, `kfc`, `subway`),
			Color:    "#fbbf24", Icon: "🍟", Priority: 82,
		},
		{
			Label: "Fish & Chips",
			Keywords: []string{
				"fish and chips", "fish & chips", "fish n chips",
				"cockney kings", "pajo's", "go fish", "c-lovers",
			},
			Patterns: pats(`fish.*chip`, `cockney`),
			Color:    "#0891b2", Icon: "🐟", Priority: 85,
		},
		{
			Label: "Cafes & Coffee",
			Keywords: []string{
				"cafe", "café", "coffee", "starbucks", "tim hortons", "tims",
				"second cup", "blenz", "jj bean", "waves", "matchstick",
				"revolver", "prado", "elysian", "kafka", "moja", "bean around",
				"trees organic", "caffe", "espresso", "latte", "cappuccino",
				"bakery", "patisserie", "bastion cafe",
			},
			Patterns: pats(`caf[eé]`, `coffee`, `starbucks`, `tim\s*horton`, `bakery`, `espresso`),
			Color:    "#92400e", Icon: "☕", Priority: 83,
		},
		{
			Label: "Restaurants (General)",
			Keywords: []string{
				"restaurant", "dining", "grill", "kitchen", "bistro",
				"eatery", "diner", "pub", "tavern", "bar & grill",
				"steakhouse", "chophouse", "seafood", "buffet",
				"earls", "cactus club", "joeys", "brown's", "moxies",
				"milestones", "the keg", "original joes", "montanas",
				"red lobster", "the old spaghetti factory", "denny's",
				"ihop", "applebee's", "chili's", "tgi friday",
				"food & beverage", "food and beverage", "catering",
				"garlic & chili", "garlic and chili",
			},
			// tst- is a common restaurant POS prefix.
			Patterns: pats(`restaurant`, `\bgrill\b`, `\bbistro\b`, `\bkitchen\b`, `\bdiner\b`,
				`tst-`, `food.*beverage`),
			Color: "#f43f5e", Icon: "🍽️", Priority: 75,
		},

		// Groceries and food shopping.
		{
			Label: "Groceries",
			Keywords: []string{
				"costco", "walmart", "superstore", "real canadian superstore",
				"safeway", "save-on", "save on foods", "whole foods", "no frills",
				"loblaws", "t&t", "t & t", "h mart", "hmart", "kim's mart",
				"fresh st", "fresh street", "iga", "thrifty foods", "buy-low",
				"sunrise market", "persia foods", "choices market", "nesters",
				"famous foods", "donald's market", "independent grocer",
				"instacart", "cornershop", "voila",
				"grocery", "supermarket", "market", "harvest",
			},
			Patterns: pats(`costco`, `superstore`, `safeway`, `walmart`, `instacart`,
				`grocery`, `\bmarket\b`, `harvest.*grocery`),
			Color: "#84cc16", Icon: "🛒", Priority: 78,
		},
		{
			Label: "Convenience Stores",
			Keywords: []string{
				"7-eleven", "7 eleven", "circle k", "mac's", "hasty market",
				"variety", "corner store", "snack shop", "quickie mart",
			},
			Patterns: pats(`7.*eleven`, `circle\s*k`, `convenience`),
			Excludes: pats(`esso`, `shell`, `gas`), // those belong to Gas
			Color:    "#38bdf8", Icon: "🏪", Priority: 72,
		},

		// Shopping and retail.
		{
			Label:    "Amazon",
			Keywords: []string{"amazon", "amzn", "amazon.ca", "amazon prime", "amzn mktp"},
			Patterns: pats(`amazon`, `amzn`),
			Color:    "#ff9900", Icon: "📦", Priority: 90,
		},
		{
			Label: "Clothing & Fashion",
			Keywords: []string{
				"uniqlo", "h&m", "zara", "gap", "old navy", "forever 21",
				"nordstrom", "the bay", "hudson's bay", "simons", "aritzia",
				"lululemon", "nike", "adidas", "foot locker", "sportchek",
				"winners", "marshalls", "tj maxx", "value village", "jack jones",
				"jack & jones", "roots", "american eagle", "banana republic",
				"marks work", "moore's",
			},
			Patterns: pats(`uniqlo`, `h\s*&\s*m`, `clothing`, `apparel`, `jack.*jones`),
			Color:    "#ec4899", Icon: "👕", Priority: 80,
		},
		{
			Label: "Electronics",
			Keywords: []string{
				"best buy", "bestbuy", "apple store", "microsoft store",
				"london drugs", "staples", "memory express", "canada computers",
				"ncix", "newegg", "visions electronics", "the source",
			},
			Patterns: pats(`best\s*buy`, `electronics`, `computer`),
			Color:    "#3b82f6", Icon: "📱", Priority: 80,
		},
		{
			Label: "Home & Hardware",
			Keywords: []string{
				"ikea", "home depot", "canadian tire", "home hardware",
				"rona", "lowe's", "lowes", "home sense", "bed bath",
				"pottery barn", "crate barrel", "williams sonoma", "kitchen stuff",
			},
			Patterns: pats(`ikea`, `home\s*depot`, `canadian\s*tire`, `hardware`),
			Color:    "#f97316", Icon: "🏠", Priority: 80,
		},
		{
			Label: "Books & Education",
			Keywords: []string{
				"bookstore", "book store", "chapters", "indigo", "coles",
				"amazon books", "audible", "ubc bookstore", "university bookstore",
				"textbook", "academic",
			},
			Patterns: pats(`book\s*store`, `bookstore`, `chapters`, `indigo`),
			Color:    "#8b5cf6", Icon: "📚", Priority: 78,
		},
		{
			Label: "Shopping (General)",
			Keywords: []string{
				"ebay", "etsy", "alibaba", "aliexpress", "wish",
				"dollarama", "dollar tree", "dollar store", "daiso",
			},
			Patterns: pats(`ebay`, `etsy`, `shopping`),
			Color:    "#a855f7", Icon: "🛍️", Priority: 70,
		},

		// Gas and auto.
		{
			Label: "Gas",
			Keywords: []string{
				"esso", "shell", "petro canada", "petro-canada", "chevron",
				"husky", "co-op gas", "costco gas", "mobil", "pioneer",
				"ultramar", "irving", "domo", "fas gas",
			},
			Patterns: pats(`esso`, `shell.*gas`, `petro`, `chevron`, `\bgas\b`, `fuel`),
			Color:    "#eab308", Icon: "⛽", Priority: 85,
		},
		{
			Label: "Auto & Vehicle",
			Keywords: []string{
				"icbc", "autoplan", "driver services", "mvi", "aircare",
				"oil change", "mr lube", "jiffy lube", "canadian tire auto",
				"kal tire", "ok tire", "active green ross", "midas",
				"speedy auto", "auto repair", "car wash", "detail",
			},
			Patterns: pats(`driver\s*service`, `auto.*(?:repair|service)`, `car\s*wash`,
				`\btire\b`, `oil\s*change`),
			Color: "#64748b", Icon: "🚙", Priority: 80,
		},

		// Entertainment and gaming.
		{
			Label: "Gaming",
			Keywords: []string{
				"steam", "playstation", "psn", "xbox", "nintendo", "epic games",
				"riot games", "blizzard", "ea games", "ubisoft", "lootbar",
				"kuro games", "mihoyo", "hoyoverse", "genshin", "twitch",
			},
			Patterns: pats(`steam`, `playstation`, `\bpsn\b`, `xbox`, `nintendo`, `lootbar`, `games?\b`),
			Color:    "#8b5cf6", Icon: "🎮", Priority: 85,
		},
		{
			Label: "Movies & Events",
			Keywords: []string{
				"cinema", "cineplex", "theatre", "theater", "movie", "imax",
				"landmark cinema", "silvercity", "scotiabank theatre",
				"ticketmaster", "stubhub", "viagogo", "eventbrite", "live nation",
				"concert", "pne", "exhibition", "playland",
			},
			Patterns: pats(`cinema`, `theatre`, `theater`, `movie`, `ticket`, `concert`, `pne`, `viagogo`),
			Color:    "#ec4899", Icon: "🎬", Priority: 82,
		},

		// Subscriptions and digital services.
		{
			Label: "Subscriptions",
			Keywords: []string{
				"chatgpt", "openai", "claude", "anthropic", "midjourney",
				"copilot", "github copilot", "perplexity", "cursor",
				"notion", "todoist", "evernote", "dropbox", "slack", "zoom",
				"adobe", "canva", "figma", "asana", "trello", "linear",
				"google one", "google storage", "google premium", "icloud",
				"microsoft 365", "office 365", "onedrive",
				"netflix", "disney plus", "disney+", "crave", "amazon prime video",
				"hulu", "paramount+", "apple tv", "youtube premium", "spotify",
				"apple music", "amazon music", "tidal", "deezer", "audible",
				"city burnaby", "burnaby recreation", "burnaby recreatio",
				"city vancouver", "vancouver recreation", "city recreation",
				"christine sinclair", "community centre", "rec centre",
				"apple.com/bill", "google play", "app store",
				"subscription", "membership", "premium", "patreon",
			},
			Patterns: pats(`openai`, `chatgpt`, `claude`, `anthropic`, `midjourney`,
				`adobe`, `microsoft\s*365`, `netflix`, `disney.*\+`, `spotify`,
				`youtube\s*premium`, `apple\s*music`, `apple\.com.*bill`,
				`google\s*(?:play|one|premium)`, `city\s*(?:of\s*)?burnaby`,
				`burnaby\s*recreatio`, `christine\s*sincl`, `subscription`, `membership`),
			Color: "#8b5cf6", Icon: "🔄", Priority: 88,
		},

		// Health and fitness.
		{
			Label: "Recreation & Fitness",
			Keywords: []string{
				"fitness", "gym", "goodlife", "anytime fitness",
				"fit4less", "planet fitness", "ymca", "ywca",
				"yoga", "pilates", "crossfit", "swimming", "pool",
				"sport", "athletic", "workout", "studio",
			},
			Patterns: pats(`fitness`, `\bgym\b`, `yoga`, `pool`, `workout`),
			Excludes: pats(`burnaby`, `city\s+of`, `membership`), // those belong to Subscriptions
			Color:    "#06b6d4", Icon: "🏃", Priority: 80,
		},
		{
			Label: "Health & Pharmacy",
			Keywords: []string{
				"pharmacy", "shoppers drug mart", "rexall", "london drugs",
				"pharmasave", "cvs", "walgreens", "medical", "clinic",
				"doctor", "dentist", "optometrist", "vision", "dental",
				"health", "wellness", "massage", "physio", "chiropractic",
				"rise sleep",
			},
			Patterns: pats(`pharmacy`, `drug\s*mart`, `medical`, `clinic`, `health`, `sleep`),
			Color:    "#14b8a6", Icon: "💊", Priority: 78,
		},

		// Fees and charges.
		{
			Label: "Fees & Interest",
			Keywords: []string{
				"interest charge", "interest -", "annual fee", "service fee",
				"late fee", "overdraft", "nsf", "transfer fee", "foreign transaction",
			},
			Patterns: pats(`interest\s*charge`, `annual\s*fee`, `service\s*fee`, `late\s*fee`, `fee\s*-`),
			Color:    "#ef4444", Icon: "💳", Priority: 95,
		},

		// Travel and accommodation.
		{
			Label: "Travel",
			Keywords: []string{
				"airbnb", "vrbo", "hotel", "motel", "inn", "hostel",
				"marriott", "hilton", "hyatt", "best western", "holiday inn",
				"airline", "air canada", "westjet", "united", "delta",
				"expedia", "booking.com", "hotels.com", "kayak", "trivago",
				"flight", "airport",
			},
			Patterns: pats(`hotel`, `airbnb`, `airline`, `flight`, `travel`, `booking`),
			Color:    "#0ea5e9", Icon: "✈️", Priority: 82,
		},
	}
}

func defaultGroups() []Group {
	return []Group{
		// Food delivery apps stay separate on purpose.
		{
			Name: "Restaurants",
			Children: []string{
				"Japanese Restaurants",
				"Chinese Restaurants",
				"Vietnamese Restaurants",
				"Korean Restaurants",
				"Indian Restaurants",
				"Thai Restaurants",
				"Mexican Restaurants",
				"Italian Restaurants",
				"Fast Food",
				"Fish & Chips",
				"Cafes & Coffee",
				"Restaurants (General)",
			},
			Color: "#f43f5e",
			Icon:  "🍽️",
		},
	}
}
