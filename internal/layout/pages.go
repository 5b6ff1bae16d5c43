package layout

// Default returns the compiled-in page table for the current catalog scans.
//
// Every call returns a fresh table, so callers may modify the result.
func Default() Table {
	return Table{
		// Thai Jasmine Rice (1 product, photo at bottom center)
		2: manual(2,
			crop("rice-001", 780, 80, 1480, 1160),
		),
		// Duck Sauce (1 product, two buckets center)
		3: manual(3,
			crop("sauce-001", 580, 150, 1380, 1090),
		),
		// Rice & Rice Sticks (3x2 grid)
		4: grid(4, Rect{120, 20, 1520, 1220}, 2, 3, 0.55,
			"rice-002", "rice-003", "rice-004",
			"rice-005", "rice-006", "rice-007",
		),
		// Panda Food Pails (3 across, 1 row)
		5: grid(5, Rect{220, 20, 1400, 1220}, 1, 3, 0.60,
			"pail-001", "pail-002", "pail-003",
		),
		// Soup Bowls multi-brand (representative photos)
		7: manual(7,
			crop("soup-001", 220, 20, 510, 400),
			crop("soup-002", 220, 400, 510, 810),
			crop("soup-003", 220, 810, 510, 1220),
			crop("soup-004", 780, 620, 1050, 930),
			crop("soup-005", 780, 930, 1050, 1220),
			crop("soup-006", 1050, 20, 1340, 420),
			crop("soup-007", 1050, 420, 1340, 810),
			crop("soup-008", 1050, 810, 1340, 1220),
		),
		// Potato Starch (single product, center)
		8: manual(8,
			crop("dry-001", 550, 100, 1380, 1140),
		),
		// Paper Squat Grocery Bags (3 cols)
		9: grid(9, Rect{130, 20, 1520, 1220}, 3, 3, 0.50,
			"bag-007", "bag-008", "bag-009",
			"bag-010", "bag-011", "bag-012",
			"bag-013", "bag-014", "",
		),
		// Fish Sauce (single product)
		10: manual(10,
			crop("sauce-002", 550, 150, 1380, 1090),
		),
		// Multi-brand Food Pails (5 sizes, photos show brand variants)
		11: manual(11,
			crop("pail-004", 180, 20, 490, 420),
			crop("pail-005", 490, 20, 780, 420),
			crop("pail-006", 780, 20, 1060, 420),
			crop("pail-007", 1060, 20, 1340, 420),
			crop("pail-008", 1060, 420, 1340, 900),
		),
		// Deli Containers multi-brand (PANDA, FH, JN, YX, Tiger per size)
		12: manual(12,
			crop("deli-001", 100, 20, 360, 310),
			crop("deli-002", 100, 310, 360, 620),
			crop("deli-003", 100, 620, 360, 930),
			crop("deli-004", 100, 930, 360, 1220),
			crop("deli-005", 360, 20, 620, 310),
			crop("deli-006", 360, 310, 620, 620),
			crop("deli-007", 360, 620, 620, 930),
			crop("deli-008", 360, 930, 620, 1220),
			crop("deli-009", 620, 20, 880, 310),
			crop("deli-010", 620, 310, 880, 620),
			crop("deli-011", 620, 620, 880, 930),
			crop("deli-012", 620, 930, 880, 1220),
			crop("deli-016", 880, 620, 1100, 930),
		),
		// Soup Containers multi-brand (4 cols per size row)
		13: manual(13,
			crop("soup-009", 90, 20, 340, 310),
			crop("soup-010", 340, 20, 580, 310),
			crop("soup-011", 580, 20, 820, 310),
			crop("soup-012", 820, 20, 1060, 310),
			crop("soup-013", 1060, 20, 1300, 310),
			crop("soup-014", 1300, 20, 1520, 310),
		),
		// PANDA deli containers (4 cols grid)
		14: manual(14,
			crop("deli-013", 980, 20, 1260, 310),
			crop("deli-014", 980, 310, 1260, 620),
			crop("deli-015", 1260, 20, 1500, 310),
		),
		// JN & Tiger deli containers
		19: manual(19,
			crop("deli-017", 50, 20, 280, 310),
			crop("deli-018", 280, 20, 500, 310),
			crop("deli-019", 280, 310, 500, 620),
		),
		// Paper Shopping Bags (3x2 grid)
		21: grid(21, Rect{50, 20, 1100, 1220}, 2, 3, 0.55,
			"bag-001", "bag-002", "bag-003",
			"bag-004", "bag-005", "bag-006",
		),
		// Portion Cups & Lids (3x3 grid)
		23: grid(23, Rect{200, 20, 1550, 1220}, 3, 3, 0.50,
			"cup-001", "cup-002", "cup-003",
			"cup-004", "cup-005", "cup-006",
			"cup-007", "cup-008", "cup-009",
		),
		// Kraft Eco Boxes (3 cols, 2 rows)
		24: manual(24,
			crop("eco-001", 180, 20, 530, 415),
			crop("eco-002", 180, 415, 530, 830),
			crop("eco-003", 530, 20, 880, 415),
			crop("eco-004", 530, 415, 880, 830),
			crop("eco-005", 880, 20, 1200, 415),
		),
		// Tableware 2.5g (3x3 grid)
		25: grid(25, Rect{200, 20, 1550, 1220}, 3, 3, 0.45,
			"tw-001", "tw-002", "tw-003",
			"tw-004", "tw-005", "tw-006",
			"tw-007", "tw-008", "",
		),
		// Tableware 5g Heavy (3x3 grid)
		26: grid(26, Rect{180, 20, 1550, 1220}, 3, 3, 0.45,
			"twh-001", "twh-002", "twh-003",
			"twh-004", "twh-005", "twh-006",
			"twh-007", "twh-008", "twh-009",
		),
		// Sushi Trays & Bento (4x3 grid)
		27: grid(27, Rect{170, 20, 1550, 1220}, 4, 3, 0.55,
			"sushi-001", "sushi-002", "sushi-003",
			"sushi-004", "sushi-005", "sushi-006",
			"sushi-007", "sushi-008", "sushi-009",
			"sushi-010", "sushi-011", "sushi-012",
		),
		// Sushi Rectangular Black (3x3, 7 products)
		28: grid(28, Rect{130, 20, 1520, 1220}, 3, 3, 0.50,
			"sushi-013", "sushi-014", "sushi-015",
			"sushi-016", "sushi-017", "sushi-018",
			"sushi-019", "", "",
		),
		// ClearSeal Containers (3 cols, 3 rows)
		29: grid(29, Rect{170, 20, 1550, 1220}, 3, 3, 0.55,
			"clear-001", "clear-002", "clear-003",
			"clear-004", "clear-005", "clear-006",
			"clear-007", "clear-008", "",
		),
		// Tamper Evident & Salad Bowls (4x3 grid)
		30: grid(30, Rect{170, 20, 1550, 1220}, 4, 3, 0.50,
			"tamper-001", "tamper-002", "tamper-003",
			"tamper-004", "tamper-005", "tamper-006",
			"tamper-007", "tamper-008", "tamper-009",
			"tamper-010", "tamper-011", "tamper-012",
		),
		// Catering Trays (2x3 grid: tray + lid pairs)
		31: manual(31,
			crop("cater-001", 200, 20, 620, 620),
			crop("cater-002", 620, 20, 1040, 620),
			crop("cater-003", 1040, 20, 1460, 620),
		),
		// Dry Goods misc (3x5 grid approx)
		32: grid(32, Rect{100, 20, 1580, 1220}, 5, 3, 0.50,
			"", "", "rice-009",
			"dry-002", "dry-003", "dry-004",
			"dry-005", "dry-006", "dry-007",
			"dry-008", "dry-009", "",
			"", "", "",
		),
		// Cooking Oils/Vinegar/Misc (3x3 grid)
		33: grid(33, Rect{120, 20, 1520, 1220}, 3, 3, 0.50,
			"oil-001", "oil-002", "dry-010",
			"dry-011", "oil-004", "oil-003",
			"", "", "dry-012",
		),
		// Mixed items (3x3 grid)
		34: grid(34, Rect{120, 20, 1550, 1220}, 3, 3, 0.50,
			"dry-013", "dry-014", "dry-015",
			"dry-016", "dry-017", "rice-008",
			"sauce-025", "dry-018", "oil-010",
		),
		// Haday Sauces (3x3 grid)
		35: grid(35, Rect{150, 20, 1550, 1220}, 3, 3, 0.50,
			"sauce-003", "sauce-004", "sauce-005",
			"sauce-006", "sauce-007", "sauce-008",
			"", "", "sauce-009",
		),
		// LKK Sauces (3x2 grid)
		36: grid(36, Rect{170, 20, 1520, 1220}, 3, 2, 0.50,
			"sauce-010", "sauce-011",
			"sauce-012", "sauce-013",
			"sauce-014", "sauce-015",
		),
		// KC Sauces (3x3 grid)
		37: grid(37, Rect{60, 20, 1520, 1220}, 3, 3, 0.50,
			"sauce-016", "sauce-017", "sauce-018",
			"sauce-019", "sauce-020", "sauce-021",
			"sauce-022", "sauce-023", "sauce-024",
		),
		// Mixed (baking soda, seasonings, oils - 4x3 grid)
		38: grid(38, Rect{60, 20, 1540, 1220}, 4, 3, 0.50,
			"dry-019", "dry-020", "dry-021",
			"sauce-026", "sauce-027", "sauce-028",
			"dry-022", "oil-005", "oil-006",
			"", "", "oil-007",
		),
		// Canned items + oils (3x3 grid)
		39: grid(39, Rect{80, 20, 1540, 1220}, 3, 3, 0.50,
			"can-001", "can-002", "can-003",
			"can-004", "can-005", "can-006",
			"can-007", "oil-008", "oil-009",
		),
		// Dry goods/spices (3x3 grid)
		40: grid(40, Rect{80, 20, 1540, 1220}, 3, 3, 0.50,
			"dry-023", "dry-024", "dry-025",
			"dry-026", "dry-027", "dry-028",
			"dry-029", "dry-030", "dry-031",
		),
		// Canned Foods (3x3 grid)
		41: grid(41, Rect{150, 20, 1550, 1220}, 3, 3, 0.50,
			"can-008", "can-009", "can-010",
			"can-011", "can-012", "sauce-035",
			"can-013", "can-014", "can-015",
		),
		// Glassine/Foil bags + Film Wrap (3x3 grid)
		42: grid(42, Rect{160, 20, 1550, 1220}, 4, 3, 0.50,
			"wrap-001", "wrap-002", "wrap-003",
			"wrap-004", "wrap-005", "wrap-006",
			"", "", "wrap-007",
			"wrap-008", "wrap-009", "wrap-010",
		),
		// Aluminum Trays (3x4 grid, trays + lids)
		43: grid(43, Rect{150, 20, 1550, 1220}, 4, 3, 0.55,
			"alum-001", "alum-002", "alum-003",
			"alum-004", "alum-005", "alum-006",
			"", "", "",
			"", "", "",
		),
		// Steam Table Pans (3x3 grid)
		44: grid(44, Rect{170, 20, 1550, 1220}, 3, 3, 0.55,
			"alum-007", "alum-008", "alum-009",
			"alum-010", "alum-011", "alum-012",
			"alum-013", "alum-014", "",
		),
		// Foam Containers (3x3 grid)
		45: grid(45, Rect{100, 20, 1540, 1220}, 3, 3, 0.55,
			"foam-001", "foam-002", "foam-003",
			"foam-004", "foam-005", "foam-006",
			"foam-007", "foam-008", "",
		),
		// PP & Foam Containers (4x3 grid)
		46: grid(46, Rect{80, 20, 1540, 1220}, 4, 3, 0.50,
			"foam-009", "foam-010", "foam-011",
			"foam-012", "foam-013", "foam-014",
			"foam-015", "foam-016", "foam-017",
			"", "foam-018", "foam-019",
		),
		// Sauce Packets & Seasonings (4x4 grid, no header)
		47: grid(47, Rect{50, 20, 1550, 1220}, 4, 4, 0.45,
			"sauce-029", "sauce-030", "sauce-031", "sauce-032",
			"sauce-033", "sauce-034", "", "",
			"", "", "", "",
			"dry-032", "oil-011", "", "",
		),
	}
}
