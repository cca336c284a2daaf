package decoy

// Curated near-miss tables. Every entry carries its own descriptor value,
// never equal to the table key, so a decoy built from it fails the target
// dimension by construction. CreateDecoyFor still guards against key
// collisions before use.

// nearRhyme is a word that sounds close to a rhyme family without belonging
// to it. Most share the target vowel while ending on a different coda.
type nearRhyme struct {
	text string
	key  string
}

var nearRhymes = map[string][]nearRhyme{
	"ight": {
		{"time", "ime"}, {"mind", "ind"}, {"like", "ike"},
		{"wide", "ide"}, {"shine", "ine"}, {"knife", "ife"},
	},
	"ay": {
		{"fade", "ade"}, {"gaze", "aze"}, {"wave", "ave"},
		{"trail", "ail"}, {"faith", "aith"}, {"shade", "ade"},
	},
	"ain": {
		{"name", "ame"}, {"flame", "ame"}, {"range", "ange"},
		{"grace", "ace"}, {"trade", "ade"}, {"braid", "aid"},
	},
	"ow": {
		{"home", "ome"}, {"road", "oad"}, {"bone", "one"},
		{"soul", "oul"}, {"globe", "obe"}, {"foam", "oam"},
	},
	"eet": {
		{"need", "eed"}, {"theme", "eme"}, {"green", "een"},
		{"dream", "eam"}, {"scene", "ene"}, {"steal", "eal"},
	},
	"old": {
		{"bone", "one"}, {"soul", "oul"}, {"roam", "oam"},
		{"stove", "ove"}, {"coal", "oal"}, {"dome", "ome"},
	},
	"ire": {
		{"style", "yle"}, {"mile", "ile"}, {"rhyme", "yme"},
		{"climb", "imb"}, {"pride", "ide"}, {"shine", "ine"},
	},
	"ation": {
		{"passion", "assion"}, {"vision", "ision"}, {"ocean", "ean"},
		{"version", "ersion"}, {"mission", "ission"}, {"motion", "otion"},
	},
}

// allitDecoy is a word whose initial sound is easily confused with the
// target letter while being a different letter.
type allitDecoy struct {
	text   string
	letter string
}

var allitDecoys = map[string][]allitDecoy{
	"b": {
		{"prowl", "p"}, {"pulse", "p"}, {"plume", "p"},
		{"drum", "d"}, {"drift", "d"}, {"patter", "p"},
	},
	"m": {
		{"noble", "n"}, {"nimble", "n"}, {"nectar", "n"},
		{"navy", "n"}, {"velvet", "v"}, {"vivid", "v"},
	},
	"s": {
		{"cedar", "c"}, {"cellar", "c"}, {"cipher", "c"},
		{"zeal", "z"}, {"zenith", "z"}, {"zephyr", "z"},
	},
}

// generic is a distractor with a theme disjoint from every catalog theme and
// a rhyme key outside every catalog rhyme family. Used for patterns with no
// phonetic hook and as overflow when curated tables run dry.
type generic struct {
	text  string
	key   string
	theme string
}

var genericPool = []generic{
	{"pencil", "encil", "workshop"}, {"window", "indow", "household"},
	{"curtain", "urtain", "household"}, {"saucer", "aucer", "kitchen"},
	{"ladder", "adder", "workshop"}, {"carpet", "arpet", "household"},
	{"napkin", "apkin", "kitchen"}, {"kettle", "ettle", "kitchen"},
	{"cupboard", "upboard", "kitchen"}, {"hinge", "inge", "workshop"},
	{"doormat", "ormat", "household"}, {"basket", "asket", "household"},
	{"sponge", "onge", "kitchen"}, {"funnel", "unnel", "workshop"},
	{"thimble", "imble", "workshop"}, {"spatula", "atula", "kitchen"},
	{"awning", "awning", "household"}, {"gravel", "avel", "garden"},
	{"plywood", "ywood", "workshop"}, {"mulch", "ulch", "garden"},
	{"trowel", "owel", "garden"}, {"lantern", "antern", "household"},
	{"drawer", "awer", "household"}, {"teapot", "eapot", "kitchen"},
	{"whisk", "isk", "kitchen"}, {"ledger", "edger", "workshop"},
	{"stapler", "apler", "workshop"}, {"folder", "older", "workshop"},
	{"pillow", "illow", "household"}, {"blanket", "anket", "household"},
	{"faucet", "aucet", "kitchen"}, {"skillet", "illet", "kitchen"},
	{"mitten", "itten", "household"}, {"zipper", "ipper", "household"},
	{"button", "utton", "household"}, {"velcro", "elcro", "workshop"},
	{"gutter", "utter", "household"}, {"shovel", "ovel", "garden"},
	{"rake", "ake", "garden"}, {"hose", "ose", "garden"},
	{"fence", "ence", "garden"}, {"shed", "ed", "garden"},
	{"compost", "ompost", "garden"}, {"sprout", "out", "garden"},
	{"crumb", "umb", "kitchen"}, {"grater", "ater", "kitchen"},
	{"apron", "apron", "kitchen"}, {"broom", "oom", "household"},
}
