package classification

// Category codes. The values are the canonical Indonesian codes used by the
// intake forms, so an explicit waste-type tag and a keyword-detected
// category land in the same namespace.
const (
	CategoryHazardous    = "b3"
	CategoryPlastic      = "plastik"
	CategoryOrganic      = "organik"
	CategoryPaper        = "kertas"
	CategoryMetal        = "logam"
	CategoryGlass        = "kaca"
	CategoryMixed        = "campuran"
	CategoryRubber       = "karet"
	CategoryTextile      = "tekstil"
	CategoryWood         = "kayu"
	CategoryCeramic      = "keramik"
	CategoryElectronic   = "elektronik"
	CategoryMedical      = "medis"
	CategoryUnclassified = "tidak_terdeteksi"
)

// Category is one entry of the classification taxonomy.
type Category struct {
	Code     string
	Keywords []string
}

// Taxonomy is the ordered classification table. The order is a contract:
// the first category whose keyword set matches the description wins, so
// hazardous terms are checked before the generic ones. Reordering entries
// changes classification outcomes for ambiguous text.
var Taxonomy = []Category{
	{
		Code: CategoryHazardous,
		Keywords: []string{
			// general
			"b3", "berbahaya", "beracun", "toxic", "hazardous", "limbah b3",
			"bahan berbahaya", "bahan beracun", "limbah berbahaya",
			"limbah beracun", "zat berbahaya", "zat beracun",

			// medical
			"jarum suntik", "suntik", "infus bekas", "medis", "kesehatan",
			"perban bekas", "alat medis", "sarana kesehatan", "klinik",
			"rumah sakit", "laboratorium", "spuit", "needle", "syringe",
			"iv set", "kateter", "sarung tangan medis", "masker medis",
			"pembalut medis", "plester medis", "alkohol medis", "betadine",
			"obat suntik", "vaksin", "sampah medis", "limbah medis",
			"limbah infeksius", "limbah patologi", "limbah farmasi",

			// e-waste
			"elektronik", "e-waste", "lampu neon", "lampu hemat energi",
			"lampu led rusak", "lampu tl", "lampu fluorescent",
			"komputer rusak", "laptop rusak", "tv rusak", "kulkas rusak",
			"ac rusak", "ponsel rusak", "hp rusak", "tablet rusak",
			"baterai", "aki", "accu", "accumulator", "baterai mobil",
			"baterai motor", "baterai lithium", "baterai isi ulang",
			"crt", "monitor rusak", "pc rusak", "printer rusak",
			"scanner rusak", "kabel listrik", "transformator", "trafo",
			"power supply", "charger rusak", "adaptor rusak",
			"microwave rusak", "oven rusak", "blender rusak",

			// used oil and lubricants
			"oli bekas", "pelumas", "minyak mesin", "gemuk", "lumas",
			"oli motor", "oli mobil", "oli industri", "oli hydraulic",
			"oli transmisi", "oli gardan", "oli rem", "oli sampah",
			"minyak bekas", "gemuk bekas", "grease", "oli sintetis",

			// paints and solvents
			"cat bekas", "thinner", "vernis", "pelarut", "solvent",
			"aerosol", "semprot", "spray can", "kaleng cat", "kaleng semprot",
			"cat minyak", "cat tembok", "cat kayu", "cat besi",
			"lak", "pengencer", "pembersih cat", "penghapus cat",
			"acetone", "tiner", "spiritus", "alkohol teknis",

			// heavy metals
			"merkuri", "timbal", "kadmium", "logam berat", "air raksa",
			"raksa", "arsen", "kromium", "nikel", "seng", "tembaga beracun",
			"aluminium beracun", "besi beracun", "solder timah",
			"timah hitam", "timah putih", "sianida",

			// gases and cylinders
			"tabung gas", "freon", "refrigerant",
			"gas", "elpiji bekas", "tabung elpiji", "tabung oksigen",
			"tabung nitrogen", "tabung co2", "tabung las", "tabung ac",
			"korek gas", "lighters", "pemantik", "butane", "propane",

			// asbestos and construction
			"asbes", "atap asbes", "serat asbes", "asbestos", "gypsum",
			"bahan bangunan berbahaya", "cat timbal", "cat mengandung timbal",

			// pharmaceutical
			"obat kadaluarsa", "obat rusak", "farmasi", "obat bekas",
			"vaksin kadaluarsa", "antibiotik kadaluarsa", "sirup kadaluarsa",
			"tablet kadaluarsa", "kapsul kadaluarsa", "obat cair kadaluarsa",
			"suplemen kadaluarsa", "vitamin kadaluarsa", "obat resep",
			"obat keras", "psikotropika", "narkotika", "obat terlarang",

			// agricultural
			"pestisida", "herbisida", "insektisida", "fungisida",
			"racun tikus", "racun serangga", "urea kadaluarsa", "pupuk kadaluarsa",
			"pupuk kimia", "zat perangsang", "hormon tanaman", "antibiotik hewan",
			"vaksin hewan", "obat hewan kadaluarsa", "desinfektan",

			// industrial
			"limbah pabrik", "limbah industri", "slag", "abu industri",
			"sludge", "limbah cair berbahaya", "limbah padat berbahaya",
			"limbah gas berbahaya", "cairan kimia", "bahan kimia industri",
			"acid", "asam", "basa", "alkali", "detergen industri",
			"pemutih industri", "pelarut industri", "catalyst",
			"resin", "polimer berbahaya", "plastik pvc",

			// household
			"pembalut wanita", "pembalut bekas", "popok bekas", "diapers",
			"tissue bekas darah", "tissue medis", "kapas medis",
			"pembersih lantai", "pembersih toilet", "pemutih pakaian",
			"pengharum ruangan", "insektisida rumah", "anti nyamuk",
			"obat nyamuk", "repellent", "racun kecoa", "racun semut",
		},
	},
	{
		Code: CategoryPlastic,
		Keywords: []string{
			// general
			"plastik", "botol plastik", "gelas plastik", "kresek", "kantong plastik",
			"kemasan plastik", "bungkus plastik", "plastik kemasan",
			"plastik pembungkus", "plastik belanja", "tas plastik",
			"plastik tipis", "plastik tebal", "plastik transparan",
			"plastik berwarna", "plastik bening", "plastik putih",

			// resin types
			"pet", "hdpe", "pvc", "ldpe", "pp", "ps", "other",
			"polyethylene", "polypropylene", "polystyrene", "polyvinyl",
			"nylon", "polyester", "acrylic", "polycarbonate",

			// bottles and containers
			"botol air mineral", "botol minuman", "botol soda",
			"botol jus", "botol sirup", "botol kecap", "botol saus",
			"botol sampo", "botol sabun", "botol deterjen",
			"botol minyak", "botol obat", "botol vitamin",
			"galon", "jerigen", "drum plastik", "ember plastik",
			"bak plastik", "wadah plastik", "kontainer plastik",
			"tupperware", "tempat makan plastik", "kotak plastik",

			// food packaging
			"styrofoam", "gabus plastik", "bungkus makanan",
			"plastik wrap", "cling wrap", "plastik pembungkus makanan",
			"kemasan snack", "bungkus permen", "bungkus coklat",
			"bungkus mi instan", "bungkus kopi", "bungkus teh",
			"sachet", "bungkus kecil", "pouch",

			// utensils
			"sedotan", "straw", "sendok plastik", "garpu plastik",
			"pisau plastik", "piring plastik", "mangkuk plastik",
			"cup plastik", "tutup plastik",
			"stirrer", "pengaduk plastik", "tusuk gigi plastik",
			"sumpit plastik", "tutup gelas", "tutup botol plastik",

			// construction and household
			"pipa plastik", "paralon", "talang plastik", "pipa pvc",
			"pipa hdpe", "plastik cor", "terpal plastik", "plastik mulsa",
			"plastik tanaman", "pot plastik", "polybag",
			"plastik sampah", "kantong sampah", "trash bag",
			"plastik hitam", "plastik biru", "plastik merah",

			// toys and furniture
			"mainan plastik", "boneka plastik", "lego", "blok plastik",
			"ember mainan", "bak mandi plastik", "kursi plastik",
			"meja plastik", "rak plastik", "lemari plastik",
			"box plastik", "container plastik", "organizer plastik",
		},
	},
	{
		Code: CategoryOrganic,
		Keywords: []string{
			// food waste
			"sisa makanan", "makanan basi", "makanan kadaluarsa",
			"nasi basi", "nasi sisa", "roti basi", "kue basi",
			"sayur basi", "buah busuk", "daging busuk", "ikan busuk",
			"ayam busuk", "telur busuk", "susu basi", "keju busuk",
			"makanan berjamur", "makanan fermentasi", "makanan terbuang",

			// fruit and vegetables
			"buah", "sayur", "daun", "tumbuhan", "tanaman",
			"kulit buah", "kulit sayur", "biji buah", "biji sayur",
			"batang", "ranting", "dahan", "ranting pohon",
			"daun kering", "daun basah", "daun gugur",
			"pepaya", "pisang", "apel", "jeruk", "mangga",
			"semangka", "melon", "anggur", "strawberry",
			"bayam", "kangkung", "sawi", "wortel", "kentang",
			"tomat", "cabe", "bawang", "jahe", "kunyit",

			// greenery
			"rumput", "rumput potong", "rumput liar",
			"ranting kecil", "ranting besar", "dahan pohon",
			"bambu", "daun bambu", "batang pisang", "pelepah",
			"batang jagung", "batang singkong", "batang ubi",
			"akar", "umbi", "rimpang",

			// other organic matter
			"telur", "cangkang telur", "kulit telur",
			"tulang", "tulang ayam", "tulang ikan", "tulang sapi",
			"cangkang", "cangkang kerang", "cangkang kepiting",
			"sisik ikan", "kepala ikan", "insang ikan",
			"bulu", "bulu ayam", "bulu hewan", "rambut",
			"kotoran hewan", "kotoran sapi", "kotoran kambing",
			"kotoran ayam", "pupuk kandang", "kompos",

			// kitchen scraps
			"ampas kopi", "ampas teh", "serbuk kayu",
			"bumbu dapur", "rempah", "merica", "ketumbar",
			"bawang merah", "bawang putih", "bawang bombay",
			"daun bawang", "seledri", "kemangi", "daun salam",
			"serai", "lengkuas", "kencur", "temulawak",

			// garden waste
			"dedaunan", "batang kecil",
			"bunga", "bunga layu", "bunga gugur",
			"tanaman mati", "tanaman layu", "tanaman sakit",
			"potongan rumput", "clipping", "trimming",
			"gulma", "tanaman liar", "tumbuhan liar",
		},
	},
	{
		Code: CategoryPaper,
		Keywords: []string{
			// general
			"kertas", "kertas bekas", "kertas koran", "koran",
			"majalah", "tabloid", "buku", "buku bekas",
			"novel", "komik", "majalah bekas", "kertas hvs",
			"kertas folio", "kertas a4", "kertas f4",
			"kertas buram", "kertas sampul", "kertas kado",
			"kertas warna", "kertas karton", "karton",

			// packaging
			"kardus", "kardus bekas", "box kardus",
			"dus", "dus kardus", "kotak kardus",
			"kemasan kardus", "pembungkus kardus",
			"karton box", "karton dus", "paper bag",
			"tas kertas", "kantong kertas", "bungkus kertas",
			"kertas minyak", "kertas roti", "kertas nasi",
			"kertas pembungkus", "kertas kemasan",

			// office
			"dokumen", "arsip", "file", "laporan",
			"surat", "nota", "faktur", "invoice",
			"kwitansi", "struk", "tiket", "karcis",
			"formulir", "lembar kerja", "worksheet",
			"print out", "hasil print", "fotokopi",
			"printan", "print-an", "cetakan",

			// household
			"tissue", "tisu", "kertas tissue", "kertas tisu",
			"tissue toilet", "tissue wajah", "tissue dapur",
			"serviet", "napkin", "handuk kertas",
			"kertas rokok", "bungkus rokok", "kemasan rokok",
			"bungkus gula", "bungkus tepung", "bungkus garam",

			// specialty
			"kertas foto", "foto", "print foto",
			"poster", "brosur", "leaflet", "pamflet",
			"flyer", "spanduk kertas", "banner kertas",
			"kalender", "kalender bekas", "agenda",
			"notes", "buku catatan", "notebook",

			// industrial
			"kertas kraft", "kertas packing",
			"kertas semen", "kertas gipsum",
			"kertas duplex", "kertas ivory",
			"kertas art paper", "kertas art carton",
			"kertas sticker", "label", "stiker",
		},
	},
	{
		Code: CategoryMetal,
		Keywords: []string{
			// general
			"logam", "besi", "baja", "steel", "stainless",
			"aluminium", "alumunium", "alumimum",
			"tembaga", "copper", "kuningan", "brass",
			"perunggu", "bronze", "timah", "tin",
			"zinc", "nickel",
			"krom", "chromium", "magnesium",

			// cans
			"kaleng", "kaleng bekas", "kaleng minuman",
			"kaleng soda", "kaleng bir", "kaleng susu",
			"kaleng makanan", "kaleng sarden",
			"kaleng kornet", "kaleng susu kental",
			"kemasan kaleng", "wadah kaleng",

			// cookware and household
			"panci", "wajan", "teflon", "kuali",
			"sendok logam", "garpu logam", "pisau logam",
			"sodet", "spatula", "saringan",
			"ember logam", "bak logam", "bucket",
			"keranjang logam", "rak logam",
			"gantungan baju logam", "hanger",

			// hardware and construction
			"paku", "sekrup", "baut", "mur",
			"kawat", "kawat berduri", "kawat ayam",
			"kawat bendrat",
			"besi beton", "besi cor", "besi hollow",
			"besi siku", "besi plat", "plat besi",
			"pipa besi", "pipa galvanis", "pipa tembaga",
			"paralon besi", "talang seng",

			// electrical components
			"motor listrik", "dinamo", "generator",
			"kumparan",
			"kawat tembaga", "kabel bekas",
			"kabel telepon", "kabel coaxial", "kabel usb",
			"pcb", "printed circuit board", "komponen elektronik",
			"chip", "processor", "ram", "harddisk",

			// vehicles and machinery
			"velg", "roda", "rantai", "gear",
			"mesin", "engine", "blok mesin",
			"knalpot", "exhaust", "karburator",
			"radiator", "alternator", "starter",
			"body mobil", "body motor", "chassis",

			// furniture
			"ranjang besi", "tempat tidur besi",
			"kursi besi", "meja besi", "lemari besi",
			"pagar besi", "teralis", "jeruji",
			"kanopi besi", "atap seng",
			"genteng metal", "atap metal",
		},
	},
	{
		Code: CategoryGlass,
		Keywords: []string{
			// general
			"kaca", "beling", "pecahan kaca", "kaca pecah",
			"gelas kaca", "gelas beling", "piring kaca",
			"mangkuk kaca", "cangkir kaca", "teko kaca",
			"vas kaca", "botol kaca", "botol beling",

			// specific bottles
			"botol selai", "botol madu",
			"botol parfum", "botol kosmetik",
			"botol bir", "botol anggur",
			"botol champagne", "botol spirit",
			"botol susu", "botol bayi", "botol dot",

			// kitchenware
			"toples kaca", "jar kaca", "wadah kaca",
			"container kaca",
			"gelas minum", "gelas wine", "gelas cocktail",
			"gelas shot", "gelas beer", "gelas juice",
			"teko", "ceret kaca", "kendi kaca",

			// windows and buildings
			"kaca jendela", "jendela kaca", "kaca pintu",
			"kaca mobil", "kaca motor", "kaca spion",
			"kaca cermin", "cermin", "kaca reflektor",
			"kaca film", "kaca tempered", "kaca laminasi",
			"kaca patri", "stained glass",

			// lamps and optics
			"lampu pijar", "lampu bohlam", "lampu halogen",
			"tabung tv", "crt monitor", "tabung neon",
			"kaca mikroskop", "kaca teropong", "lensa",
			"kacamata", "spectacles", "lensa kacamata",
			"kaca pembesar", "magnifying glass",

			// decorative
			"vas bunga", "pot kaca", "aquarium",
			"terarium", "display case", "etalse kaca",
			"pigura kaca", "frame kaca", "plakat kaca",
			"trophy", "piala", "medali dengan kaca",
		},
	},
	{
		Code: CategoryMixed,
		Keywords: []string{
			"campuran", "bermacam", "beragam", "beraneka",
			"sampah rumah tangga", "sampah dapur",
			"sampah kebun", "sampah taman",
			"sampah kantor", "sampah sekolah",
			"sampah pasar", "sampah komersial",

			"sampah rumah", "sampah keluarga",
			"sampah sehari-hari", "sampah harian",
			"sampah basah kering", "sampah basah",
			"sampah kering", "sampah residu",

			"sampah kampus",
			"sampah perkantoran",
			"sampah pabrik", "sampah industri",
			"sampah tradisional",
			"sampah mall", "sampah pusat perbelanjaan",
			"sampah hotel", "sampah restoran",
			"sampah kafe", "sampah warung",

			"sampah tak terpilah", "sampah tercampur",
			"sampah tidak terpisah", "sampah gabungan",
			"sampah all in", "sampah semua jenis",
			"sampah berbagai jenis", "sampah heterogen",
		},
	},
	{
		Code: CategoryRubber,
		Keywords: []string{
			// tyres
			"ban", "ban bekas", "ban mobil", "ban motor",
			"ban sepeda", "ban truk", "ban bus",
			"ban luar", "ban dalam", "tube",
			"ban vulkanisir", "ban recapan",

			// footwear
			"sandal", "sandal bekas", "sandal jepit",
			"sepatu", "sepatu bekas", "sepatu kets",
			"sepatu olahraga", "boots", "sepatu boot",
			"sepatu kulit sintetis", "sepatu karet",

			// rubber goods
			"tali karet", "karet gelang", "gelang karet",
			"rubber band", "elastic band", "karet pentil",
			"karet penghapus", "penghapus", "eraser",
			"karet sandal", "sol karet", "sole",

			// industrial rubber
			"belt", "conveyor belt", "fan belt",
			"timing belt", "v-belt", "karet mesin",
			"gasket", "seal", "oring", "o-ring",
			"rubber sheet", "lembaran karet",
			"karet busa", "foam rubber",

			// toys
			"balon", "balloon", "balon karet",
			"mainan karet", "rubber toy", "bola karet",
			"basketball", "volleyball", "football",
			"karet stress ball", "anti stress ball",

			// household rubber
			"sarung tangan karet", "glove karet",
			"karet pel", "pel karet", "squeegee",
			"karet pintu", "door seal", "weather strip",
			"karet jendela", "window seal",
		},
	},
	{
		Code: CategoryTextile,
		Keywords: []string{
			// clothing
			"baju", "pakaian", "clothing", "apparel",
			"kaos", "t-shirt", "kemeja", "shirt",
			"celana", "pants", "jeans", "jins",
			"rok", "skirt", "dress", "gaun",
			"jaket", "jacket", "sweater", "hoodie",
			"kaus kaki", "socks", "stocking",
			"dalaman", "underwear", "bra", "bh",
			"pakaian dalam", "inner wear",

			// fabric
			"kain", "textile", "fabric", "cloth",
			"kain perca", "kain sisa", "kain bekas",
			"kain potongan", "scrap fabric",
			"kain katun", "cotton", "kain sutra", "silk",
			"kain wol", "wool", "kain linen", "linen",
			"kain polyester",
			"kain denim", "denim", "kain jeans",

			// bedding
			"sprei", "bedsheet", "sarung bantal",
			"pillow case", "sarung guling",
			"selimut", "blanket", "bedcover",
			"quilt", "bedspread", "kain tempat tidur",

			// towels and rags
			"handuk", "towel", "handuk mandi",
			"handuk kecil", "face towel",
			"handuk dapur", "kitchen towel",
			"kain lap", "lap", "rag", "kain pel",
			"kain bersih", "cleaning cloth",

			// bags and accessories
			"tas", "bag", "tas kain", "cloth bag",
			"tas belanja", "shopping bag",
			"tas tangan", "handbag", "tas ransel",
			"backpack", "tas sekolah", "school bag",
			"topi", "hat", "cap", "kupluk",
			"sarung tangan", "gloves", "mittens",
			"syal", "scarf", "shawl",

			// curtains and decor
			"gorden", "curtain", "tirai", "blind",
			"korden", "window curtain", "kain penutup",
			"taplak", "table cloth", "table runner",
			"karpet", "carpet", "rug", "keset",
			"doormat", "welcome mat",
		},
	},
	{
		Code: CategoryWood,
		Keywords: []string{
			// general
			"kayu", "wood", "kayu bekas", "kayu sisa",
			"potongan kayu", "serpihan kayu",
			"ranting kayu", "dahan kayu", "batang kayu",

			// furniture
			"meja kayu", "kursi kayu", "lemari kayu",
			"rak kayu", "tempat tidur kayu", "bangku kayu",
			"bufet kayu", "kitchen set kayu",

			// construction
			"papan", "balok", "kasau", "reng",
			"kayu lapis", "plywood", "triplek",
			"multiplek", "blockboard", "particle board",
			"mdf", "hdf", "hardboard",

			// packaging
			"palet", "pallet", "dus kayu", "peti kayu",
			"crate", "kotak kayu", "box kayu",
			"kemasan kayu", "packing kayu",

			// misc
			"gagang sapu", "gagang perkakas",
			"tongkat", "stick",
			"pohon tumbang", "kayu bakar", "firewood",
			"ranting kering", "dahan kering",
		},
	},
	{
		Code: CategoryCeramic,
		Keywords: []string{
			"keramik", "ceramic", "porselen", "porcelain",
			"piring keramik", "mangkuk keramik", "gelas keramik",
			"guci", "vas keramik", "pot keramik",
			"ubin", "tile", "lantai keramik", "wall tile",
			"kloset", "toilet", "washtafel", "sink",
			"bathtub", "bath tub", "shower tray",
		},
	},
	{
		Code: CategoryElectronic,
		Keywords: []string{
			// general
			"limbah elektronik",
			"barang elektronik rusak", "perangkat elektronik",

			// computers
			"komputer", "pc", "laptop", "notebook",
			"monitor", "lcd", "led monitor",
			"keyboard", "mouse", "printer", "scanner",
			"hdd", "ssd", "flashdisk",
			"cd", "dvd", "bluray", "optical disc",

			// telecom
			"ponsel", "hp", "smartphone", "tablet",
			"ipad", "telepon", "telepon rumah",
			"modem", "router", "switch", "hub",

			// appliances
			"tv", "televisi", "kulkas", "refrigerator",
			"ac", "air conditioner", "kipas angin",
			"blender", "mixer", "juicer", "food processor",
			"microwave", "oven", "toaster", "rice cooker",
			"dispenser", "water dispenser",

			// audio and video
			"radio", "speaker", "sound system",
			"dvd player", "bluray player", "game console",
			"playstation", "xbox", "nintendo",
			"kamera", "camera", "camcorder", "video camera",

			// power
			"battery",
			"charger", "adaptor",
		},
	},
	{
		Code: CategoryMedical,
		Keywords: []string{
			"puskesmas",
			"apotek",
			"obat", "antibiotik",
			"perban", "kasa", "kapas",
			"jarum", "infus",
			"masker",
			"pembalut", "popok",
		},
	},
}
