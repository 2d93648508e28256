package render

// languageNames maps an interlanguage link prefix (ISO 639 code or wiki
// project code) to the native name of the language. Codes with no usable
// native name are simply absent.
var languageNames = map[string]string{
	"aa": "Afar",
	"ab": "Аҧсуа",
	"af": "Afrikaans",
	"ak": "Akana",
	"als": "Alemannisch",
	"am": "አማርኛ",
	"an": "Aragonés",
	"ang": "Englisc",
	"ar": "العربية",
	"arc": "ܐܪܡܝܐ",
	"as": "অসমীয়া",
	"ast": "Asturian",
	"av": "Авар",
	"ay": "Aymara",
	"az": "Azərbaycan",
	"ba": "Башҡорт",
	"bar": "Boarisch",
	"bat-smg": "Žemaitėška",
	"bcl": "Bikol",
	"be": "Беларуская",
	"be-x-old": "Беларуская (тарашкевіца)",
	"bg": "Български",
	"bh": "भोजपुरी",
	"bi": "Bislama",
	"bm": "Bamanankan",
	"bn": "বাংলা",
	"bo": "བོད་སྐད",
	"bpy": "ইমার ঠার/বিষ্ণুপ্রিয়া মণিপুরী",
	"br": "Brezhoneg",
	"bs": "Bosanski",
	"bug": "Basa Ugi",
	"bxr": "Буряад",
	"ca": "Català",
	"cbk-zam": "Chavacano de Zamboanga",
	"cdo": "Mìng-dĕ̤ng-ngṳ̄",
	"cho": "Choctaw",
	"ce": "Нохчийн",
	"ceb": "Sinugboanong Binisaya",
	"ch": "Chamor",
	"chr": "ᏣᎳᎩ",
	"chy": "Tsetsêhestâhese",
	"co": "Cors",
	"cr": "Nehiyaw",
	"crh": "Qırımtatarca",
	"cs": "Česky",
	"csb": "Kaszëbsczi",
	"c": "Словѣньскъ",
	"cv": "Чăваш",
	"cy": "Cymraeg",
	"da": "Dansk",
	"de": "Deutsch",
	"diq": "Zazaki",
	"dsb": "Dolnoserbski",
	"dv": "ދިވެހިބަސް",
	"dz": "ཇོང་ཁ",
	"ee": "Eʋegbe",
	"el": "Ελληνικά",
	"eml": "Emiliàn e rumagnòl",
	"en": "English",
	"eo": "Esperanto",
	"es": "Español",
	"et": "Eesti",
	"eu": "Euskara",
	"ext": "Estremeñ",
	"fa": "فارسی",
	"ff": "Fulfulde",
	"fi": "Suomi",
	"fiu-vro": "Võro",
	"fj": "Na Vosa Vakaviti",
	"fo": "Føroyskt",
	"fr": "Français",
	"frp": "Arpitan",
	"fur": "Furlan",
	"fy": "Frysk",
	"ga": "Gaeilge",
	"gan": "贛語 (Gànyŭ)",
	"gd": "Gàidhlig",
	"gl": "Gallego",
	"glk": "گیلکی",
	"got": "𐌲𐌿𐍄𐌹𐍃𐌺𐍉𐍂𐌰𐌶𐌳𐌰",
	"gn": "Avañe'ẽ",
	"g": "ગુજરાતી",
	"gv": "Gaelg",
	"ha": "هَوُسَ",
	"hak": "Hak-kâ-fa / 客家話",
	"haw": "Hawai`i",
	"he": "עברית",
	"hi": "हिन्दी",
	"hif": "Fiji Hindi",
	"ho": "Hiri Mot",
	"hr": "Hrvatski",
	"hsb": "Hornjoserbsce",
	"ht": "Krèyol ayisyen",
	"hu": "Magyar",
	"hy": "Հայերեն",
	"hz": "Otsiherero",
	"ia": "Interlingua",
	"ie": "Interlingue",
	"id": "Bahasa Indonesia",
	"ig": "Igbo",
	"ii": "ꆇꉙ     ",
	"ik": "Iñupiak",
	"ilo": "Ilokano",
	"io": "Ido",
	"is": "Íslenska",
	"it": "Italiano",
	"i": "ᐃᓄᒃᑎᑐᑦ",
	"ja": "日本語",
	"jbo": "Lojban",
	"jv": "Basa Jawa",
	"ka": "ქართული",
	"kaa": "Qaraqalpaqsha",
	"kab": "Taqbaylit",
	"kg": "KiKongo",
	"ki": "Gĩkũyũ",
	"kj": "Kuanyama",
	"kk": "Қазақша",
	"kl": "Kalaallisut",
	"km": "ភាសាខ្មែរ",
	"kn": "ಕನ್ನಡ",
	"ko": "한국어",
	"kr": "Kanuri",
	"ks": "कश्मीरी / كشميري",
	"ksh": "Ripoarisch",
	"ku": "Kurdî / كوردی",
	"kv": "Коми",
	"kw": "Kernewek/Karnuack",
	"ky": "Кыргызча",
	"la": "Latina",
	"lad": "Dzhudezmo",
	"lb": "Lëtzebuergesch",
	"lbe": "Лакку",
	"lg": "Luganda",
	"li": "Limburgs",
	"lij": "Lígur",
	"ln": "Lingala",
	"lmo": "Lumbaart",
	"lo": "ລາວ",
	"lt": "Lietuvių",
	"lua": "Luba",
	"lv": "Latvieš",
	"map-bms": "Basa Banyumasan",
	"mdf": "Мокшень (Mokshanj Kälj)",
	"mg": "Malagasy",
	"mh": "Ebon",
	"mi": "Māori",
	"mk": "Македонски",
	"mn": "Монгол",
	"mo": "Молдовеняскэ",
	"mr": "मराठी",
	"ms": "Bahasa Melay",
	"mt": "Malti",
	"mus": "Muskogee",
	"my": "မ္ရန္‌မာစာ",
	"myv": "Эрзянь (Erzjanj Kelj)",
	"mzn": "مَزِروني",
	"na": "dorerin Naoero",
	"nah": "Nāhuatl",
	"nap": "Nnapulitano",
	"nb": "Norsk (Bokmål)",
	"nds": "Plattdüütsch",
	"nds-nl": "Nedersaksisch",
	"ne": "नेपाली",
	"new": "नेपाल भाषा",
	"ng": "Oshiwambo",
	"nl": "Nederlands",
	"nn": "Nynorsk",
	"no": "Norsk (Bokmål)",
	"nov": "Novial",
	"nrm": "Nouormand/Normaund",
	"nv": "Diné bizaad",
	"ny": "Chi-Chewa",
	"oc": "Occitan",
	"om": "Oromoo",
	"or": "ଓଡ଼ିଆ",
	"os": "Иронау",
	"pa": "ਪੰਜਾਬੀ",
	"pag": "Pangasinan",
	"pam": "Kapampangan",
	"pap": "Papiament",
	"pdc": "Deitsch",
	"pi": "पाऴि",
	"pih": "Norfuk",
	"pl": "Polski",
	"pms": "Piemontèis",
	"ps": "پښتو",
	"pt": "Português",
	"q": "Runa Simi",
	"rm": "Rumantsch",
	"rmy": "romani - रोमानी",
	"rn": "Kirundi",
	"ro": "Română",
	"roa-rup": "Armãneashce",
	"roa-tara": "Tarandíne",
	"ru": "Русский",
	"rw": "Ikinyarwanda",
	"sa": "संस्कृतम्",
	"sah": "Саха тыла (Saxa Tyla)",
	"sc": "Sardu",
	"scn": "Sicilian",
	"sco": "Scots",
	"sd": "سنڌي، سندھی ، सिन्ध",
	"se": "Sámegiella",
	"sg": "Sängö",
	"sh": "Srpskohrvatski / Српскохрватски",
	"si": "සිංහල",
	"simple": "Simple English",
	"sk": "Slovenčina",
	"sl": "Slovenščina",
	"sm": "Gagana Samoa",
	"sn": "chiShona",
	"so": "Soomaaliga",
	"sr": "Српски / Srpski",
	"srn": "Sranantongo",
	"ss": "SiSwati",
	"st": "Sesotho",
	"stk": "Seeltersk",
	"s": "Basa Sunda",
	"sq": "Shqip",
	"szl": "Ślůnski",
	"sv": "Svenska",
	"sw": "Kiswahili",
	"ta": "தமிழ்",
	"te": "తెలుగు",
	"tet": "Tetun",
	"tg": "Тоҷикӣ",
	"th": "ไทย",
	"ti": "ትግርኛ",
	"tk": "تركمن / Туркмен",
	"tl": "Tagalog",
	"tn": "Setswana",
	"to": "faka Tonga",
	"tokipona": "Tokipona",
	"tpi": "Tok Pisin",
	"tr": "Türkçe",
	"ts": "Xitsonga",
	"tt": "Tatarça / Татарча",
	"tum": "chiTumbuka",
	"tw": "Twi",
	"ty": "Reo Mā`ohi",
	"udm": "Удмурт кыл",
	"ug": "Oyghurque",
	"uk": "Українська",
	"ur": "اردو",
	"uz": "O‘zbek",
	"ve": "Tshivenda",
	"vec": "Vèneto",
	"vi": "Tiếng Việt",
	"vls": "West-Vlams",
	"vo": "Volapük",
	"wa": "Walon",
	"war": "Winaray",
	"wo": "Wolof",
	"w": "吴语",
	"xal": "Хальмг",
	"xh": "isiXhosa",
	"yi": "ייִדיש",
	"yo": "Yorùbá",
	"za": "Cuengh",
	"zea": "Zeêuws",
	"zh": "中文",
	"zh-classical": "古文 / 文言文",
	"zm-min-nan": "Bân-lâm-gú",
	"zh-yue": "粵語",
	"zu": "isiZulu",
}
