package phoneme

// seedPhonemes returns the reference catalog in display order.
func seedPhonemes() []Phoneme {
	return []Phoneme{
		{Symbol: "/p/", Name: "P", Example: "pat", Category: CategoryConsonants, Subcategory: "Stops", Language: English},
		{Symbol: "/b/", Name: "B", Example: "bat", Category: CategoryConsonants, Subcategory: "Stops", Language: English},
		{Symbol: "/t/", Name: "T", Example: "top", Category: CategoryConsonants, Subcategory: "Stops", Language: English},
		{Symbol: "/d/", Name: "D", Example: "dog", Category: CategoryConsonants, Subcategory: "Stops", Language: English},
		{Symbol: "/k/", Name: "K", Example: "cat", Category: CategoryConsonants, Subcategory: "Stops", Language: English},
		{Symbol: "/g/", Name: "G", Example: "get", Category: CategoryConsonants, Subcategory: "Stops", Language: English},
		{Symbol: "/f/", Name: "F", Example: "fan", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/v/", Name: "V", Example: "van", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/θ/", Name: "Theta", Example: "thin", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/ð/", Name: "Eth", Example: "this", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/s/", Name: "S", Example: "sit", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/z/", Name: "Z", Example: "zip", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/ʃ/", Name: "Sh", Example: "ship", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/ʒ/", Name: "Zh", Example: "measure", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/h/", Name: "H", Example: "hat", Category: CategoryConsonants, Subcategory: "Fricatives", Language: English},
		{Symbol: "/tʃ/", Name: "Ch", Example: "chip", Category: CategoryConsonants, Subcategory: "Affricates", Language: English},
		{Symbol: "/dʒ/", Name: "J", Example: "jump", Category: CategoryConsonants, Subcategory: "Affricates", Language: English},
		{Symbol: "/m/", Name: "M", Example: "man", Category: CategoryConsonants, Subcategory: "Nasals", Language: English},
		{Symbol: "/n/", Name: "N", Example: "no", Category: CategoryConsonants, Subcategory: "Nasals", Language: English},
		{Symbol: "/ŋ/", Name: "Ng", Example: "sing", Category: CategoryConsonants, Subcategory: "Nasals", Language: English},
		{Symbol: "/l/", Name: "L", Example: "leg", Category: CategoryConsonants, Subcategory: "Approximants", Language: English},
		{Symbol: "/ɹ/", Name: "R", Example: "run", Category: CategoryConsonants, Subcategory: "Approximants", Language: English},
		{Symbol: "/j/", Name: "Y", Example: "yes", Category: CategoryConsonants, Subcategory: "Approximants", Language: English},
		{Symbol: "/w/", Name: "W", Example: "wet", Category: CategoryConsonants, Subcategory: "Approximants", Language: English},
		{Symbol: "/i/", Name: "I", Example: "see", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ɪ/", Name: "I", Example: "sit", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/e/", Name: "E", Example: "may", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ɛ/", Name: "E", Example: "bed", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/æ/", Name: "A", Example: "cat", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ɑ/", Name: "A", Example: "father", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ɔ/", Name: "O", Example: "thought", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/o/", Name: "O", Example: "go", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ʊ/", Name: "U - Hook", Example: "put", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/u/", Name: "U", Example: "boot", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ʌ/", Name: "Uh", Example: "but", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/ə/", Name: "Schwa", Example: "about", Category: CategoryVowels, Subcategory: "Vowels", Language: English},
		{Symbol: "/eɪ/", Name: "A", Example: "face", Category: CategoryDiphthongs, Subcategory: "Diphthongs", Language: English},
		{Symbol: "/aɪ/", Name: "I", Example: "price", Category: CategoryDiphthongs, Subcategory: "Diphthongs", Language: English},
		{Symbol: "/ɔɪ/", Name: "Oi", Example: "choice", Category: CategoryDiphthongs, Subcategory: "Diphthongs", Language: English},
		{Symbol: "/aʊ/", Name: "Ow", Example: "mouth", Category: CategoryDiphthongs, Subcategory: "Diphthongs", Language: English},
		{Symbol: "/oʊ/", Name: "O", Example: "goat", Category: CategoryDiphthongs, Subcategory: "Diphthongs", Language: English},
		{Symbol: "/bl/", Name: "B L", Example: "blue", Category: CategoryBlends, Subcategory: "L-Blends", Language: English},
		{Symbol: "/fl/", Name: "F L", Example: "fly", Category: CategoryBlends, Subcategory: "L-Blends", Language: English},
		{Symbol: "/gl/", Name: "G L", Example: "glass", Category: CategoryBlends, Subcategory: "L-Blends", Language: English},
		{Symbol: "/kl/", Name: "K L", Example: "clean", Category: CategoryBlends, Subcategory: "L-Blends", Language: English},
		{Symbol: "/pl/", Name: "P L", Example: "play", Category: CategoryBlends, Subcategory: "L-Blends", Language: English},
		{Symbol: "/sl/", Name: "S L", Example: "slide", Category: CategoryBlends, Subcategory: "L-Blends", Language: English},
		{Symbol: "/br/", Name: "B R", Example: "brown", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/dr/", Name: "D R", Example: "drive", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/fr/", Name: "F R", Example: "frog", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/gr/", Name: "G R", Example: "green", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/kr/", Name: "K R", Example: "crab", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/pr/", Name: "P R", Example: "price", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/tr/", Name: "T R", Example: "train", Category: CategoryBlends, Subcategory: "R-Blends", Language: English},
		{Symbol: "/sk/", Name: "S K", Example: "sky", Category: CategoryBlends, Subcategory: "S-Blends", Language: English},
		{Symbol: "/sm/", Name: "S M", Example: "small", Category: CategoryBlends, Subcategory: "S-Blends", Language: English},
		{Symbol: "/sn/", Name: "S N", Example: "snake", Category: CategoryBlends, Subcategory: "S-Blends", Language: English},
		{Symbol: "/sp/", Name: "S P", Example: "spoon", Category: CategoryBlends, Subcategory: "S-Blends", Language: English},
		{Symbol: "/st/", Name: "S T", Example: "star", Category: CategoryBlends, Subcategory: "S-Blends", Language: English},
		{Symbol: "/sw/", Name: "S W", Example: "swim", Category: CategoryBlends, Subcategory: "S-Blends", Language: English},
		{Symbol: "/ɾ/", Name: "Tap R", Example: "pero", Category: CategoryConsonants, Subcategory: "Taps", Language: Spanish},
		{Symbol: "/r/", Name: "Trill R", Example: "perro", Category: CategoryConsonants, Subcategory: "Trills", Language: Spanish},
		{Symbol: "/x/", Name: "J", Example: "jamón", Category: CategoryConsonants, Subcategory: "Fricatives", Language: Spanish},
		{Symbol: "/ɲ/", Name: "Ñ", Example: "niño", Category: CategoryConsonants, Subcategory: "Nasals", Language: Spanish},
		{Symbol: "/ʝ/", Name: "Yod", Example: "yo", Category: CategoryConsonants, Subcategory: "Approximants", Language: Spanish},
		{Symbol: "/tʃ/", Name: "Ch", Example: "chico", Category: CategoryConsonants, Subcategory: "Affricates", Language: Spanish},
	}
}
