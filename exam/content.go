package exam

// Title is the title of the exam sheet.
const Title = "امتحان القرآن الكريم للصف الخامس الابتدائي"

// QuranExam returns the items of the Quran exam sheet for the fifth primary
// grade. Font sizes are in points, spacings in centimetres.
func QuranExam() []Item {
	return []Item{
		// header
		Text("الأزهر الشريف معهد طلخا النموذجي", 16, Centered, 1),
		Text("امتحان القرآن الكريم للصف الخامس الابتدائي", 14, Centered, 0.8),
		Text("اختبار شهر أكتوبر ونوفمبر", 12, Centered, 1.5),
		Separator(1),

		// question 1
		Text("السؤال الأول:", 13, Right, 0.8),
		Text("أ- أكتب من قوله تعالى:", 11, Right, 0.7),
		Text("قَالَ أَفَرَأَيْتُم مَّا كُنتُمْ تَعْبُدُونَ ....", 11, RightIndented, 0.7),
		Text("إلى قوله تعالى:", 11, Right, 0.7),
		Text("وَالَّذِي يُمِيتُنِي ثُمَّ يُحْيِينِ", 11, RightIndented, 1),
		Text("ب- أكتب من أول سورة النمل إلى قوله تعالى:", 11, Right, 0.7),
		Text("وَهُم فِي الْآخِرَةِ هُمُ الْأَخْسَرُونَ", 11, RightIndented, 1.2),
		Separator(1),

		// question 2
		Text("السؤال الثاني:", 13, Right, 0.8),
		Text("أكمل كل آية مما يأتي ثم اذكر آية بعدها مع ذكر اسم السورة:", 11, Right, 0.9),
		Text("أ- قال تعالى:", 11, Right, 0.7),
		Text("وَنُرِيدُ أَن نَّمُنَّ عَلَى الَّذِينَ اسْتُضْعِفُوا فِي الْأَرْضِ .....", 11, RightIndented, 0.9),
		Text("ب- قال تعالى:", 11, Right, 0.7),
		Text("إِلَّا الَّذِي فَطَرَنِي .....", 11, RightIndented, 0.9),
		Text("ج- قال تعالى:", 11, Right, 0.7),
		Text("وَاصْبِرْ لِحُكْمِ رَبِّكَ فَإِنَّكَ بِأَعْيُنِنَا .....", 11, RightIndented, 1.2),
		Separator(1),

		// question 3
		Text("السؤال الثالث:", 13, Right, 0.8),
		Text("اكتب آيتين من أوائل السور الآتية:", 11, Right, 0.9),
		Text("أ- الجاثية", 11, Right, 0.9),
		Text("ب- الصف", 11, Right, 0.9),
		Text("ج- المزمل", 11, Right, 1.5),
		Separator(0.8),

		// footer
		Text("بالتوفيق والنجاح", 10, Centered, 0),
	}
}
