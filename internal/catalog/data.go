package catalog

import "github.com/example/kanasensei/pkg/models"

// characterGroup mirrors one block of the source dataset. Group order is
// significant: vocabulary derivation walks groups in order, so the first
// occurrence of a duplicated example word wins.
type characterGroup struct {
	name  string
	chars []rawCharacter
}

type rawCharacter struct {
	kana    string
	romaji  string
	example *models.Example
	note    string
}

var characterLibrary = []characterGroup{
	{name: "hiragana", chars: []rawCharacter{
		{kana: "あ", romaji: "a", example: &models.Example{Word: "あさ", Romaji: "asa", Translation: "buổi sáng"}},
		{kana: "い", romaji: "i", example: &models.Example{Word: "いぬ", Romaji: "inu", Translation: "con chó"}},
		{kana: "う", romaji: "u", example: &models.Example{Word: "うみ", Romaji: "umi", Translation: "biển"}},
		{kana: "え", romaji: "e", example: &models.Example{Word: "えき", Romaji: "eki", Translation: "nhà ga"}},
		{kana: "お", romaji: "o", example: &models.Example{Word: "おちゃ", Romaji: "ocha", Translation: "trà"}},
		{kana: "か", romaji: "ka", example: &models.Example{Word: "かさ", Romaji: "kasa", Translation: "cái ô"}},
		{kana: "き", romaji: "ki", example: &models.Example{Word: "きもの", Romaji: "kimono", Translation: "áo Kimono"}},
		{kana: "く", romaji: "ku", example: &models.Example{Word: "くつ", Romaji: "kutsu", Translation: "giày"}},
		{kana: "け", romaji: "ke", example: &models.Example{Word: "けしき", Romaji: "keshiki", Translation: "phong cảnh"}},
		{kana: "こ", romaji: "ko", example: &models.Example{Word: "こども", Romaji: "kodomo", Translation: "trẻ em"}},
		{kana: "さ", romaji: "sa", example: &models.Example{Word: "さかな", Romaji: "sakana", Translation: "con cá"}},
		{kana: "し", romaji: "shi", example: &models.Example{Word: "しんぶん", Romaji: "shinbun", Translation: "báo"}},
		{kana: "す", romaji: "su", example: &models.Example{Word: "すし", Romaji: "sushi", Translation: "món sushi"}},
		{kana: "せ", romaji: "se", example: &models.Example{Word: "せんせい", Romaji: "sensei", Translation: "giáo viên"}},
		{kana: "そ", romaji: "so", example: &models.Example{Word: "そら", Romaji: "sora", Translation: "bầu trời"}},
		{kana: "た", romaji: "ta", example: &models.Example{Word: "たかい", Romaji: "takai", Translation: "cao, đắt"}},
		{kana: "ち", romaji: "chi", example: &models.Example{Word: "ちいさい", Romaji: "chiisai", Translation: "nhỏ"}},
		{kana: "つ", romaji: "tsu", example: &models.Example{Word: "つくえ", Romaji: "tsukue", Translation: "cái bàn"}},
		{kana: "て", romaji: "te", example: &models.Example{Word: "てがみ", Romaji: "tegami", Translation: "bức thư"}},
		{kana: "と", romaji: "to", example: &models.Example{Word: "とけい", Romaji: "tokei", Translation: "đồng hồ"}},
		{kana: "な", romaji: "na", example: &models.Example{Word: "なまえ", Romaji: "namae", Translation: "tên"}},
		{kana: "に", romaji: "ni", example: &models.Example{Word: "にほん", Romaji: "nihon", Translation: "Nhật Bản"}},
		{kana: "ぬ", romaji: "nu", example: &models.Example{Word: "ぬの", Romaji: "nuno", Translation: "vải"}},
		{kana: "ね", romaji: "ne", example: &models.Example{Word: "ねこ", Romaji: "neko", Translation: "con mèo"}},
		{kana: "の", romaji: "no", example: &models.Example{Word: "のりもの", Romaji: "norimono", Translation: "phương tiện di chuyển"}},
		{kana: "は", romaji: "ha", example: &models.Example{Word: "はな", Romaji: "hana", Translation: "hoa"}},
		{kana: "ひ", romaji: "hi", example: &models.Example{Word: "ひと", Romaji: "hito", Translation: "người"}},
		{kana: "ふ", romaji: "fu", example: &models.Example{Word: "ふね", Romaji: "fune", Translation: "thuyền"}},
		{kana: "へ", romaji: "he", example: &models.Example{Word: "へや", Romaji: "heya", Translation: "căn phòng"}},
		{kana: "ほ", romaji: "ho", example: &models.Example{Word: "ほん", Romaji: "hon", Translation: "sách"}},
		{kana: "ま", romaji: "ma", example: &models.Example{Word: "まど", Romaji: "mado", Translation: "cửa sổ"}},
		{kana: "み", romaji: "mi", example: &models.Example{Word: "みず", Romaji: "mizu", Translation: "nước"}},
		{kana: "む", romaji: "mu", example: &models.Example{Word: "むし", Romaji: "mushi", Translation: "côn trùng"}},
		{kana: "め", romaji: "me", example: &models.Example{Word: "めがね", Romaji: "megane", Translation: "kính mắt"}},
		{kana: "も", romaji: "mo", example: &models.Example{Word: "もも", Romaji: "momo", Translation: "quả đào"}},
		{kana: "や", romaji: "ya", example: &models.Example{Word: "やま", Romaji: "yama", Translation: "núi"}},
		{kana: "ゆ", romaji: "yu", example: &models.Example{Word: "ゆき", Romaji: "yuki", Translation: "tuyết"}},
		{kana: "よ", romaji: "yo", example: &models.Example{Word: "よる", Romaji: "yoru", Translation: "buổi tối"}},
		{kana: "ら", romaji: "ra", example: &models.Example{Word: "らくだ", Romaji: "rakuda", Translation: "lạc đà"}},
		{kana: "り", romaji: "ri", example: &models.Example{Word: "りんご", Romaji: "ringo", Translation: "quả táo"}},
		{kana: "る", romaji: "ru", example: &models.Example{Word: "るす", Romaji: "rusu", Translation: "vắng nhà"}},
		{kana: "れ", romaji: "re", example: &models.Example{Word: "れきし", Romaji: "rekishi", Translation: "lịch sử"}},
		{kana: "ろ", romaji: "ro", example: &models.Example{Word: "ろうそく", Romaji: "rousoku", Translation: "cây nến"}},
		{kana: "わ", romaji: "wa", example: &models.Example{Word: "わたし", Romaji: "watashi", Translation: "tôi"}},
		{kana: "を", romaji: "wo", example: &models.Example{Word: "ほんをよむ", Romaji: "hon o yomu", Translation: "đọc sách (trợ từ)"}},
		{kana: "ん", romaji: "n", example: &models.Example{Word: "でんわ", Romaji: "denwa", Translation: "điện thoại"}},
	}},
	{name: "katakana", chars: []rawCharacter{
		{kana: "ア", romaji: "a", example: &models.Example{Word: "アメリカ", Romaji: "amerika", Translation: "nước Mỹ"}},
		{kana: "イ", romaji: "i", example: &models.Example{Word: "インド", Romaji: "indo", Translation: "Ấn Độ"}},
		{kana: "ウ", romaji: "u", example: &models.Example{Word: "ウイスキー", Romaji: "uisukii", Translation: "rượu whiskey"}},
		{kana: "エ", romaji: "e", example: &models.Example{Word: "エアコン", Romaji: "eakon", Translation: "máy điều hòa"}},
		{kana: "オ", romaji: "o", example: &models.Example{Word: "オレンジ", Romaji: "orenji", Translation: "quả cam"}},
		{kana: "カ", romaji: "ka", example: &models.Example{Word: "カメラ", Romaji: "kamera", Translation: "máy ảnh"}},
		{kana: "キ", romaji: "ki", example: &models.Example{Word: "キロ", Romaji: "kiro", Translation: "kilogram, kilomet"}},
		{kana: "ク", romaji: "ku", example: &models.Example{Word: "クラス", Romaji: "kurasu", Translation: "lớp học"}},
		{kana: "ケ", romaji: "ke", example: &models.Example{Word: "ケーキ", Romaji: "keeki", Translation: "bánh ngọt"}},
		{kana: "コ", romaji: "ko", example: &models.Example{Word: "コーヒー", Romaji: "koohii", Translation: "cà phê"}},
		{kana: "サ", romaji: "sa", example: &models.Example{Word: "サッカー", Romaji: "sakkaa", Translation: "bóng đá"}},
		{kana: "シ", romaji: "shi", example: &models.Example{Word: "シャツ", Romaji: "shatsu", Translation: "áo sơ mi"}},
		{kana: "ス", romaji: "su", example: &models.Example{Word: "スープ", Romaji: "suupu", Translation: "súp"}},
		{kana: "セ", romaji: "se", example: &models.Example{Word: "セーター", Romaji: "seetaa", Translation: "áo len"}},
		{kana: "ソ", romaji: "so", example: &models.Example{Word: "ソファ", Romaji: "sofa", Translation: "ghế sofa"}},
		{kana: "タ", romaji: "ta", example: &models.Example{Word: "タクシー", Romaji: "takushii", Translation: "taxi"}},
		{kana: "チ", romaji: "chi", example: &models.Example{Word: "チーズ", Romaji: "chiizu", Translation: "phô mai"}},
		{kana: "ツ", romaji: "tsu", example: &models.Example{Word: "ツアー", Romaji: "tsuaa", Translation: "chuyến du lịch"}},
		{kana: "テ", romaji: "te", example: &models.Example{Word: "テレビ", Romaji: "terebi", Translation: "ti vi"}},
		{kana: "ト", romaji: "to", example: &models.Example{Word: "トマト", Romaji: "tomato", Translation: "cà chua"}},
		{kana: "ナ", romaji: "na", example: &models.Example{Word: "ナイフ", Romaji: "naifu", Translation: "con dao"}},
		{kana: "ニ", romaji: "ni", example: &models.Example{Word: "ニュース", Romaji: "nyuusu", Translation: "tin tức"}},
		{kana: "ヌ", romaji: "nu", example: &models.Example{Word: "ヌードル", Romaji: "nuudoru", Translation: "mì sợi"}},
		{kana: "ネ", romaji: "ne", example: &models.Example{Word: "ネクタイ", Romaji: "nekutai", Translation: "cà vạt"}},
		{kana: "ノ", romaji: "no", example: &models.Example{Word: "ノート", Romaji: "nooto", Translation: "quyển vở"}},
		{kana: "ハ", romaji: "ha", example: &models.Example{Word: "ハンバーガー", Romaji: "hanbaagaa", Translation: "bánh hamburger"}},
		{kana: "ヒ", romaji: "hi", example: &models.Example{Word: "ビール", Romaji: "biiru", Translation: "bia"}},
		{kana: "フ", romaji: "fu", example: &models.Example{Word: "フランス", Romaji: "furansu", Translation: "nước Pháp"}},
		{kana: "ヘ", romaji: "he", example: &models.Example{Word: "ヘリコプター", Romaji: "herikoputaa", Translation: "máy bay trực thăng"}},
		{kana: "ホ", romaji: "ho", example: &models.Example{Word: "ホテル", Romaji: "hoteru", Translation: "khách sạn"}},
		{kana: "マ", romaji: "ma", example: &models.Example{Word: "マイク", Romaji: "maiku", Translation: "micro"}},
		{kana: "ミ", romaji: "mi", example: &models.Example{Word: "ミルク", Romaji: "miruku", Translation: "sữa"}},
		{kana: "ム", romaji: "mu", example: &models.Example{Word: "チーム", Romaji: "chiimu", Translation: "đội (team)"}},
		{kana: "メ", romaji: "me", example: &models.Example{Word: "メール", Romaji: "meeru", Translation: "email"}},
		{kana: "モ", romaji: "mo", example: &models.Example{Word: "メモ", Romaji: "memo", Translation: "ghi chú"}},
		{kana: "ヤ", romaji: "ya", example: &models.Example{Word: "タイヤ", Romaji: "taiya", Translation: "lốp xe"}},
		{kana: "ユ", romaji: "yu", example: &models.Example{Word: "ユーモア", Romaji: "yuumoa", Translation: "hài hước"}},
		{kana: "ヨ", romaji: "yo", example: &models.Example{Word: "ヨーロッパ", Romaji: "yooroppa", Translation: "châu Âu"}},
		{kana: "ラ", romaji: "ra", example: &models.Example{Word: "ラジオ", Romaji: "rajio", Translation: "radio"}},
		{kana: "リ", romaji: "ri", example: &models.Example{Word: "リスト", Romaji: "risuto", Translation: "danh sách"}},
		{kana: "ル", romaji: "ru", example: &models.Example{Word: "ルール", Romaji: "ruuru", Translation: "luật lệ"}},
		{kana: "レ", romaji: "re", example: &models.Example{Word: "レストラン", Romaji: "resutoran", Translation: "nhà hàng"}},
		{kana: "ロ", romaji: "ro", example: &models.Example{Word: "ロボット", Romaji: "robotto", Translation: "robot"}},
		{kana: "ワ", romaji: "wa", example: &models.Example{Word: "ワイン", Romaji: "wain", Translation: "rượu vang"}},
		{kana: "ヲ", romaji: "wo", example: &models.Example{Word: "カタカナヲツカウ", Romaji: "katakana o tsukau", Translation: "sử dụng Katakana (trợ từ)"}},
		{kana: "ン", romaji: "n", example: &models.Example{Word: "パン", Romaji: "pan", Translation: "bánh mì"}},
	}},
	{name: "hiragana_dakuten_handakuten", chars: []rawCharacter{
		{kana: "が", romaji: "ga", example: &models.Example{Word: "がくせい", Romaji: "gakusei", Translation: "học sinh"}},
		{kana: "ぎ", romaji: "gi", example: &models.Example{Word: "ぎんこう", Romaji: "ginkou", Translation: "ngân hàng"}},
		{kana: "ぐ", romaji: "gu", example: &models.Example{Word: "ぐあい", Romaji: "guai", Translation: "tình trạng"}},
		{kana: "げ", romaji: "ge", example: &models.Example{Word: "げんき", Romaji: "genki", Translation: "khỏe mạnh"}},
		{kana: "ご", romaji: "go", example: &models.Example{Word: "ごはん", Romaji: "gohan", Translation: "cơm"}},
		{kana: "ざ", romaji: "za", example: &models.Example{Word: "ざっし", Romaji: "zasshi", Translation: "tạp chí"}},
		{kana: "じ", romaji: "ji", example: &models.Example{Word: "じかん", Romaji: "jikan", Translation: "thời gian"}},
		{kana: "ず", romaji: "zu", example: &models.Example{Word: "ずいぶん", Romaji: "zuibun", Translation: "khá là"}},
		{kana: "ぜ", romaji: "ze", example: &models.Example{Word: "かぜ", Romaji: "kaze", Translation: "gió, cảm lạnh"}},
		{kana: "ぞ", romaji: "zo", example: &models.Example{Word: "かぞく", Romaji: "kazoku", Translation: "gia đình"}},
		{kana: "だ", romaji: "da", example: &models.Example{Word: "だいがく", Romaji: "daigaku", Translation: "trường đại học"}},
		{kana: "ぢ", romaji: "ji", example: &models.Example{Word: "はなぢ", Romaji: "hanaji", Translation: "chảy máu cam (ít dùng)"}},
		{kana: "づ", romaji: "zu", example: &models.Example{Word: "つづく", Romaji: "tsuzuku", Translation: "tiếp tục (trong từ ghép)"}},
		{kana: "で", romaji: "de", example: &models.Example{Word: "でんわ", Romaji: "denwa", Translation: "điện thoại"}},
		{kana: "ど", romaji: "do", example: &models.Example{Word: "どこ", Romaji: "doko", Translation: "ở đâu"}},
		{kana: "ば", romaji: "ba", example: &models.Example{Word: "かばん", Romaji: "kaban", Translation: "cặp sách"}},
		{kana: "び", romaji: "bi", example: &models.Example{Word: "びょういん", Romaji: "byouin", Translation: "bệnh viện"}},
		{kana: "ぶ", romaji: "bu", example: &models.Example{Word: "ぶたにく", Romaji: "butaniku", Translation: "thịt lợn"}},
		{kana: "べ", romaji: "be", example: &models.Example{Word: "べんきょう", Romaji: "benkyou", Translation: "học tập"}},
		{kana: "ぼ", romaji: "bo", example: &models.Example{Word: "ぼうし", Romaji: "boushi", Translation: "cái mũ"}},
		{kana: "ぱ", romaji: "pa", example: &models.Example{Word: "ぱん", Romaji: "pan", Translation: "bánh mì (hiragana)"}},
		{kana: "ぴ", romaji: "pi", example: &models.Example{Word: "えんぴつ", Romaji: "enpitsu", Translation: "bút chì"}},
		{kana: "ぷ", romaji: "pu", example: &models.Example{Word: "さんぽ", Romaji: "sanpo", Translation: "đi dạo"}},
		{kana: "ぺ", romaji: "pe", example: &models.Example{Word: "ぺらぺら", Romaji: "perapera", Translation: "lưu loát"}},
		{kana: "ぽ", romaji: "po", example: &models.Example{Word: "しっぽ", Romaji: "shippo", Translation: "cái đuôi"}},
	}},
	{name: "katakana_dakuten_handakuten", chars: []rawCharacter{
		{kana: "ガ", romaji: "ga", example: &models.Example{Word: "ガス", Romaji: "gasu", Translation: "ga (nhiên liệu)"}},
		{kana: "ギ", romaji: "gi", example: &models.Example{Word: "ギター", Romaji: "gitaa", Translation: "đàn ghi-ta"}},
		{kana: "グ", romaji: "gu", example: &models.Example{Word: "グループ", Romaji: "guruupu", Translation: "nhóm"}},
		{kana: "ゲ", romaji: "ge", example: &models.Example{Word: "ゲーム", Romaji: "geemu", Translation: "trò chơi"}},
		{kana: "ゴ", romaji: "go", example: &models.Example{Word: "ゴルフ", Romaji: "gorufu", Translation: "gôn"}},
		{kana: "ザ", romaji: "za", example: &models.Example{Word: "デザイン", Romaji: "dezain", Translation: "thiết kế"}},
		{kana: "ジ", romaji: "ji", example: &models.Example{Word: "ラジオ", Romaji: "rajio", Translation: "radio (trong từ ghép)"}},
		{kana: "ズ", romaji: "zu", example: &models.Example{Word: "ズボン", Romaji: "zubon", Translation: "quần dài"}},
		{kana: "ゼ", romaji: "ze", example: &models.Example{Word: "ゼロ", Romaji: "zero", Translation: "số không"}},
		{kana: "ゾ", romaji: "zo", example: &models.Example{Word: "ゾーン", Romaji: "zoon", Translation: "khu vực (zone)"}},
		{kana: "ダ", romaji: "da", example: &models.Example{Word: "ダンス", Romaji: "dansu", Translation: "khiêu vũ"}},
		{kana: "ヂ", romaji: "ji", example: &models.Example{Word: "ラヂオ", Romaji: "rajio", Translation: "radio (cách viết cũ, hiếm)"}},
		{kana: "ヅ", romaji: "zu", example: &models.Example{Word: "フレーヅ", Romaji: "fureezu", Translation: "cụm từ (phrase - hiếm)"}},
		{kana: "デ", romaji: "de", example: &models.Example{Word: "データ", Romaji: "deeta", Translation: "dữ liệu"}},
		{kana: "ド", romaji: "do", example: &models.Example{Word: "ドア", Romaji: "doa", Translation: "cửa ra vào"}},
		{kana: "バ", romaji: "ba", example: &models.Example{Word: "バス", Romaji: "basu", Translation: "xe buýt"}},
		{kana: "ビ", romaji: "bi", example: &models.Example{Word: "ビル", Romaji: "biru", Translation: "tòa nhà"}},
		{kana: "ブ", romaji: "bu", example: &models.Example{Word: "ブルー", Romaji: "buruu", Translation: "màu xanh dương"}},
		{kana: "ベ", romaji: "be", example: &models.Example{Word: "ベッド", Romaji: "beddo", Translation: "cái giường"}},
		{kana: "ボ", romaji: "bo", example: &models.Example{Word: "ボールペン", Romaji: "boorupen", Translation: "bút bi"}},
		{kana: "パ", romaji: "pa", example: &models.Example{Word: "パーティー", Romaji: "paathii", Translation: "bữa tiệc"}},
		{kana: "ピ", romaji: "pi", example: &models.Example{Word: "ピアノ", Romaji: "piano", Translation: "đàn piano"}},
		{kana: "プ", romaji: "pu", example: &models.Example{Word: "プール", Romaji: "puuru", Translation: "bể bơi"}},
		{kana: "ペ", romaji: "pe", example: &models.Example{Word: "ページ", Romaji: "peeji", Translation: "trang (sách)"}},
		{kana: "ポ", romaji: "po", example: &models.Example{Word: "ポスト", Romaji: "posuto", Translation: "hòm thư"}},
	}},
	{name: "hiragana_yoon", chars: []rawCharacter{
		{kana: "きゃ", romaji: "kya", example: &models.Example{Word: "きゃく", Romaji: "kyaku", Translation: "khách"}},
		{kana: "きゅ", romaji: "kyu", example: &models.Example{Word: "きゅうり", Romaji: "kyuuri", Translation: "dưa chuột"}},
		{kana: "きょ", romaji: "kyo", example: &models.Example{Word: "きょう", Romaji: "kyou", Translation: "hôm nay"}},
		{kana: "しゃ", romaji: "sha", example: &models.Example{Word: "かいしゃ", Romaji: "kaisha", Translation: "công ty"}},
		{kana: "しゅ", romaji: "shu", example: &models.Example{Word: "しゅくだい", Romaji: "shukudai", Translation: "bài tập về nhà"}},
		{kana: "しょ", romaji: "sho", example: &models.Example{Word: "しょくじ", Romaji: "shokuji", Translation: "bữa ăn"}},
		{kana: "ちゃ", romaji: "cha", example: &models.Example{Word: "おちゃ", Romaji: "ocha", Translation: "trà"}},
		{kana: "ちゅ", romaji: "chu", example: &models.Example{Word: "ちゅうしゃ", Romaji: "chuusha", Translation: "tiêm, bãi đỗ xe"}},
		{kana: "ちょ", romaji: "cho", example: &models.Example{Word: "ちょっと", Romaji: "chotto", Translation: "một chút"}},
		{kana: "にゃ", romaji: "nya", example: &models.Example{Word: "こんにゃく", Romaji: "konnyaku", Translation: "thạch konnyaku"}},
		{kana: "にゅ", romaji: "nyu", example: &models.Example{Word: "ぎゅうにゅう", Romaji: "gyuunyuu", Translation: "sữa bò"}},
		{kana: "にょ", romaji: "nyo", example: &models.Example{Word: "にょうぼう", Romaji: "nyoubou", Translation: "vợ (cách nói cũ)"}},
		{kana: "ひゃ", romaji: "hya", example: &models.Example{Word: "ひゃく", Romaji: "hyaku", Translation: "một trăm"}},
		{kana: "ひゅ", romaji: "hyu", example: &models.Example{Word: "ひゅーひゅー", Romaji: "hyuu hyuu", Translation: "vù vù (tiếng gió)"}},
		{kana: "ひょ", romaji: "hyo", example: &models.Example{Word: "ひょう", Romaji: "hyou", Translation: "bảng biểu, báo"}},
		{kana: "みゃ", romaji: "mya", example: &models.Example{Word: "みゃく", Romaji: "myaku", Translation: "mạch (máu)"}},
		{kana: "みゅ", romaji: "myu", example: &models.Example{Word: "ミュージカル", Romaji: "myuujikaru", Translation: "nhạc kịch (phiên âm)"}},
		{kana: "みょ", romaji: "myo", example: &models.Example{Word: "みょうじ", Romaji: "myouji", Translation: "họ (tên)"}},
		{kana: "りゃ", romaji: "rya", example: &models.Example{Word: "りゃくす", Romaji: "ryakusu", Translation: "viết tắt, lược bỏ"}},
		{kana: "りゅ", romaji: "ryu", example: &models.Example{Word: "りゅうがくせい", Romaji: "ryuugakusei", Translation: "du học sinh"}},
		{kana: "りょ", romaji: "ryo", example: &models.Example{Word: "りょこう", Romaji: "ryokou", Translation: "du lịch"}},
		{kana: "ぎゃ", romaji: "gya", example: &models.Example{Word: "ぎゃく", Romaji: "gyaku", Translation: "ngược lại"}},
		{kana: "ぎゅ", romaji: "gyu", example: &models.Example{Word: "ぎゅうにく", Romaji: "gyuuniku", Translation: "thịt bò"}},
		{kana: "ぎょ", romaji: "gyo", example: &models.Example{Word: "きんぎょ", Romaji: "kingyo", Translation: "cá vàng"}},
		{kana: "じゃ", romaji: "ja", example: &models.Example{Word: "じゃま", Romaji: "jama", Translation: "làm phiền"}},
		{kana: "じゅ", romaji: "ju", example: &models.Example{Word: "じゅぎょう", Romaji: "jugyou", Translation: "giờ học"}},
		{kana: "じょ", romaji: "jo", example: &models.Example{Word: "じょせい", Romaji: "josei", Translation: "phụ nữ"}},
		{kana: "ぢゃ", romaji: "ja", example: &models.Example{Word: "おぢゃる", Romaji: "ojaru", Translation: "đến (cổ ngữ, hiếm)"}},
		{kana: "ぢゅ", romaji: "ju", example: &models.Example{Word: "かぢゅう", Romaji: "kajuu", Translation: "trong nhà (cách viết cũ, hiếm)"}},
		{kana: "ぢょ", romaji: "jo", example: &models.Example{Word: "おぢょうさん", Romaji: "ojousan", Translation: "tiểu thư (cách viết cũ, hiếm)"}},
		{kana: "びゃ", romaji: "bya", example: &models.Example{Word: "さんびゃく", Romaji: "sanbyaku", Translation: "ba trăm"}},
		{kana: "びゅ", romaji: "byu", example: &models.Example{Word: "インタビュー", Romaji: "intabyuu", Translation: "phỏng vấn (phiên âm)"}},
		{kana: "びょ", romaji: "byo", example: &models.Example{Word: "びょうき", Romaji: "byouki", Translation: "bệnh tật"}},
		{kana: "ぴゃ", romaji: "pya", example: &models.Example{Word: "ろっぴゃく", Romaji: "roppyaku", Translation: "sáu trăm"}},
		{kana: "ぴゅ", romaji: "pyu", example: &models.Example{Word: "コンピューター", Romaji: "konpyuutaa", Translation: "máy tính (phiên âm)"}},
		{kana: "ぴょ", romaji: "pyo", example: &models.Example{Word: "はっぴょう", Romaji: "happyou", Translation: "phát biểu"}},
	}},
	{name: "katakana_yoon", chars: []rawCharacter{
		{kana: "キャ", romaji: "kya", example: &models.Example{Word: "キャンセル", Romaji: "kyanseru", Translation: "hủy bỏ (cancel)"}},
		{kana: "キュ", romaji: "kyu", example: &models.Example{Word: "キューバ", Romaji: "kyuuba", Translation: "Cuba"}},
		{kana: "キョ", romaji: "kyo", example: &models.Example{Word: "キョウト", Romaji: "kyouto", Translation: "Kyoto (tên địa danh)"}},
		{kana: "シャ", romaji: "sha", example: &models.Example{Word: "シャワー", Romaji: "shawaa", Translation: "vòi hoa sen"}},
		{kana: "シュ", romaji: "shu", example: &models.Example{Word: "シュークリーム", Romaji: "shuukuriimu", Translation: "bánh su kem"}},
		{kana: "ショ", romaji: "sho", example: &models.Example{Word: "ショッピング", Romaji: "shoppingu", Translation: "mua sắm"}},
		{kana: "チャ", romaji: "cha", example: &models.Example{Word: "チャンス", Romaji: "chansu", Translation: "cơ hội"}},
		{kana: "チュ", romaji: "chu", example: &models.Example{Word: "チューブ", Romaji: "chuubu", Translation: "ống, tuýp"}},
		{kana: "チョ", romaji: "cho", example: &models.Example{Word: "チョコレート", Romaji: "chokoreeto", Translation: "sô cô la"}},
		{kana: "ニャ", romaji: "nya", example: &models.Example{Word: "ニャー", Romaji: "nyaa", Translation: "meo (tiếng mèo kêu)"}},
		{kana: "ニュ", romaji: "nyu", example: &models.Example{Word: "ニューヨーク", Romaji: "nyuuyooku", Translation: "New York"}},
		{kana: "ニョ", romaji: "nyo", example: &models.Example{Word: "ニョッキ", Romaji: "nyokki", Translation: "gnocchi (món Ý)"}},
		{kana: "ヒャ", romaji: "hya", example: &models.Example{Word: "ヒャッホー", Romaji: "hyahhoo", Translation: "yahoo! (thán từ)"}},
		{kana: "ヒュ", romaji: "hyu", example: &models.Example{Word: "ヒューマン", Romaji: "hyuuman", Translation: "con người (human)"}},
		{kana: "ヒョ", romaji: "hyo", example: &models.Example{Word: "ヒョウ", Romaji: "hyou", Translation: "con báo"}},
		{kana: "ミャ", romaji: "mya", example: &models.Example{Word: "ミャンマー", Romaji: "myanmaa", Translation: "Myanmar"}},
		{kana: "ミュ", romaji: "myu", example: &models.Example{Word: "ミュージック", Romaji: "myuujikku", Translation: "âm nhạc"}},
		{kana: "ミョ", romaji: "myo", example: &models.Example{Word: "ミョウガ", Romaji: "myouga", Translation: "gừng Nhật"}},
		{kana: "リャ", romaji: "rya", example: &models.Example{Word: "テリア", Romaji: "teria", Translation: "chó sục (terrier)"}},
		{kana: "リュ", romaji: "ryu", example: &models.Example{Word: "リュックサック", Romaji: "ryukkusakku", Translation: "ba lô"}},
		{kana: "リョ", romaji: "ryo", example: &models.Example{Word: "キロメートル", Romaji: "kiromeetoru", Translation: "kilomet (trong từ ghép)"}},
		{kana: "ギャ", romaji: "gya", example: &models.Example{Word: "ギャラリー", Romaji: "gyararii", Translation: "phòng trưng bày"}},
		{kana: "ギュ", romaji: "gyu", example: &models.Example{Word: "レギュラー", Romaji: "regyuraa", Translation: "thông thường, chính thức (regular)"}},
		{kana: "ギョ", romaji: "gyo", example: &models.Example{Word: "ギョーザ", Romaji: "gyooza", Translation: "bánh Gyoza (sủi cảo)"}},
		{kana: "ジャ", romaji: "ja", example: &models.Example{Word: "ジャム", Romaji: "jamu", Translation: "mứt"}},
		{kana: "ジュ", romaji: "ju", example: &models.Example{Word: "ジュース", Romaji: "juusu", Translation: "nước ép"}},
		{kana: "ジョ", romaji: "jo", example: &models.Example{Word: "ジョギング", Romaji: "jogingu", Translation: "chạy bộ"}},
		{kana: "ヂャ", romaji: "ja", example: &models.Example{Word: "ヂャケット", Romaji: "jaketto", Translation: "áo khoác (cách viết cũ, hiếm)"}},
		{kana: "ヂュ", romaji: "ju", example: &models.Example{Word: "スケヂュール", Romaji: "sukejuuru", Translation: "lịch trình (cách viết cũ, hiếm)"}},
		{kana: "ヂョ", romaji: "jo", example: &models.Example{Word: "ラヂョ", Romaji: "rajo", Translation: "radio (cách viết rất cũ, hiếm)"}},
		{kana: "ビャ", romaji: "bya", example: &models.Example{Word: "リビア", Romaji: "ribia", Translation: "Libya (trong tên nước)"}},
		{kana: "ビュ", romaji: "byu", example: &models.Example{Word: "ビューティー", Romaji: "byuutii", Translation: "vẻ đẹp (beauty)"}},
		{kana: "ビョ", romaji: "byo", example: &models.Example{Word: "エンビョー", Romaji: "enbyoo", Translation: "đố kỵ (envy - hiếm dùng)"}},
		{kana: "ピャ", romaji: "pya", example: &models.Example{Word: "ハッピー", Romaji: "happii", Translation: "hạnh phúc (trong từ ghép)"}},
		{kana: "ピュ", romaji: "pyu", example: &models.Example{Word: "ピューマ", Romaji: "pyuuma", Translation: "báo sư tử (puma)"}},
		{kana: "ピョ", romaji: "pyo", example: &models.Example{Word: "ピョンピョン", Romaji: "pyonpyon", Translation: "nhảy lò cò"}},
	}},
	{name: "katakana_extended", chars: []rawCharacter{
		{kana: "ヴァ", romaji: "va", example: &models.Example{Word: "ヴァイオリン", Romaji: "vaiorin", Translation: "đàn vi-ô-lông"}},
		{kana: "ヴィ", romaji: "vi", example: &models.Example{Word: "ヴィラ", Romaji: "vira", Translation: "biệt thự (villa)"}},
		{kana: "ヴ", romaji: "vu", example: &models.Example{Word: "ヴォーカル", Romaji: "vookaru", Translation: "giọng ca (vocal - ヴ thường được thay bằng ブ)"}},
		{kana: "ヴェ", romaji: "ve", example: &models.Example{Word: "ヴェネツィア", Romaji: "venetsia", Translation: "Venice"}},
		{kana: "ヴォ", romaji: "vo", example: &models.Example{Word: "ヴォルテージ", Romaji: "voruteeji", Translation: "điện áp (voltage)"}},
		{kana: "シェ", romaji: "she", example: &models.Example{Word: "シェフ", Romaji: "shefu", Translation: "đầu bếp (chef)"}},
		{kana: "ジェ", romaji: "je", example: &models.Example{Word: "ジェットコースター", Romaji: "jettokoosutaa", Translation: "tàu lượn siêu tốc"}},
		{kana: "チェ", romaji: "che", example: &models.Example{Word: "チェック", Romaji: "chekku", Translation: "kiểm tra (check)"}},
		{kana: "ティ", romaji: "ti", example: &models.Example{Word: "パーティー", Romaji: "paathii", Translation: "bữa tiệc"}},
		{kana: "ディ", romaji: "di", example: &models.Example{Word: "ディズニーランド", Romaji: "dizuniirando", Translation: "Disneyland"}},
		{kana: "トゥ", romaji: "tu", example: &models.Example{Word: "トゥナイト", Romaji: "tunaito", Translation: "tối nay (tonight)"}},
		{kana: "ドゥ", romaji: "du", example: &models.Example{Word: "デュエット", Romaji: "dyuetto", Translation: "song ca (duet)"}},
		{kana: "ファ", romaji: "fa", example: &models.Example{Word: "ファン", Romaji: "fan", Translation: "người hâm mộ"}},
		{kana: "フィ", romaji: "fi", example: &models.Example{Word: "フィルム", Romaji: "firumu", Translation: "phim (ảnh, điện ảnh)"}},
		{kana: "フェ", romaji: "fe", example: &models.Example{Word: "フェリー", Romaji: "ferii", Translation: "phà"}},
		{kana: "フォ", romaji: "fo", example: &models.Example{Word: "フォーク", Romaji: "fooku", Translation: "cái nĩa"}},
		{kana: "フュ", romaji: "fyu", example: &models.Example{Word: "フューチャー", Romaji: "fyuuchaa", Translation: "tương lai (future)"}},
		{kana: "ウィ", romaji: "wi", example: &models.Example{Word: "ウィスキー", Romaji: "wisukii", Translation: "rượu whiskey"}},
		{kana: "ウェ", romaji: "we", example: &models.Example{Word: "ウェディング", Romaji: "wedingu", Translation: "đám cưới (wedding)"}},
		{kana: "ウォ", romaji: "wo", example: &models.Example{Word: "ウォークマン", Romaji: "wookuman", Translation: "máy Walkman"}},
		{kana: "ツァ", romaji: "tsa", example: &models.Example{Word: "ピッツァ", Romaji: "pittsa", Translation: "bánh pizza"}},
		{kana: "ツィ", romaji: "tsi", example: &models.Example{Word: "パンツィー", Romaji: "pantsii", Translation: "quần lót (pantsy - hiếm)"}},
		{kana: "ツェ", romaji: "tse", example: &models.Example{Word: "ツェッペリン", Romaji: "tsepperin", Translation: "khinh khí cầu Zeppelin"}},
		{kana: "ツォ", romaji: "tso", example: &models.Example{Word: "リゾット", Romaji: "rizotto", Translation: "cơm risotto (trong từ ghép)"}},
	}},
}
