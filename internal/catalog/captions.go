package catalog

// Captions is the fixed phrase catalog. Labels double as the rendered text
// for every preset; custom captions bypass this table entirely.
var Captions = []Caption{
	{ID: "1", Label: "くぅー", Text: "くぅー"},
	{ID: "2", Label: "くぅ", Text: "くぅ"},
	{ID: "3", Label: "くぅぅー", Text: "くぅぅー"},
	{ID: "4", Label: "くぅーーー！", Text: "くぅーーー！"},
	{ID: "5", Label: "くぅー！", Text: "くぅー！"},
	{ID: "6", Label: "これはマジでクゥー", Text: "これはマジでクゥー"},
	{ID: "7", Label: "これはクゥーです", Text: "これはクゥーです"},
	{ID: "8", Label: "クゥーは世界を救う", Text: "クゥーは世界を救う"},
	{ID: "9", Label: "クゥーさせてください", Text: "クゥーさせてください"},
	{ID: "10", Label: "本当に、クゥーさせてくださいよ", Text: "本当に、クゥーさせてくださいよ"},
	{ID: "11", Label: "これが本物のクゥー", Text: "これが本物のクゥー"},
	{ID: "12", Label: "くぅ〜〜", Text: "くぅ〜〜"},
	{ID: "13", Label: "くぅ〜！", Text: "くぅ〜！"},
	{ID: "14", Label: "くぅっ", Text: "くぅっ"},
	{ID: "15", Label: "くぅーっ", Text: "くぅーっ"},
	{ID: "16", Label: "くぅーっ！", Text: "くぅーっ！"},
	{ID: "17", Label: "これはクゥーですよほんとに", Text: "これはクゥーですよほんとに"},
	{ID: "18", Label: "世界はクゥーでできている", Text: "世界はクゥーでできている"},
	{ID: "19", Label: "ノークゥーノーライフ", Text: "ノークゥーノーライフ"},
	{ID: "20", Label: "ノークゥーノーライフ！", Text: "ノークゥーノーライフ！"},
	{ID: "21", Label: "クゥーリスマス", Text: "クゥーリスマス"},
	{ID: "22", Label: "クゥーは正義", Text: "クゥーは正義"},
	{ID: "23", Label: "クゥーは力", Text: "クゥーは力"},
	{ID: "24", Label: "永遠のクゥー", Text: "永遠のクゥー"},
	{ID: "25", Label: "クゥーは永遠に", Text: "クゥーは永遠に"},
	{ID: "26", Label: "くぅー！！！", Text: "くぅー！！！"},
	{ID: "27", Label: "くぅーー", Text: "くぅーー"},
	{ID: "28", Label: "くぅーーー", Text: "くぅーーー"},
	{ID: "29", Label: "くぅーーーー", Text: "くぅーーーー"},
	{ID: "30", Label: "くぅーーーーー", Text: "くぅーーーーー"},
	{ID: "31", Label: "くぅーの時代", Text: "くぅーの時代"},
	{ID: "32", Label: "くぅー💕", Text: "くぅー💕"},
	{ID: "33", Label: "くぅー✨", Text: "くぅー✨"},
	{ID: "34", Label: "ふじたクゥー", Text: "ふじたクゥー"},
	{ID: "35", Label: "クゥーです", Text: "クゥーです"},
	{ID: "36", Label: "クゥーです！", Text: "クゥーです！"},
	{ID: "37", Label: "クゥーですよ", Text: "クゥーですよ"},
	{ID: "38", Label: "クゥーですよ！", Text: "クゥーですよ！"},
	{ID: "39", Label: "クゥーだ", Text: "クゥーだ"},
	{ID: "40", Label: "クゥーだ！", Text: "クゥーだ！"},
	{ID: "41", Label: "クゥーだよ", Text: "クゥーだよ"},
	{ID: "42", Label: "クゥーだよ！", Text: "クゥーだよ！"},
	{ID: "43", Label: "クゥーだな", Text: "クゥーだな"},
	{ID: "44", Label: "クゥーだなあ", Text: "クゥーだなあ"},
	{ID: "45", Label: "クゥーしたい", Text: "クゥーしたい"},
	{ID: "46", Label: "クゥーしたい！", Text: "クゥーしたい！"},
	{ID: "47", Label: "クゥーさせて", Text: "クゥーさせて"},
	{ID: "48", Label: "クゥーさせて！", Text: "クゥーさせて！"},
	{ID: "49", Label: "クゥーでしょ", Text: "クゥーでしょ"},
	{ID: "50", Label: "クゥーでしょ！", Text: "クゥーでしょ！"},
	{ID: "51", Label: "クゥーでしょ？", Text: "クゥーでしょ？"},
	{ID: "52", Label: "クゥーでしょー", Text: "クゥーでしょー"},
	{ID: "53", Label: "クゥーでしょー！", Text: "クゥーでしょー！"},
	{ID: "54", Label: "クゥーすぎる", Text: "クゥーすぎる"},
	{ID: "55", Label: "クゥーすぎる！", Text: "クゥーすぎる！"},
	{ID: "56", Label: "クゥーすぎて", Text: "クゥーすぎて"},
	{ID: "57", Label: "クゥーすぎて！", Text: "クゥーすぎて！"},
	{ID: "58", Label: "クゥーすぎるよ", Text: "クゥーすぎるよ"},
	{ID: "59", Label: "クゥーすぎるよ！", Text: "クゥーすぎるよ！"},
	{ID: "60", Label: "クゥーなる秩序", Text: "クゥーなる秩序"},
	{ID: "61", Label: "クゥーと過ごす日々", Text: "クゥーと過ごす日々"},
	{ID: "62", Label: "また君に〜クゥーしてる🎵", Text: "また君に〜クゥーしてる🎵"},
}
