package catalog

// Styles is the fixed mood catalog. PromptHint is the fragment injected into
// the generation instruction; Category is a UI grouping aid only.
var Styles = []Style{
	{ID: "gentle", Label: "優しい", Description: "やさしい雰囲気", PromptHint: "優しい雰囲気、パステルカラー、丸みのある文字、温かみのある色合い、写真に馴染む"},
	{ID: "heartwarming", Label: "キュンとする", Description: "キュンとくる感じ", PromptHint: "キュンとする雰囲気、ハートや星の装飾、かわいらしい文字、ロマンチックな色合い"},
	{ID: "relaxed", Label: "ほっとする", Description: "ほっとする雰囲気", PromptHint: "ほっとする雰囲気、落ち着いた色合い、柔らかい印象、リラックスした感じ"},
	{ID: "nostalgic", Label: "懐かしい", Description: "懐かしい感じ", PromptHint: "懐かしい雰囲気、ノスタルジックな色合い、レトロな印象、温かい雰囲気"},
	{ID: "angry", Label: "怒っている", Description: "怒っている感じ", PromptHint: "怒っている雰囲気、強いコントラスト、太めの文字、赤や黒を基調とした色合い"},
	{ID: "crazy", Label: "イカれている", Description: "イカれた感じ", PromptHint: "イカれた雰囲気、派手な色、グラフィティ風、エネルギッシュ、目立つデザイン"},
	{ID: "wild", Label: "ぶっ飛んでいる", Description: "ぶっ飛んだ感じ", PromptHint: "ぶっ飛んだ雰囲気、ネオンカラー、激しいコントラスト、未来的、破壊的なデザイン"},
	{ID: "regretful", Label: "悔しい", Description: "悔しい感じ", PromptHint: "悔しい雰囲気、少し暗めの色合い、力強い文字、感情的な印象"},
	{ID: "joyful", Label: "嬉しい", Description: "嬉しい感じ", PromptHint: "嬉しい雰囲気、明るい色、元気な印象、楽しいデザイン、写真映えする"},
	{ID: "excited", Label: "テンション上がる", Description: "テンション上がる感じ", PromptHint: "テンション上がる雰囲気、カラフル、エネルギッシュ、躍動感のあるデザイン"},
	{ID: "cool", Label: "かっこいい", Description: "かっこいい感じ", PromptHint: "かっこいい雰囲気、シャープな文字、スタイリッシュ、洗練されたデザイン"},
	{ID: "cute", Label: "かわいい", Description: "かわいい感じ", PromptHint: "かわいい雰囲気、丸みのある文字、パステルカラー、ふんわりした印象"},
	{ID: "funny", Label: "面白い", Description: "面白い感じ", PromptHint: "面白い雰囲気、遊び心のあるデザイン、コミカル、楽しい印象"},
	{ID: "sad", Label: "悲しい", Description: "悲しい感じ", PromptHint: "悲しい雰囲気、落ち着いた色合い、控えめな印象、感情的なデザイン"},
	{ID: "surprised", Label: "びっくり", Description: "びっくりした感じ", PromptHint: "びっくりした雰囲気、インパクトのあるデザイン、目立つ色、驚きの表現"},
	{ID: "romantic", Label: "ロマンチック", Description: "ロマンチックな感じ", PromptHint: "ロマンチックな雰囲気、ハートや花の装飾、優しい色合い、温かい印象"},
	{ID: "energetic", Label: "エネルギッシュ", Description: "エネルギッシュな感じ", PromptHint: "エネルギッシュな雰囲気、動きのあるデザイン、カラフル、活気のある印象"},
	{ID: "calm", Label: "落ち着いている", Description: "落ち着いた感じ", PromptHint: "落ち着いた雰囲気、シンプルなデザイン、上品な色合い、静かな印象"},
	{ID: "mysterious", Label: "神秘的", Description: "神秘的な感じ", PromptHint: "神秘的な雰囲気、暗めの色合い、幻想的なデザイン、不思議な印象"},
	{ID: "cheerful", Label: "明るい", Description: "明るい感じ", PromptHint: "明るい雰囲気、鮮やかな色、ポジティブな印象、楽しいデザイン"},
	{ID: "sexy", Label: "セクシー", Description: "セクシーな感じ", PromptHint: "セクシーな雰囲気、大人っぽい色合い、スタイリッシュ、魅力的なデザイン"},
	{ID: "super-sexy", Label: "超セクシー", Description: "超セクシーな感じ", PromptHint: "超セクシーな雰囲気、洗練された色合い、エレガント、魅惑的なデザイン"},
	{ID: "extremely-sexy", Label: "やばいくらいセクシー", Description: "やばいくらいセクシーな感じ", PromptHint: "やばいくらいセクシーな雰囲気、強烈な印象、大胆なデザイン、魅力的"},
	{ID: "kimokawaii", Label: "キモかわいい", Description: "キモかわいい感じ", PromptHint: "キモかわいい雰囲気、独特なデザイン、インパクトのある色合い、個性的"},
	{ID: "surreal", Label: "シュール", Description: "シュールな感じ", PromptHint: "シュールな雰囲気、不思議なデザイン、非現実的な印象、アート的"},
	{ID: "dasshikawaii", Label: "ダサかわいい", Description: "ダサかわいい感じ", PromptHint: "ダサかわいい雰囲気、レトロな色合い、ノスタルジック、親しみやすい"},
	{ID: "happy", Label: "幸せ", Description: "幸せな感じ", PromptHint: "幸せな雰囲気、明るい色、温かい印象、ポジティブなデザイン"},
	{ID: "super-happy", Label: "超幸せな感じ", Description: "超幸せな感じ", PromptHint: "超幸せな雰囲気、とても明るい色、エネルギッシュ、最高にポジティブなデザイン"},
	{ID: "nostalgic-moment", Label: "あの時を思い出した時", Description: "あの時を思い出した時の感じ", PromptHint: "あの時を思い出した時の雰囲気、ノスタルジック、懐かしい色合い、温かい印象"},
	{ID: "space", Label: "宇宙に行きたい", Description: "宇宙に行きたい感じ", PromptHint: "宇宙に行きたい雰囲気、星空、神秘的、未来的、幻想的なデザイン"},
	{ID: "ocean", Label: "海", Description: "海の感じ", PromptHint: "海の雰囲気、青い色、爽やか、開放感、リラックスしたデザイン"},
	{ID: "sky", Label: "空", Description: "空の感じ", PromptHint: "空の雰囲気、青空、爽やか、広がり、開放的なデザイン"},
	{ID: "mountain", Label: "山", Description: "山の感じ", PromptHint: "山の雰囲気、自然、落ち着いた色合い、力強い印象、雄大なデザイン"},
	{ID: "american", Label: "アメリカン", Description: "アメリカンな感じ", PromptHint: "アメリカンな雰囲気、星条旗風、ポップ、エネルギッシュ、自由なデザイン"},
	{ID: "teyandei", Label: "てやんでい", Description: "てやんでいな感じ", PromptHint: "てやんでいな雰囲気、江戸っ子風、粋、シャレた、和風モダンなデザイン"},
	{ID: "onushi", Label: "お主、なかなかやるな", Description: "お主、なかなかやるな", PromptHint: "お主、なかなかやるな雰囲気、時代劇風、武士、誇らしげ、力強いデザイン"},
	{ID: "kuu-king", Label: "クゥーの王様", Description: "クゥーの王様", PromptHint: "クゥーの王様の雰囲気、王冠、高貴、威厳、豪華なデザイン"},
	{ID: "kuu-towa", Label: "クゥーとは", Description: "クゥーとは", PromptHint: "クゥーとはの雰囲気、哲学的、深い、思索的、知的なデザイン"},
	{ID: "kuu-next", Label: "クゥーの次は何", Description: "クゥーの次は何", PromptHint: "クゥーの次は何の雰囲気、疑問、探求、未来への期待、前向きなデザイン"},
	{ID: "yayoi", Label: "弥生時代", Description: "弥生時代", PromptHint: "弥生時代の雰囲気、古代、原始、土器、自然、歴史的なデザイン"},
	{ID: "heian", Label: "平安時代", Description: "平安時代", PromptHint: "平安時代の雰囲気、雅、優雅、和風、貴族、上品なデザイン"},
	{ID: "edo", Label: "江戸時代", Description: "江戸時代", PromptHint: "江戸時代の雰囲気、粋、町人文化、浮世絵風、和風、親しみやすいデザイン"},
	{ID: "azuchi-momoyama", Label: "安土桃山時代", Description: "安土桃山時代", PromptHint: "安土桃山時代の雰囲気、豪華絢爛、金箔、派手、権力、華やかなデザイン"},
	{ID: "sengoku", Label: "戦国時代", Description: "戦国時代", PromptHint: "戦国時代の雰囲気、武将、力強い、戦い、勇ましい、迫力のあるデザイン"},
	{ID: "samurai", Label: "サムライ", Description: "サムライ", PromptHint: "サムライの雰囲気、武士、侍、刀、誇り、力強いデザイン"},
	{ID: "samurai-burger", Label: "サムライバーガー", Description: "サムライバーガー", PromptHint: "サムライバーガーの雰囲気、和洋折衷、ユニーク、面白い、カジュアルなデザイン"},
	{ID: "mcdonalds", Label: "マクドナルド", Description: "マクドナルド", PromptHint: "マクドナルドの雰囲気、ファストフード、赤と黄色、ポップ、親しみやすいデザイン"},
	{ID: "hungry", Label: "お腹へった", Description: "お腹へった", PromptHint: "お腹へった雰囲気、食べ物、食欲、温かい、親しみやすいデザイン"},
	{ID: "very-hungry", Label: "お腹と背中がくっつきそう", Description: "お腹と背中がくっつきそう", PromptHint: "お腹と背中がくっつきそうな雰囲気、とてもお腹が空いた、切実、ユーモラスなデザイン"},
}
