package imagegen

import (
	"fmt"
	"strings"

	"kuugen/internal/catalog"
)

// Mode selects how the caption is rendered onto the photo.
type Mode string

const (
	// ModeText overlays the caption as plain lettering.
	ModeText Mode = "text"
	// ModeStamp renders the caption inside a sticker-style badge.
	ModeStamp Mode = "stamp"
)

// NormalizeMode maps free-form input onto a supported mode.
func NormalizeMode(v string) Mode {
	if Mode(strings.TrimSpace(strings.ToLower(v))) == ModeStamp {
		return ModeStamp
	}
	return ModeText
}

// maxStyleHints caps how many style fragments the instruction enumerates.
// Generation models lose focus on long enumerations; past the cap the
// instruction only signals that more styles were chosen.
const maxStyleHints = 10

// styleHintOverflow is appended after the cap ("and others").
const styleHintOverflow = "ほか"

// styleHintSeparator is the full-width list separator the instruction uses.
// It must stay byte-stable; downstream tests assert exact output.
const styleHintSeparator = "、"

// SummarizeStyleHints joins the styles' prompt hints into a single bounded
// fragment: trimmed, empties dropped, duplicates collapsed keeping
// first-occurrence order, at most maxStyleHints entries.
func SummarizeStyleHints(styles []catalog.Style) string {
	seen := make(map[string]struct{}, len(styles))
	unique := make([]string, 0, len(styles))
	for _, s := range styles {
		hint := strings.TrimSpace(s.PromptHint)
		if hint == "" {
			continue
		}
		if _, dup := seen[hint]; dup {
			continue
		}
		seen[hint] = struct{}{}
		unique = append(unique, hint)
	}
	if len(unique) <= maxStyleHints {
		return strings.Join(unique, styleHintSeparator)
	}
	return strings.Join(unique[:maxStyleHints], styleHintSeparator) + styleHintSeparator + styleHintOverflow
}

// BuildInstruction produces the instruction sent to the image-edit model.
// The caption text goes in verbatim: the model is told to reproduce it
// exactly, and this layer does not escape or truncate it.
//
// Image editing stays stable when the instruction states what single change
// to make and pins everything else down, so the constraints section repeats
// the "change only the text" contract explicitly. The function is pure;
// identical inputs yield a byte-identical string.
func BuildInstruction(exactText string, styles []catalog.Style, placement catalog.Placement, mode Mode) string {
	styleHints := SummarizeStyleHints(styles)

	if mode == ModeStamp {
		return strings.Join([]string{
			"【タスク】提供された画像にスタンプを作成して追加（画像編集）",
			fmt.Sprintf("【スタンプの内容】「%s」をスタンプとして作成", exactText),
			"",
			"【スタンプのデザイン要件】",
			"- 背景は透明または半透明",
			"- 装飾的な枠（丸型、角丸、ハート型、星型など、スタイルに応じて）",
			"- シール風、バッジ風、レタリング風のデザイン",
			"- テキストはスタンプ内に配置し、読みやすく",
			"- スタンプらしい立体感や影を付ける",
			"",
			fmt.Sprintf("【配置】%s", placement.PlacementHint),
			fmt.Sprintf("【スタイル】オシャレで遊び心があり、写真のシチュレーションに合うスタイルで追加で次の要素を取り入れる: %s", styleHints),
			"",
			"【制約】",
			"- スタンプは独立した要素として追加する",
			"- 元画像の被写体、背景、色味、構図、光、質感は可能な限り維持する",
			"- 画像のトリミング、リサイズ、回転、余白追加はしない",
			"- スタンプのサイズは画像に対して適切な比率に調整する",
			"- スタンプ以外の余計な要素を追加しない",
			"",
		}, "\n")
	}

	return strings.Join([]string{
		"【タスク】提供された画像に文字を追加（画像編集）",
		fmt.Sprintf("【追加する文字】「%s」（表記は完全一致。改行・変換・言い換え・追加文字は禁止）", exactText),
		fmt.Sprintf("【配置】%s", placement.PlacementHint),
		fmt.Sprintf("【スタイル】オシャレで遊び心があり、写真のシチュレーションに合うスタイルで追加で次の要素を取り入れる: %s", styleHints),
		"【制約】",
		"- 変更するのは「文字の追加」だけ。その他（被写体/背景/色味/構図/光/質感）は可能な限り維持する",
		"- 画像のトリミング、リサイズ、回転、余白追加はしない",
		"- 余計な文字やロゴ、透かし、記号を追加しない",
		"- 文字は読みやすいサイズにし、背景と十分なコントラストを確保する",
		"",
	}, "\n")
}
