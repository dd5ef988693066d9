package catalog

// Placements is the 3x3 grid of canonical text positions.
var Placements = []Placement{
	{ID: "1", Label: "左上", PlacementHint: "画像の左上"},
	{ID: "2", Label: "上", PlacementHint: "画像の上部"},
	{ID: "3", Label: "右上", PlacementHint: "画像の右上"},
	{ID: "4", Label: "左", PlacementHint: "画像の左側"},
	{ID: "5", Label: "中央", PlacementHint: "画像の中央"},
	{ID: "6", Label: "右", PlacementHint: "画像の右側"},
	{ID: "7", Label: "左下", PlacementHint: "画像の左下"},
	{ID: "8", Label: "下", PlacementHint: "画像の下部"},
	{ID: "9", Label: "右下", PlacementHint: "画像の右下"},
}
